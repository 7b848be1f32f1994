package landlord

import "github.com/pkg/errors"

// Item is an immutable, requestable object in a trace: a label, a fetch
// cost and a size. Items are constructed once at trace-load time and
// referenced by pointer everywhere else; identity is stable for the
// life of a run. Two items are equal (and ordered) by label alone.
type Item struct {
	label string
	cost  float64
	size  int
}

// NewItem validates and builds an Item. Label must be non-empty, cost
// non-negative, size positive.
func NewItem(label string, cost float64, size int) (*Item, error) {
	if label == "" {
		return nil, errors.New("item label must not be empty")
	}
	if cost < 0 {
		return nil, errors.Errorf("item %q: cost must be non-negative, got %v", label, cost)
	}
	if size <= 0 {
		return nil, errors.Errorf("item %q: size must be positive, got %v", label, size)
	}
	return &Item{label: label, cost: cost, size: size}, nil
}

// Label returns the item's unique label.
func (i *Item) Label() string { return i.label }

// Cost returns the item's fetch cost as a real.
func (i *Item) Cost() float64 { return i.cost }

// Size returns the item's size.
func (i *Item) Size() int { return i.size }

// Equal reports whether two items share a label.
func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.label == other.label
}

// Less orders items by label, for callers that need a deterministic
// iteration order (reports, tests).
func (i *Item) Less(other *Item) bool { return i.label < other.label }
