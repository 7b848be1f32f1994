package landlord

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/go-pkgz/landlord-sim/internal/order"
)

// TiebreakPolicy selects among zero-credit candidates during eviction.
type TiebreakPolicy int

// The closed set of tiebreak policies.
const (
	TiebreakLRU TiebreakPolicy = iota
	TiebreakFIFO
	TiebreakRAND
)

// String implements fmt.Stringer.
func (p TiebreakPolicy) String() string {
	switch p {
	case TiebreakLRU:
		return "LRU"
	case TiebreakFIFO:
		return "FIFO"
	case TiebreakRAND:
		return "RAND"
	default:
		return "UNKNOWN"
	}
}

// ParseTiebreakPolicy parses one of the closed set {LRU, FIFO, RAND}.
func ParseTiebreakPolicy(s string) (TiebreakPolicy, error) {
	switch s {
	case "LRU":
		return TiebreakLRU, nil
	case "FIFO":
		return TiebreakFIFO, nil
	case "RAND":
		return TiebreakRAND, nil
	default:
		return 0, errors.Errorf("unknown tiebreak policy %q, want one of LRU, FIFO, RAND", s)
	}
}

// TiebreakOrder is an ordered sequence of the items currently cached,
// used to pick a victim among zero-credit candidates. Its contents
// must always equal the Cache's contents; the
// Engine is responsible for keeping both in lockstep.
type TiebreakOrder struct {
	policy TiebreakPolicy
	lst    *order.List
	nodes  map[*Item]*order.Node
}

// NewTiebreakOrder builds an empty TiebreakOrder for the given policy.
func NewTiebreakOrder(policy TiebreakPolicy) *TiebreakOrder {
	return &TiebreakOrder{policy: policy, lst: order.New(), nodes: map[*Item]*order.Node{}}
}

// InsertOnFault admits a newly-faulted item into the order: appended
// for LRU and FIFO, inserted at a uniformly random index in
// [0, len] for RAND.
func (o *TiebreakOrder) InsertOnFault(i *Item, rng *rand.Rand) {
	if _, ok := o.nodes[i]; ok {
		panic(errors.Errorf("landlord: TiebreakOrder.InsertOnFault of already-present item %q", i.Label()).Error())
	}
	switch o.policy {
	case TiebreakRAND:
		idx := rng.Intn(o.lst.Len() + 1)
		o.nodes[i] = o.lst.InsertAt(idx, i)
	default: // LRU, FIFO
		o.nodes[i] = o.lst.PushBack(i)
	}
}

// TouchOnHit updates the order after a hit: LRU moves the item to the
// back (most-recently-used end), FIFO leaves it in place, RAND removes
// and reinserts it at a uniformly random index.
func (o *TiebreakOrder) TouchOnHit(i *Item, rng *rand.Rand) {
	n, ok := o.nodes[i]
	if !ok {
		panic(errors.Errorf("landlord: TiebreakOrder.TouchOnHit of absent item %q", i.Label()).Error())
	}
	switch o.policy {
	case TiebreakLRU:
		o.lst.MoveToBack(n)
	case TiebreakFIFO:
		// leave in place
	case TiebreakRAND:
		o.lst.Remove(n)
		idx := rng.Intn(o.lst.Len() + 1)
		o.nodes[i] = o.lst.InsertAt(idx, i)
	}
}

// Remove drops an item from the order (called alongside Cache.Remove
// during eviction).
func (o *TiebreakOrder) Remove(i *Item) {
	n, ok := o.nodes[i]
	if !ok {
		panic(errors.Errorf("landlord: TiebreakOrder.Remove of absent item %q", i.Label()).Error())
	}
	o.lst.Remove(n)
	delete(o.nodes, i)
}

// Pick returns the first item in the order that is a member of zeros.
// zeros must be non-empty: an empty zero-credit set at tiebreak time is
// a programming invariant violation and this panics.
func (o *TiebreakOrder) Pick(zeros []*Item) *Item {
	if len(zeros) == 0 {
		panic("landlord: TiebreakOrder.Pick called with empty zero-credit set")
	}
	if len(zeros) == 1 {
		return zeros[0]
	}
	member := make(map[*Item]struct{}, len(zeros))
	for _, z := range zeros {
		member[z] = struct{}{}
	}
	var victim *Item
	o.lst.Do(func(n *order.Node) bool {
		it := n.Item.(*Item)
		if _, ok := member[it]; ok {
			victim = it
			return false
		}
		return true
	})
	if victim == nil {
		panic("landlord: TiebreakOrder out of sync with zero-credit set")
	}
	return victim
}

// Len returns the number of items currently in the order.
func (o *TiebreakOrder) Len() int { return o.lst.Len() }
