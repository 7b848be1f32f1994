package landlord

import "github.com/pkg/errors"

// creditEpsilon absorbs the floating-point residue of the decay pass:
// subtracting mu*size(j) from the item that produced mu is only exactly
// zero in real-number arithmetic. In float64 it routinely lands a few
// ULPs away from 0 on either side (e.g. cost=1, size=49 decays to
// 1.1102230246251565e-16, not 0.0). Credits within this band of zero
// are treated as zero.
const creditEpsilon = 1e-9

// Cache maps cached items to their current credit, under a fixed
// integer capacity. It is a map plus a running occupancy counter; the
// eviction decision itself lives in Engine, not here: Cache only
// enforces the capacity/occupancy invariant and exposes the
// credit-per-size minimum the evict loop needs.
type Cache struct {
	capacity int
	occupied int
	credits  map[*Item]credit
}

// NewCache builds an empty Cache with the given capacity.
func NewCache(capacity int) *Cache {
	return &Cache{capacity: capacity, credits: map[*Item]credit{}}
}

// Capacity returns the fixed capacity C.
func (c *Cache) Capacity() int { return c.capacity }

// Occupied returns the current occupancy, sum of sizes of cached items.
func (c *Cache) Occupied() int { return c.occupied }

// Contains reports whether item i is currently cached.
func (c *Cache) Contains(i *Item) bool {
	_, ok := c.credits[i]
	return ok
}

// GetCredit returns the credit of a cached item. It panics if the item
// is absent: callers must check Contains first.
func (c *Cache) GetCredit(i *Item) float64 {
	cr, ok := c.credits[i]
	if !ok {
		panic(errors.Errorf("landlord: GetCredit on absent item %q", i.Label()).Error())
	}
	return cr.float()
}

// SetCredit assigns a new credit to an already-cached item (used by the
// hit-policy refresh). It panics if the item is absent.
func (c *Cache) SetCredit(i *Item, v float64) {
	if _, ok := c.credits[i]; !ok {
		panic(errors.Errorf("landlord: SetCredit on absent item %q", i.Label()).Error())
	}
	c.credits[i] = newCredit(v)
}

// Insert adds a new item at the given credit. Precondition: i is not
// already cached and occupied+size(i) <= capacity; violating either is
// a programming error and panics.
func (c *Cache) Insert(i *Item, v float64) {
	if _, ok := c.credits[i]; ok {
		panic(errors.Errorf("landlord: Insert of already-cached item %q", i.Label()).Error())
	}
	if c.occupied+i.Size() > c.capacity {
		panic(errors.Errorf("landlord: Insert of %q would exceed capacity (%d+%d>%d)",
			i.Label(), c.occupied, i.Size(), c.capacity).Error())
	}
	c.credits[i] = newCredit(v)
	c.occupied += i.Size()
}

// Remove drops an item from the cache. Precondition: i is cached.
func (c *Cache) Remove(i *Item) {
	if _, ok := c.credits[i]; !ok {
		panic(errors.Errorf("landlord: Remove of absent item %q", i.Label()).Error())
	}
	delete(c.credits, i)
	c.occupied -= i.Size()
}

// Iter calls fn for every cached (item, credit) pair in unspecified
// order. Iteration stops early if fn returns false.
func (c *Cache) Iter(fn func(i *Item, cr float64) bool) {
	for i, cr := range c.credits {
		if !fn(i, cr.float()) {
			return
		}
	}
}

// DecayAll subtracts mu*size(j) from every cached item's credit. Used
// by the evict loop's decay pass. Results landing within creditEpsilon
// of zero are clamped to exactly 0, on either side: this keeps the
// item(s) that produced mu (via MinNormalized) reliably detectable by
// ZeroCredit despite float64 rounding, and keeps credit from drifting
// to a small negative value.
func (c *Cache) DecayAll(mu float64) {
	for i, cr := range c.credits {
		v := cr.float() - mu*float64(i.Size())
		if v > -creditEpsilon && v < creditEpsilon {
			v = 0
		}
		c.credits[i] = newCredit(v)
	}
}

// ZeroCredit returns the set of cached items whose credit is zero
// (within creditEpsilon, to absorb decay rounding), as a slice (order
// unspecified; TiebreakOrder.Pick resolves the tie).
func (c *Cache) ZeroCredit() []*Item {
	var zeros []*Item
	for i, cr := range c.credits {
		v := cr.float()
		if v > -creditEpsilon && v < creditEpsilon {
			zeros = append(zeros, i)
		}
	}
	return zeros
}

// MinNormalized returns the cached item minimizing credit/size, and
// that minimum value. Panics if the cache is empty: the evict loop
// stops as soon as enough room is free, which an empty cache always has
// for an item no larger than the capacity.
func (c *Cache) MinNormalized() (*Item, float64) {
	var best *Item
	var bestVal float64
	first := true
	for i, cr := range c.credits {
		v := cr.float() / float64(i.Size())
		if first || v < bestVal {
			best, bestVal, first = i, v, false
		}
	}
	if first {
		panic("landlord: MinNormalized on empty cache")
	}
	return best, bestVal
}
