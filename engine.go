package landlord

import (
	"math/rand"

	"github.com/pkg/errors"
)

// HitPolicy refreshes a cached item's credit on a hit.
type HitPolicy int

// The closed set of hit policies.
const (
	HitLRU HitPolicy = iota
	HitFIFO
	HitRAND
	HitHALF
)

// String implements fmt.Stringer.
func (p HitPolicy) String() string {
	switch p {
	case HitLRU:
		return "LRU"
	case HitFIFO:
		return "FIFO"
	case HitRAND:
		return "RAND"
	case HitHALF:
		return "HALF"
	default:
		return "UNKNOWN"
	}
}

// ParseHitPolicy parses one of the closed set {LRU, FIFO, RAND, HALF}.
func ParseHitPolicy(s string) (HitPolicy, error) {
	switch s {
	case "LRU":
		return HitLRU, nil
	case "FIFO":
		return HitFIFO, nil
	case "RAND":
		return HitRAND, nil
	case "HALF":
		return HitHALF, nil
	default:
		return 0, errors.Errorf("unknown hit policy %q, want one of LRU, FIFO, RAND, HALF", s)
	}
}

// RequestResult is the outcome of one Engine.Request call: a hit, or a
// fault carrying the pressure charged during its eviction cascade.
type RequestResult struct {
	Hit      bool
	Pressure float64
}

// Engine is the Landlord replacement engine: a Cache, a TiebreakOrder
// kept in lockstep with it, and the hit/fault/evict logic that ties
// them together.
type Engine struct {
	hitPolicy      HitPolicy
	tiebreakPolicy TiebreakPolicy
	cache          *Cache
	order          *TiebreakOrder
	rng            *rand.Rand
	notifier       Notifier
}

// NewEngine builds a Landlord engine over a fresh, empty Cache of the
// given capacity.
func NewEngine(capacity int, hit HitPolicy, tiebreak TiebreakPolicy, opts ...Option) (*Engine, error) {
	if capacity <= 0 {
		return nil, errors.Errorf("engine capacity must be positive, got %d", capacity)
	}
	o, err := newEngineOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{
		hitPolicy:      hit,
		tiebreakPolicy: tiebreak,
		cache:          NewCache(capacity),
		order:          NewTiebreakOrder(tiebreak),
		rng:            newRNG(o.seed),
		notifier:       o.notifier,
	}, nil
}

// Cache exposes the engine's Cache for inspection (tests, invariant
// checks); it must not be mutated directly by callers.
func (e *Engine) Cache() *Cache { return e.cache }

// Order exposes the engine's TiebreakOrder for inspection.
func (e *Engine) Order() *TiebreakOrder { return e.order }

// Request dispatches one request for item i: a hit if i is already
// cached, otherwise a fault that may trigger eviction.
func (e *Engine) Request(i *Item) RequestResult {
	if e.cache.Occupied() > e.cache.Capacity() {
		panic(errors.Errorf("landlord: cache overfull at request entry (%d>%d)",
			e.cache.Occupied(), e.cache.Capacity()).Error())
	}
	if e.cache.Contains(i) {
		return e.hit(i)
	}
	return e.fault(i)
}

func (e *Engine) hit(i *Item) RequestResult {
	old := e.cache.GetCredit(i)
	cost := i.Cost()
	var next float64
	switch e.hitPolicy {
	case HitLRU:
		next = cost
	case HitFIFO:
		next = old
	case HitRAND:
		if old == cost {
			next = cost
		} else {
			next = old + e.rng.Float64()*(cost-old)
		}
	case HitHALF:
		next = (cost - old) / 2
	}
	e.cache.SetCredit(i, next)
	e.order.TouchOnHit(i, e.rng)
	e.notifier.OnHit(i)
	return RequestResult{Hit: true}
}

func (e *Engine) fault(i *Item) RequestResult {
	var pressure float64
	if e.cache.Occupied()+i.Size() > e.cache.Capacity() {
		pressure = e.evict(i.Size())
	}
	e.cache.Insert(i, i.Cost())
	e.order.InsertOnFault(i, e.rng)
	e.notifier.OnFault(i, pressure)
	return RequestResult{Hit: false, Pressure: pressure}
}

// evict makes room for needed size, returning the total pressure
// charged across the eviction cascade.
func (e *Engine) evict(needed int) float64 {
	var total float64
	for e.cache.Capacity()-e.cache.Occupied() < needed {
		_, mu := e.cache.MinNormalized()
		before := e.cache.Occupied()
		e.cache.DecayAll(mu)
		zeros := e.cache.ZeroCredit()
		if len(zeros) == 0 {
			panic("landlord: evict decay pass produced no zero-credit item")
		}
		victim := e.order.Pick(zeros)
		e.cache.Remove(victim)
		e.order.Remove(victim)
		if e.cache.Occupied() >= before {
			panic("landlord: evict step failed to decrease occupancy")
		}
		total += mu
	}
	return total
}
