// Package tracker implements the append-only ledger of full-cache and
// suffix-cache costs and pressures, indexed by request position, plus
// the per-item sequences needed for the suffix competitive ratio. Each
// per-item sequence is kept the same length as the global ones,
// zero-filled wherever that item wasn't charged on a given request.
package tracker

import (
	"github.com/pkg/errors"

	landlord "github.com/go-pkgz/landlord-sim"
)

// Channel identifies which of the two coupled engines (full or
// suffix) a log entry belongs to.
type Channel int

// The two channels a request can be logged against.
const (
	Full Channel = iota
	Suff
)

// Tracker holds the four parallel global sequences and, for every
// label known from the trace, a per-item sequence kept the same
// length as the globals.
type Tracker struct {
	labels []string

	fullCost []float64
	suffCost []float64
	fullPres []float64
	suffPres []float64

	indFullCost map[string][]float64
	indSuffCost map[string][]float64
}

// New builds a Tracker pre-populated with an empty sequence for every
// label in items, so every label referenced by the trace has a defined
// (possibly all-zero) sequence before the run starts.
func New(items []*landlord.Item) *Tracker {
	t := &Tracker{
		labels:      make([]string, 0, len(items)),
		indFullCost: make(map[string][]float64, len(items)),
		indSuffCost: make(map[string][]float64, len(items)),
	}
	for _, it := range items {
		if _, seen := t.indFullCost[it.Label()]; seen {
			continue
		}
		t.labels = append(t.labels, it.Label())
		t.indFullCost[it.Label()] = nil
		t.indSuffCost[it.Label()] = nil
	}
	return t
}

// LogCost appends 0 on a hit or cost(item) on a fault to the global
// sequence for ch, and keeps every known label's per-item sequence for
// ch in lockstep: item's own entry gets the same value, every other
// label gets a 0.
func (t *Tracker) LogCost(item *landlord.Item, ch Channel, hit bool) {
	v := 0.0
	if !hit {
		v = item.Cost()
	}
	switch ch {
	case Full:
		t.fullCost = append(t.fullCost, v)
		t.appendInd(t.indFullCost, item.Label(), v)
	case Suff:
		t.suffCost = append(t.suffCost, v)
		t.appendInd(t.indSuffCost, item.Label(), v)
	}
}

func (t *Tracker) appendInd(m map[string][]float64, label string, v float64) {
	for _, l := range t.labels {
		if l == label {
			m[l] = append(m[l], v)
		} else {
			m[l] = append(m[l], 0)
		}
	}
}

// LogPressure appends 0 on a hit or p on a fault, to the matching
// pressure sequence.
func (t *Tracker) LogPressure(p float64, ch Channel, hit bool) {
	v := 0.0
	if !hit {
		v = p
	}
	switch ch {
	case Full:
		t.fullPres = append(t.fullPres, v)
	case Suff:
		t.suffPres = append(t.suffPres, v)
	}
}

// Len returns the number of requests logged so far (the common length
// of all four global sequences).
func (t *Tracker) Len() int { return len(t.fullCost) }

// FullCosts returns the full-length full-cost sequence.
func (t *Tracker) FullCosts() []float64 { return t.fullCost }

// SuffCosts returns the full-length suffix-cost sequence.
func (t *Tracker) SuffCosts() []float64 { return t.suffCost }

// FullPressures returns the full-length full-pressure sequence.
func (t *Tracker) FullPressures() []float64 { return t.fullPres }

// SuffPressures returns the full-length suffix-pressure sequence.
func (t *Tracker) SuffPressures() []float64 { return t.suffPres }

// Labels returns every label this Tracker was pre-populated with, in
// the order first seen.
func (t *Tracker) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// FullCostAt is a point lookup into the full-cost sequence; it panics
// if k is out of range.
func (t *Tracker) FullCostAt(k int) float64 { return at(t.fullCost, k, "full cost") }

// SuffCostAt is a point lookup into the suffix-cost sequence.
func (t *Tracker) SuffCostAt(k int) float64 { return at(t.suffCost, k, "suffix cost") }

func at(seq []float64, k int, what string) float64 {
	if k < 0 || k >= len(seq) {
		panic(errors.Errorf("tracker: %s index %d out of range [0,%d)", what, k, len(seq)).Error())
	}
	return seq[k]
}

// FullCostPrefix sums full cost over [0, k).
func (t *Tracker) FullCostPrefix(k int) float64 { return prefix(t.fullCost, k) }

// SuffCostPrefix sums suffix cost over [0, k).
func (t *Tracker) SuffCostPrefix(k int) float64 { return prefix(t.suffCost, k) }

func prefix(seq []float64, k int) float64 {
	if k > len(seq) {
		k = len(seq)
	}
	var sum float64
	for _, v := range seq[:k] {
		sum += v
	}
	return sum
}

// SCR returns the suffix competitive ratio at k: suffCostPrefix(k) /
// fullCostPrefix(k). Returns 0 if nothing has been logged yet or the
// denominator is 0.
func (t *Tracker) SCR(k int) float64 {
	full := t.FullCostPrefix(k)
	if full == 0 {
		return 0
	}
	return t.SuffCostPrefix(k) / full
}

// IndSCR sums item's own full and suffix cost sequences over [0, k)
// and returns their ratio (suffix over full), or 0 if the full sum is
// 0.
func (t *Tracker) IndSCR(k int, item *landlord.Item) float64 {
	fullSum := prefix(t.indFullCost[item.Label()], k)
	if fullSum == 0 {
		return 0
	}
	suffSum := prefix(t.indSuffCost[item.Label()], k)
	return suffSum / fullSum
}
