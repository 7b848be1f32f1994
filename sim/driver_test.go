package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	landlord "github.com/go-pkgz/landlord-sim"
)

func mustItem(t *testing.T, label string, cost float64, size int) *landlord.Item {
	t.Helper()
	it, err := landlord.NewItem(label, cost, size)
	require.NoError(t, err)
	return it
}

// Scenario: trace [A, B, C, A], suffix_start=2, capacity 2,
// hit=LRU, tiebreak=LRU. The suffix engine only sees the trace from
// position 2 onward.
func TestDriver_Scenario3(t *testing.T) {
	a := mustItem(t, "A", 10, 1)
	b := mustItem(t, "B", 4, 1)
	c := mustItem(t, "C", 6, 1)

	d, err := New([]*landlord.Item{a, b, c}, 2, 2, landlord.HitLRU, landlord.TiebreakLRU, nil, nil)
	require.NoError(t, err)

	d.Run([]*landlord.Item{a, b, c, a})

	tr := d.Tracker()
	assert.Equal(t, []float64{10, 4, 6, 0}, tr.FullCosts())
	assert.Equal(t, []float64{0, 0, 4, 0}, tr.FullPressures())
	assert.Equal(t, []float64{0, 0, 6, 10}, tr.SuffCosts())
	assert.Equal(t, []float64{0, 0, 0, 0}, tr.SuffPressures())
	assert.InDelta(t, 0.8, tr.SCR(4), 1e-9)
}

func TestDriver_SuffixStartZero_StreamsIdentical(t *testing.T) {
	a := mustItem(t, "A", 10, 1)
	b := mustItem(t, "B", 4, 1)

	d, err := New([]*landlord.Item{a, b}, 2, 0, landlord.HitLRU, landlord.TiebreakLRU, nil, nil)
	require.NoError(t, err)

	d.Run([]*landlord.Item{a, b, a})

	tr := d.Tracker()
	assert.Equal(t, tr.FullCosts(), tr.SuffCosts())
	assert.Equal(t, tr.FullPressures(), tr.SuffPressures())
}

func TestDriver_InvalidSuffixStart(t *testing.T) {
	a := mustItem(t, "A", 10, 1)
	_, err := New([]*landlord.Item{a}, 2, -1, landlord.HitLRU, landlord.TiebreakLRU, nil, nil)
	assert.Error(t, err)
}

func TestDriver_RANDDeterminismAcrossRuns(t *testing.T) {
	build := func() []float64 {
		a := mustItem(t, "A", 10, 1)
		b := mustItem(t, "B", 4, 1)
		c := mustItem(t, "C", 6, 1)
		d, err := New([]*landlord.Item{a, b, c}, 2, 3, landlord.HitRAND, landlord.TiebreakRAND,
			[]landlord.Option{landlord.WithSeed(99)},
			[]landlord.Option{landlord.WithSeed(5)},
		)
		require.NoError(t, err)
		d.Run([]*landlord.Item{a, b, c, a, b, c, a, b, c})
		return append(append([]float64{}, d.Tracker().FullCosts()...), d.Tracker().SuffCosts()...)
	}

	assert.Equal(t, build(), build())
}
