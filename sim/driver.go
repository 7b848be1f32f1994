// Package sim implements the Driver: it owns the full and suffix
// Landlord engines plus the Tracker, and drives the request loop that
// feeds both.
package sim

import (
	"github.com/pkg/errors"

	landlord "github.com/go-pkgz/landlord-sim"
	"github.com/go-pkgz/landlord-sim/tracker"
)

// Driver owns a full engine servicing every request and a suffix
// engine servicing only the trace starting at SuffixStart, and feeds
// both into a shared Tracker.
type Driver struct {
	full        *landlord.Engine
	suffix      *landlord.Engine
	tracker     *tracker.Tracker
	suffixStart int
}

// New builds a Driver. items is the full, de-duplicated item table
// (used to pre-populate the Tracker's per-item sequences); capacity,
// hit and tiebreak configure both engines identically. suffixStart is
// the trace index from which the suffix engine begins servicing
// requests.
//
// fullOpts/suffixOpts let callers fix distinct PRNG seeds per engine
// (e.g. for the RAND-policy determinism property test); pass nil for
// defaults.
func New(items []*landlord.Item, capacity int, suffixStart int,
	hit landlord.HitPolicy, tiebreak landlord.TiebreakPolicy,
	fullOpts, suffixOpts []landlord.Option) (*Driver, error) {
	if suffixStart < 0 {
		return nil, errors.Errorf("suffix start must be non-negative, got %d", suffixStart)
	}
	full, err := landlord.NewEngine(capacity, hit, tiebreak, fullOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "building full engine")
	}
	suffix, err := landlord.NewEngine(capacity, hit, tiebreak, suffixOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "building suffix engine")
	}
	return &Driver{
		full:        full,
		suffix:      suffix,
		tracker:     tracker.New(items),
		suffixStart: suffixStart,
	}, nil
}

// Tracker returns the Driver's Tracker, ready for the Report writer
// once Run has completed.
func (d *Driver) Tracker() *tracker.Tracker { return d.tracker }

// Run feeds trace through the full engine always, and through the
// suffix engine only from SuffixStart onward, logging both channels to
// the Tracker at every step.
func (d *Driver) Run(trace []*landlord.Item) {
	for i, item := range trace {
		fullRes := d.full.Request(item)
		d.tracker.LogCost(item, tracker.Full, fullRes.Hit)
		d.tracker.LogPressure(fullRes.Pressure, tracker.Full, fullRes.Hit)

		if i < d.suffixStart {
			d.tracker.LogCost(item, tracker.Suff, true)
			d.tracker.LogPressure(0, tracker.Suff, true)
			continue
		}
		suffRes := d.suffix.Request(item)
		d.tracker.LogCost(item, tracker.Suff, suffRes.Hit)
		d.tracker.LogPressure(suffRes.Pressure, tracker.Suff, suffRes.Hit)
	}
}
