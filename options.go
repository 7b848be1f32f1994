package landlord

import (
	"math/rand"

	"github.com/pkg/errors"
)

// engineOptions holds the configurable knobs of an Engine, set via
// functional Options.
type engineOptions struct {
	seed     int64
	notifier Notifier
}

// Option configures an Engine at construction time.
type Option func(*engineOptions) error

// WithSeed fixes the PRNG seed used by RAND hit/tiebreak policies, for
// reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *engineOptions) error {
		o.seed = seed
		return nil
	}
}

// WithNotifier attaches a Notifier observing hit/fault events. By
// default an Engine uses NopNotifier.
func WithNotifier(n Notifier) Option {
	return func(o *engineOptions) error {
		if n == nil {
			return errors.New("nil notifier")
		}
		o.notifier = n
		return nil
	}
}

func newEngineOptions(opts ...Option) (engineOptions, error) {
	res := engineOptions{seed: 1, notifier: NopNotifier{}}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, errors.Wrap(err, "failed to set engine option")
		}
	}
	return res, nil
}

func newRNG(seed int64) *rand.Rand {
	// #nosec G404 -- reproducibility, not cryptography: RAND policies
	// need a seedable PRNG for deterministic test runs.
	return rand.New(rand.NewSource(seed))
}
