// Package trace loads and validates the input text configuration: an
// exhaustive item table and a request trace of labels. The file format
// itself is an implementation choice; this picks YAML.
package trace

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	landlord "github.com/go-pkgz/landlord-sim"
)

// itemSpec is the on-disk shape of one item table row.
type itemSpec struct {
	Label string  `yaml:"label"`
	Cost  float64 `yaml:"cost"`
	Size  int     `yaml:"size"`
}

// fileConfig is the on-disk shape of the whole input file.
type fileConfig struct {
	Items []itemSpec `yaml:"items"`
	Trace []string   `yaml:"trace"`
}

// Trace is the resolved, validated result of Load: every label in the
// trace has been resolved to a stable *landlord.Item handle.
type Trace struct {
	Items    []*landlord.Item
	Requests []*landlord.Item
}

// Load reads path, builds the item table and resolves the request
// trace against it. It rejects the run with a diagnostic if any item
// has size > capacity or any trace label is unknown, aggregating every
// such problem via multierror rather than stopping at the first one.
func Load(path string, capacity int) (*Trace, error) {
	raw, err := os.ReadFile(path) // nolint:gosec // operator-supplied trace path
	if err != nil {
		return nil, errors.Wrapf(err, "read trace config %s", path)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse trace config %s", path)
	}

	errs := new(multierror.Error)

	byLabel := make(map[string]*landlord.Item, len(cfg.Items))
	items := make([]*landlord.Item, 0, len(cfg.Items))
	for _, spec := range cfg.Items {
		it, err := landlord.NewItem(spec.Label, spec.Cost, spec.Size)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "item %q", spec.Label))
			continue
		}
		if it.Size() > capacity {
			errs = multierror.Append(errs, errors.Errorf("item %q: size %d exceeds capacity %d", it.Label(), it.Size(), capacity))
			continue
		}
		if _, dup := byLabel[it.Label()]; dup {
			errs = multierror.Append(errs, errors.Errorf("item %q: duplicate label", it.Label()))
			continue
		}
		byLabel[it.Label()] = it
		items = append(items, it)
	}

	requests := make([]*landlord.Item, 0, len(cfg.Trace))
	for pos, label := range cfg.Trace {
		it, ok := byLabel[label]
		if !ok {
			errs = multierror.Append(errs, errors.Errorf("trace position %d: unknown label %q", pos, label))
			continue
		}
		requests = append(requests, it)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, errors.Wrapf(err, "validating trace config %s", path)
	}

	return &Trace{Items: items, Requests: requests}, nil
}
