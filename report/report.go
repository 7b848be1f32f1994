// Package report collapses a Tracker into a serialization-friendly
// Summary and writes it out as human-readable key/value text
// The format itself is an implementation choice beyond the field
// list, so this one keeps it simple and
// deterministic.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"

	landlord "github.com/go-pkgz/landlord-sim"
	"github.com/go-pkgz/landlord-sim/tracker"
)

// Summary is the Report writer's projection of a Tracker.
type Summary struct {
	FullCosts []float64
	SuffCosts []float64
	FullPres  []float64
	SuffPres  []float64
	IndSCR    map[string]float64
}

// Build projects tr into a Summary. items supplies the labels that
// appear in IndSCR — only labels the Tracker knows about are included.
func Build(tr *tracker.Tracker, items []*landlord.Item) Summary {
	s := Summary{
		FullCosts: append([]float64(nil), tr.FullCosts()...),
		SuffCosts: append([]float64(nil), tr.SuffCosts()...),
		FullPres:  append([]float64(nil), tr.FullPressures()...),
		SuffPres:  append([]float64(nil), tr.SuffPressures()...),
		IndSCR:    make(map[string]float64, len(items)),
	}
	n := tr.Len()
	for _, label := range tr.Labels() {
		var matched *landlord.Item
		for _, it := range items {
			if it.Label() == label {
				matched = it
				break
			}
		}
		if matched == nil {
			continue
		}
		s.IndSCR[label] = tr.IndSCR(n, matched)
	}
	return s
}

// WriteFile creates path and writes s to it as text. It refuses to
// overwrite an existing file ("output path collision is
// fatal").
func WriteFile(path string, s Summary) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open report output %s", path)
	}
	defer f.Close() // nolint:errcheck

	w := bufio.NewWriter(f)
	if err := Write(w, s); err != nil {
		return errors.Wrapf(err, "write report to %s", path)
	}
	return errors.Wrapf(w.Flush(), "flush report to %s", path)
}

// Write renders s as human-readable key/value text to w.
func Write(w io.Writer, s Summary) error {
	if err := writeSeries(w, "full_costs", s.FullCosts); err != nil {
		return err
	}
	if err := writeSeries(w, "suff_costs", s.SuffCosts); err != nil {
		return err
	}
	if err := writeSeries(w, "full_pres", s.FullPres); err != nil {
		return err
	}
	if err := writeSeries(w, "suff_pres", s.SuffPres); err != nil {
		return err
	}

	labels := make([]string, 0, len(s.IndSCR))
	for l := range s.IndSCR {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		if _, err := fmt.Fprintf(w, "ind_scr[%s]: %g\n", l, s.IndSCR[l]); err != nil {
			return errors.Wrap(err, "write ind_scr")
		}
	}
	return nil
}

func writeSeries(w io.Writer, name string, vals []float64) error {
	if _, err := fmt.Fprintf(w, "%s:", name); err != nil {
		return errors.Wrapf(err, "write %s header", name)
	}
	for _, v := range vals {
		if _, err := fmt.Fprintf(w, " %g", v); err != nil {
			return errors.Wrapf(err, "write %s value", name)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return errors.Wrapf(err, "write %s newline", name)
	}
	return nil
}
