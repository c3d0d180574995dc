package rangetable

import (
	"fmt"

	"github.com/henderiw/rangecalc/pkg/interval"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry struct {
	Name   string
	Range  interval.Interval
	Labels labels.Set
}

type Entries []Entry

func NewEntry(name string, r interval.Interval, l labels.Set) Entry {
	return Entry{
		Name:   name,
		Range:  r,
		Labels: copyLabels(l),
	}
}

func (r Entry) String() string {
	return fmt.Sprintf("name: %s, range: %s, labels: %s", r.Name, r.Range.String(), r.Labels.String())
}

func (r Entry) Equal(e2 Entry) bool {
	return r.Name == e2.Name &&
		r.Range == e2.Range &&
		labels.Equals(r.Labels, e2.Labels)
}

// Ranges returns the ranges of all entries in order.
func (r Entries) Ranges() []interval.Interval {
	out := make([]interval.Interval, 0, len(r))
	for _, e := range r {
		out = append(out, e.Range)
	}
	return out
}

func copyLabels(l labels.Set) labels.Set {
	out := make(labels.Set, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
