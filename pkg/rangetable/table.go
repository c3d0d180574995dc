// Package rangetable keeps named, labeled ranges and computes include minus
// exclude over the entries selected by label.
package rangetable

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/henderiw/rangecalc/pkg/calculator"
	"github.com/henderiw/rangecalc/pkg/interval"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/labels"
)

type Table interface {
	Get(name string) (Entry, error)
	Claim(name string, r interval.Interval, l labels.Set) error
	Update(name string, r interval.Interval, l labels.Set) error
	Release(name string) error

	Iterate() *Iterator

	Count() int
	Has(name string) bool

	GetAll() Entries
	GetByLabel(selector labels.Selector) Entries

	// Compute returns the ranges of the entries matching include minus the
	// ranges of the entries matching exclude. A nil selector matches nothing.
	Compute(include, exclude labels.Selector) []interval.Interval
}

type ValidationFn func(e Entry) error

// WithinBounds rejects entries whose range is not covered by bounds.
func WithinBounds(bounds interval.Interval) ValidationFn {
	return func(e Entry) error {
		if !e.Range.CoveredBy(bounds) {
			return fmt.Errorf("range %s of %q does not fit in %s", e.Range.String(), e.Name, bounds.String())
		}
		return nil
	}
}

type Option func(*table)

func WithValidation(v ValidationFn) Option {
	return func(r *table) {
		r.validateFn = v
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(r *table) {
		r.log = logrus.NewEntry(l)
	}
}

// New creates a table seeded with initEntries. Seed entries skip the
// validation function; all seeding failures are returned joined.
func New(initEntries Entries, opts ...Option) (Table, error) {
	r := &table{
		m:     new(sync.RWMutex),
		table: map[string]Entry{},
		log:   logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, o := range opts {
		o(r)
	}

	var errm error
	for _, e := range initEntries {
		if err := r.add(e, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	return r, errm
}

type table struct {
	m          *sync.RWMutex
	table      map[string]Entry
	validateFn ValidationFn
	log        *logrus.Entry
}

func (r *table) validate(e Entry, init bool) error {
	if e.Name == "" {
		return fmt.Errorf("entry %s has no name", e.Range.String())
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(e); err != nil {
			return err
		}
	}
	return nil
}

func (r *table) Get(name string) (Entry, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.table[name]
	if !ok {
		return Entry{}, fmt.Errorf("no match found for: %s", name)
	}
	return e, nil
}

func (r *table) Claim(name string, rng interval.Interval, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(NewEntry(name, rng, l), false)
}

func (r *table) Update(name string, rng interval.Interval, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.update(NewEntry(name, rng, l))
}

func (r *table) Release(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.table[name]; !ok {
		return fmt.Errorf("entry %s not found", name)
	}
	delete(r.table, name)
	r.log.WithField("name", name).Debug("released range")
	return nil
}

func (r *table) Iterate() *Iterator {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.iterate()
}

func (r *table) iterate() *Iterator {
	keys := make([]string, 0, len(r.table))
	table := make(map[string]Entry, len(r.table))
	for key, e := range r.table {
		keys = append(keys, key)
		table[key] = e
	}
	sort.Strings(keys)

	return &Iterator{current: -1, keys: keys, table: table}
}

func (r *table) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *table) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[name]
	return ok
}

func (r *table) GetAll() Entries {
	entries := Entries{}

	iter := r.Iterate()
	for iter.Next() {
		entries = append(entries, iter.Value())
	}
	return entries
}

func (r *table) GetByLabel(selector labels.Selector) Entries {
	entries := Entries{}
	if selector == nil {
		return entries
	}

	iter := r.Iterate()
	for iter.Next() {
		if selector.Matches(iter.Value().Labels) {
			entries = append(entries, iter.Value())
		}
	}
	return entries
}

func (r *table) Compute(include, exclude labels.Selector) []interval.Interval {
	// one snapshot so both selections see the same table
	iter := r.Iterate()

	var includes, excludes []interval.Interval
	for iter.Next() {
		e := iter.Value()
		if include != nil && include.Matches(e.Labels) {
			includes = append(includes, e.Range)
		}
		if exclude != nil && exclude.Matches(e.Labels) {
			excludes = append(excludes, e.Range)
		}
	}
	result := calculator.ComputeIntervals(includes, excludes)
	r.log.WithFields(logrus.Fields{
		"includes": len(includes),
		"excludes": len(excludes),
		"result":   len(result),
	}).Debug("computed ranges")
	return result
}

func (r *table) add(e Entry, init bool) error {
	if err := r.validate(e, init); err != nil {
		return err
	}
	if _, ok := r.table[e.Name]; ok {
		return fmt.Errorf("entry %s already exists", e.Name)
	}
	r.table[e.Name] = e
	r.log.WithFields(logrus.Fields{"name": e.Name, "range": e.Range.String()}).Debug("claimed range")
	return nil
}

func (r *table) update(e Entry) error {
	if err := r.validate(e, false); err != nil {
		return err
	}
	if _, ok := r.table[e.Name]; !ok {
		return fmt.Errorf("entry %s not found", e.Name)
	}
	r.table[e.Name] = e
	return nil
}
