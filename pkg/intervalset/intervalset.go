package intervalset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/henderiw/rangecalc/pkg/interval"
)

// Builder accumulates ranges to add and to remove. The zero value is ready
// to use.
type Builder struct {
	in   []interval.Interval
	out  []interval.Interval
	errs error
}

func (s *Builder) AddRange(r interval.Interval) {
	if len(s.out) > 0 {
		s.normalize()
	}
	s.in = append(s.in, r)
}

// AddRangeFrom adds start-end, recording an error when it is not a valid
// interval.
func (s *Builder) AddRangeFrom(start, end int64) {
	r, err := interval.New(start, end)
	if err != nil {
		s.errs = errors.Join(s.errs, fmt.Errorf("addRange(%d-%d): %w", start, end, err))
		return
	}
	s.AddRange(r)
}

// RemoveRange removes all points in r from s.
func (s *Builder) RemoveRange(r interval.Interval) {
	s.out = append(s.out, r)
}

// RemoveRangeFrom removes start-end, recording an error when it is not a
// valid interval.
func (s *Builder) RemoveRangeFrom(start, end int64) {
	r, err := interval.New(start, end)
	if err != nil {
		s.errs = errors.Join(s.errs, fmt.Errorf("removeRange(%d-%d): %w", start, end, err))
		return
	}
	s.RemoveRange(r)
}

// AddSet adds all points in b to s.
func (s *Builder) AddSet(b *Set) {
	if b == nil {
		return
	}
	for _, r := range b.rr {
		s.AddRange(r)
	}
}

// RemoveSet removes all points in b from s.
func (s *Builder) RemoveSet(b *Set) {
	if b == nil {
		return
	}
	s.out = append(s.out, b.rr...)
}

// normalize normalizes s: s.in becomes the minimal sorted list of
// ranges required to describe s, and s.out becomes empty.
func (s *Builder) normalize() {
	in := interval.Merge(s.in)
	out := interval.Merge(s.out)
	s.in = interval.Sweep(in, out)
	s.out = nil
}

// Set returns the normalized set along with every error recorded since the
// previous call.
func (s *Builder) Set() (*Set, error) {
	s.normalize()
	set := &Set{
		rr: append([]interval.Interval{}, s.in...),
	}
	errs := s.errs
	s.errs = nil
	return set, errs
}

type Set struct {
	// rr is sorted by start and holds no overlapping ranges. Contains
	// relies on this property.
	rr []interval.Interval
}

// Ranges returns the minimum and sorted set of ranges that covers s.
func (s *Set) Ranges() []interval.Interval {
	return append([]interval.Interval{}, s.rr...)
}

// Len returns the number of ranges in s.
func (s *Set) Len() int { return len(s.rr) }

// Count returns the number of points in s, saturating at the uint64 max.
func (s *Set) Count() uint64 {
	var total uint64
	for _, r := range s.rr {
		n := r.Len()
		if total+n < total {
			return ^uint64(0)
		}
		total += n
	}
	return total
}

func (s *Set) Contains(p int64) bool {
	idx := sort.Search(len(s.rr), func(i int) bool { return s.rr[i].End() >= p })
	return idx < len(s.rr) && s.rr[idx].Contains(p)
}

func (s *Set) Equal(other *Set) bool {
	if len(s.rr) != len(other.rr) {
		return false
	}
	for i := range s.rr {
		if s.rr[i] != other.rr[i] {
			return false
		}
	}
	return true
}

func (s *Set) String() string {
	parts := make([]string, 0, len(s.rr))
	for _, r := range s.rr {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ",")
}
