// Package interval implements closed integer ranges together with the merge
// and subtract operations used to normalize include and exclude lists.
package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MinBound and MaxBound leave one value of headroom on each side of
	// int64 so start-1 and end+1 never wrap.
	MinBound = math.MinInt64 + 1
	MaxBound = math.MaxInt64 - 1
)

// Interval is a closed integer range [start, end] with start <= end.
// Values can only be obtained through New, MustNew or Parse.
type Interval struct {
	start int64
	end   int64
}

func New(start, end int64) (Interval, error) {
	if start > end {
		return Interval{}, fmt.Errorf("start %d is bigger than end %d", start, end)
	}
	if start < MinBound || end > MaxBound {
		return Interval{}, fmt.Errorf("range %d-%d exceeds the supported bounds %d-%d", start, end, int64(MinBound), int64(MaxBound))
	}
	return Interval{start: start, end: end}, nil
}

// MustNew is like New but panics on an invalid range. Intended for literals.
func MustNew(start, end int64) Interval {
	i, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return i
}

// Parse parses "start-end". A leading minus on either bound is accepted.
func Parse(s string) (Interval, error) {
	h := separator(s)
	if h == -1 {
		return Interval{}, fmt.Errorf("no hyphen in range %q", s)
	}
	from, to := s[:h], s[h+1:]
	start, err := strconv.ParseInt(from, 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid start %q in range %q", from, s)
	}
	end, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid end %q in range %q", to, s)
	}
	return New(start, end)
}

// separator returns the index of the hyphen between the two bounds, skipping
// a sign on the first one.
func separator(s string) int {
	if len(s) < 2 {
		return -1
	}
	h := strings.IndexByte(s[1:], '-')
	if h == -1 {
		return -1
	}
	return h + 1
}

// Start returns the lower bound of i.
func (i Interval) Start() int64 { return i.start }

// End returns the upper bound of i.
func (i Interval) End() int64 { return i.end }

func (i Interval) String() string {
	return fmt.Sprintf("%d-%d", i.start, i.end)
}

// Len returns the number of integer points in i. It always fits in a uint64
// given the bounds enforced by New.
func (i Interval) Len() uint64 {
	return uint64(i.end-i.start) + 1
}

func (i Interval) Contains(p int64) bool {
	return i.start <= p && p <= i.end
}

func (i Interval) Equal(other Interval) bool {
	return i == other
}

// Less orders by start, then by the longer interval first.
func (i Interval) Less(other Interval) bool {
	if i.start != other.start {
		return i.start < other.start
	}
	return other.end < i.end
}

// Overlaps returns whether i and other share at least one point.
func (i Interval) Overlaps(other Interval) bool {
	return i.start <= other.end && other.start <= i.end
}

// EntirelyBefore returns whether i lies entirely before other.
func (i Interval) EntirelyBefore(other Interval) bool {
	return i.end < other.start
}

// CoveredBy returns whether i is entirely contained within other.
func (i Interval) CoveredBy(other Interval) bool {
	return other.start <= i.start && i.end <= other.end
}

// InMiddleOf returns whether i is inside other, but not touching the
// edges of other.
func (i Interval) InMiddleOf(other Interval) bool {
	return other.start < i.start && i.end < other.end
}

// OverlapsStartOf returns whether i overlaps the start of other, but not all
// of other.
func (i Interval) OverlapsStartOf(other Interval) bool {
	return i.start <= other.start && i.end < other.end
}

// OverlapsEndOf returns whether i overlaps the end of other, but not all of
// other.
func (i Interval) OverlapsEndOf(other Interval) bool {
	return other.start < i.start && other.end <= i.end
}
