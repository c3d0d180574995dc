// Package calculator computes the union of include ranges minus the union of
// exclude ranges. Input is validated once, up front, and every failure is
// reported in a single Errors value.
package calculator

import (
	"fmt"

	"github.com/henderiw/rangecalc/pkg/interval"
)

// Candidate is an unvalidated start/end pair as produced by a parser.
type Candidate struct {
	Start int64 `json:"start" yaml:"start"`
	End   int64 `json:"end" yaml:"end"`
}

func (c Candidate) String() string {
	return fmt.Sprintf("%d-%d", c.Start, c.End)
}

// Validate converts candidates into intervals. It reports one error per
// offending candidate and never stops at the first.
func Validate(side Side, candidates []Candidate) ([]interval.Interval, Errors) {
	out := make([]interval.Interval, 0, len(candidates))
	var errs Errors
	for idx, c := range candidates {
		r, err := interval.New(c.Start, c.End)
		if err != nil {
			errs = append(errs, &Error{
				Kind:   InvalidInterval,
				Side:   side,
				Index:  idx,
				Value:  c.String(),
				Detail: err.Error(),
			})
			continue
		}
		out = append(out, r)
	}
	return out, errs
}

// Compute validates both lists and returns merge(includes) minus
// merge(excludes). The returned error, if any, is of type Errors.
func Compute(includes, excludes []Candidate) ([]interval.Interval, error) {
	inc, errs := Validate(SideInclude, includes)
	exc, excErrs := Validate(SideExclude, excludes)
	errs = append(errs, excErrs...)
	if len(errs) > 0 {
		return nil, errs
	}
	return ComputeIntervals(inc, exc), nil
}

// ComputeIntervals is Compute for already valid intervals.
func ComputeIntervals(includes, excludes []interval.Interval) []interval.Interval {
	if len(includes) == 0 {
		return []interval.Interval{}
	}
	mergedIncludes := interval.Merge(includes)
	mergedExcludes := interval.Merge(excludes)
	if len(mergedExcludes) == 0 {
		return mergedIncludes
	}
	return interval.Subtract(mergedIncludes, mergedExcludes)
}
