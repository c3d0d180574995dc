package interval

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSubtract(t *testing.T) {
	cases := map[string]struct {
		includes []Interval
		excludes []Interval
		expected []Interval
	}{
		"NoExcludes": {
			includes: rr(1, 5, 6, 10),
			expected: rr(1, 5, 6, 10),
		},
		"NoIncludes": {
			excludes: rr(1, 5),
			expected: rr(),
		},
		"FullCoverage": {
			includes: rr(1, 10),
			excludes: rr(0, 20),
			expected: rr(),
		},
		"ExactCoverage": {
			includes: rr(1, 10),
			excludes: rr(1, 10),
			expected: rr(),
		},
		"Interior": {
			includes: rr(1, 10),
			excludes: rr(3, 7),
			expected: rr(1, 2, 8, 10),
		},
		"LeadingEdge": {
			includes: rr(10, 20),
			excludes: rr(5, 12),
			expected: rr(13, 20),
		},
		"TrailingEdge": {
			includes: rr(10, 20),
			excludes: rr(15, 30),
			expected: rr(10, 14),
		},
		"SinglePointCuts": {
			includes: rr(1, 5),
			excludes: rr(1, 1, 3, 3, 5, 5),
			expected: rr(2, 2, 4, 4),
		},
		"ExcludesOutside": {
			includes: rr(10, 20),
			excludes: rr(1, 9, 21, 30),
			expected: rr(10, 20),
		},
		"TwoIncludesTwoExcludes": {
			includes: rr(1, 10, 20, 30),
			excludes: rr(5, 15, 25, 35),
			expected: rr(1, 4, 20, 24),
		},
		"SmallInsideLarge": {
			includes: rr(10, 100),
			excludes: rr(20, 30),
			expected: rr(10, 19, 31, 100),
		},
		"ExcludeSpanningIncludes": {
			includes: rr(50, 150, 200, 300),
			excludes: rr(95, 205),
			expected: rr(50, 94, 206, 300),
		},
		"Complex": {
			includes: rr(10, 100, 200, 300, 400, 500),
			excludes: rr(95, 205, 410, 420),
			expected: rr(10, 94, 206, 300, 400, 409, 421, 500),
		},
		"ManyInteriorCuts": {
			includes: rr(0, 20),
			excludes: rr(2, 3, 6, 7, 10, 11, 19, 25),
			expected: rr(0, 1, 4, 5, 8, 9, 12, 18),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := Subtract(tc.includes, tc.excludes)
			if diff := cmp.Diff(tc.expected, got, cmpOpts); diff != "" {
				t.Errorf("%s Subtract: -want, +got:\n%s", name, diff)
			}
			got = Sweep(tc.includes, tc.excludes)
			if diff := cmp.Diff(tc.expected, got, cmpOpts); diff != "" {
				t.Errorf("%s Sweep: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestSubtractProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		includes := Merge(randomIntervals(rnd, rnd.Intn(8), 100))
		excludes := Merge(randomIntervals(rnd, rnd.Intn(8), 100))

		got := Subtract(includes, excludes)
		if !IsNormalized(got) {
			t.Fatalf("result not normalized: %v", got)
		}

		expected := points(includes)
		for p := range points(excludes) {
			delete(expected, p)
		}
		if diff := cmp.Diff(expected, points(got)); diff != "" {
			t.Fatalf("%v minus %v: -want, +got:\n%s", includes, excludes, diff)
		}
		if diff := cmp.Diff(got, Sweep(includes, excludes), cmpOpts); diff != "" {
			t.Fatalf("Sweep differs for %v minus %v: -want, +got:\n%s", includes, excludes, diff)
		}
	}
}
