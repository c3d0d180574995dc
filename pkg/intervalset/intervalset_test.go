package intervalset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/rangecalc/pkg/interval"
	"github.com/tj/assert"
)

func TestBuilder(t *testing.T) {
	type op struct {
		remove     bool
		start, end int64
	}
	cases := map[string]struct {
		ops         []op
		expected    string
		count       uint64
		expectedErr bool
	}{
		"Empty": {
			expected: "",
		},
		"AddOnly": {
			ops: []op{
				{start: 200, end: 300},
				{start: 10, end: 100},
				{start: 50, end: 150},
			},
			expected: "10-150,200-300",
			count:    242,
		},
		"AddRemove": {
			ops: []op{
				{start: 50, end: 150},
				{start: 200, end: 300},
				{remove: true, start: 95, end: 205},
			},
			expected: "50-94,206-300",
			count:    140,
		},
		"RemoveDoesNotAffectLaterAdds": {
			ops: []op{
				{start: 1, end: 10},
				{remove: true, start: 3, end: 7},
				{start: 5, end: 5},
			},
			expected: "1-2,5-5,8-10",
			count:    6,
		},
		"InvalidRange": {
			ops: []op{
				{start: 1, end: 10},
				{start: 10, end: 5},
				{remove: true, start: 9, end: 3},
			},
			expected:    "1-10",
			count:       10,
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var b Builder
			for _, o := range tc.ops {
				if o.remove {
					b.RemoveRangeFrom(o.start, o.end)
				} else {
					b.AddRangeFrom(o.start, o.end)
				}
			}
			s, err := b.Set()
			if tc.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expected, s.String())
			assert.Equal(t, tc.count, s.Count())
			assert.True(t, interval.IsNormalized(s.Ranges()))
		})
	}
}

func TestBuilderErrorsReset(t *testing.T) {
	var b Builder
	b.AddRangeFrom(5, 1)
	_, err := b.Set()
	assert.Error(t, err)
	_, err = b.Set()
	assert.NoError(t, err)
}

func TestContains(t *testing.T) {
	var b Builder
	b.AddRange(interval.MustNew(10, 20))
	b.AddRange(interval.MustNew(30, 40))
	b.RemoveRange(interval.MustNew(15, 15))
	s, err := b.Set()
	assert.NoError(t, err)

	for p, expected := range map[int64]bool{
		9: false, 10: true, 14: true, 15: false, 16: true, 20: true,
		21: false, 29: false, 30: true, 40: true, 41: false,
	} {
		if s.Contains(p) != expected {
			t.Errorf("Contains(%d): -want %t, +got %t", p, expected, !expected)
		}
	}
}

func TestAddSet(t *testing.T) {
	var a Builder
	a.AddRangeFrom(1, 5)
	first, _ := a.Set()

	var b Builder
	b.AddRangeFrom(4, 10)
	b.AddSet(first)
	b.AddSet(nil)
	second, err := b.Set()
	assert.NoError(t, err)

	var c Builder
	c.AddSet(second)
	c.RemoveSet(first)
	third, err := c.Set()
	assert.NoError(t, err)

	if diff := cmp.Diff("1-10", second.String()); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
	if diff := cmp.Diff("6-10", third.String()); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}
	assert.False(t, second.Equal(third))
	assert.True(t, third.Equal(third))
	assert.Equal(t, 1, third.Len())
}
