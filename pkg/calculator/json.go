package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/henderiw/rangecalc/pkg/interval"
	"github.com/tidwall/gjson"
)

// ComputeJSON is Compute for untyped input. includes and excludes must each
// be a JSON array of {"start": n, "end": m} objects with integral numbers.
func ComputeJSON(includes, excludes []byte) ([]interval.Interval, error) {
	inc, errs := decode(SideInclude, includes)
	exc, excErrs := decode(SideExclude, excludes)
	errs = append(errs, excErrs...)
	if err := errs.errOrNil(); err != nil {
		return nil, err
	}
	return ComputeIntervals(inc, exc), nil
}

func decode(side Side, b []byte) ([]interval.Interval, Errors) {
	if !gjson.ValidBytes(b) {
		return nil, Errors{{
			Kind:   InvalidArgumentType,
			Side:   side,
			Index:  -1,
			Value:  string(b),
			Detail: "must be a JSON array",
		}}
	}
	list := gjson.ParseBytes(b)
	if !list.IsArray() {
		return nil, Errors{{
			Kind:   InvalidArgumentType,
			Side:   side,
			Index:  -1,
			Value:  list.Raw,
			Detail: fmt.Sprintf("must be an array, got %s", typeName(list)),
		}}
	}

	elems := list.Array()
	out := make([]interval.Interval, 0, len(elems))
	var errs Errors
	for idx, elem := range elems {
		r, err := decodeInterval(elem)
		if err != nil {
			errs = append(errs, &Error{
				Kind:   InvalidInterval,
				Side:   side,
				Index:  idx,
				Value:  elem.Raw,
				Detail: err.Error(),
			})
			continue
		}
		out = append(out, r)
	}
	return out, errs
}

func decodeInterval(elem gjson.Result) (interval.Interval, error) {
	if !elem.IsObject() {
		return interval.Interval{}, fmt.Errorf("must be an object, got %s", typeName(elem))
	}
	start, err := integer(elem.Get("start"))
	if err != nil {
		return interval.Interval{}, fmt.Errorf("start %w", err)
	}
	end, err := integer(elem.Get("end"))
	if err != nil {
		return interval.Interval{}, fmt.Errorf("end %w", err)
	}
	return interval.New(start, end)
}

func integer(v gjson.Result) (int64, error) {
	if !v.Exists() {
		return 0, errors.New("is missing")
	}
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("must be a number, got %s", typeName(v))
	}
	if i, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
		return i, nil
	}
	// 1e3 or 5.0 are still integers
	f := v.Num
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("must be an integer, got %s", v.Raw)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%s is out of range", v.Raw)
	}
	return int64(f), nil
}

func typeName(v gjson.Result) string {
	switch {
	case v.IsArray():
		return "array"
	case v.IsObject():
		return "object"
	}
	switch v.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	}
	return "invalid JSON"
}
