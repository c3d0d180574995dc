package iprange

import (
	"encoding/binary"
	"fmt"
	"math"
	"net/netip"
	"strings"

	"github.com/henderiw/rangecalc/pkg/calculator"
	"github.com/henderiw/rangecalc/pkg/interval"
	"github.com/henderiw/rangecalc/pkg/rangetext"
	"go4.org/netipx"
)

// FromIPRange maps an IPv4 range onto the integer line.
func FromIPRange(r netipx.IPRange) (interval.Interval, error) {
	if !r.IsValid() {
		return interval.Interval{}, fmt.Errorf("ip range %s is invalid", r.String())
	}
	from, to := r.From().Unmap(), r.To().Unmap()
	if !from.Is4() || !to.Is4() {
		return interval.Interval{}, fmt.Errorf("ip range %s is not an ipv4 range", r.String())
	}
	return interval.New(addrToInt(from), addrToInt(to))
}

// ToIPRange is the inverse of FromIPRange.
func ToIPRange(i interval.Interval) (netipx.IPRange, error) {
	if i.Start() < 0 || i.End() > math.MaxUint32 {
		return netipx.IPRange{}, fmt.Errorf("range %s does not fit in the ipv4 address space", i.String())
	}
	return netipx.IPRangeFrom(addrFromInt(i.Start()), addrFromInt(i.End())), nil
}

// ParseRange accepts "a.b.c.d-e.f.g.h", a CIDR prefix or a single address.
func ParseRange(s string) (netipx.IPRange, error) {
	switch {
	case strings.Contains(s, "-"):
		return netipx.ParseIPRange(s)
	case strings.Contains(s, "/"):
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netipx.IPRange{}, err
		}
		return netipx.RangeOfPrefix(p), nil
	default:
		a, err := netip.ParseAddr(s)
		if err != nil {
			return netipx.IPRange{}, err
		}
		return netipx.IPRangeFrom(a, a), nil
	}
}

// Parse parses comma separated IPv4 ranges, reporting every malformed token.
func Parse(side calculator.Side, text string) ([]interval.Interval, calculator.Errors) {
	var out []interval.Interval
	var errs calculator.Errors
	for idx, token := range rangetext.Split(text) {
		if token == "" {
			continue
		}
		i, err := parseToken(token)
		if err != nil {
			errs = append(errs, &calculator.Error{
				Kind:   calculator.InvalidInterval,
				Side:   side,
				Index:  idx,
				Value:  token,
				Detail: err.Error(),
			})
			continue
		}
		out = append(out, i)
	}
	return out, errs
}

func parseToken(token string) (interval.Interval, error) {
	r, err := ParseRange(token)
	if err != nil {
		return interval.Interval{}, err
	}
	return FromIPRange(r)
}

// Compute returns the ranges in includes that are not in excludes.
func Compute(includes, excludes []netipx.IPRange) ([]netipx.IPRange, error) {
	inc, errs := convert(calculator.SideInclude, includes)
	exc, excErrs := convert(calculator.SideExclude, excludes)
	errs = append(errs, excErrs...)
	if len(errs) > 0 {
		return nil, errs
	}
	return ToIPRanges(calculator.ComputeIntervals(inc, exc))
}

// ToIPRanges converts every interval back to an ip range.
func ToIPRanges(rr []interval.Interval) ([]netipx.IPRange, error) {
	out := make([]netipx.IPRange, 0, len(rr))
	for _, r := range rr {
		ipr, err := ToIPRange(r)
		if err != nil {
			return nil, err
		}
		out = append(out, ipr)
	}
	return out, nil
}

func convert(side calculator.Side, rr []netipx.IPRange) ([]interval.Interval, calculator.Errors) {
	out := make([]interval.Interval, 0, len(rr))
	var errs calculator.Errors
	for idx, r := range rr {
		i, err := FromIPRange(r)
		if err != nil {
			errs = append(errs, &calculator.Error{
				Kind:   calculator.InvalidInterval,
				Side:   side,
				Index:  idx,
				Value:  r.String(),
				Detail: err.Error(),
			})
			continue
		}
		out = append(out, i)
	}
	return out, errs
}

func addrToInt(a netip.Addr) int64 {
	b := a.As4()
	return int64(binary.BigEndian.Uint32(b[:]))
}

func addrFromInt(i int64) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(i))
	return netip.AddrFrom4(b)
}
