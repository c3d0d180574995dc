// Package rangetext converts between user text such as "10-100, 200-300" and
// the calculator types.
package rangetext

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/henderiw/rangecalc/pkg/calculator"
	"github.com/henderiw/rangecalc/pkg/interval"
)

const delimiter = ","

var tokenRe = regexp.MustCompile(`^(-?\d+)-(-?\d+)$`)

// Split splits text on commas and trims every token. Empty tokens are kept
// so part numbers line up with what the user typed.
func Split(text string) []string {
	tokens := strings.Split(text, delimiter)
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	return tokens
}

// Parse parses every non-empty token of text. All malformed tokens, including
// ones with start > end, are reported with Index set to the token position.
func Parse(side calculator.Side, text string) ([]calculator.Candidate, calculator.Errors) {
	var out []calculator.Candidate
	var errs calculator.Errors
	for idx, token := range Split(text) {
		if token == "" {
			continue
		}
		c, err := parseToken(token)
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
		out = append(out, c)
	}
	return out, errs
}

func parseToken(token string) (calculator.Candidate, error) {
	m := tokenRe.FindStringSubmatch(token)
	if m == nil {
		return calculator.Candidate{}, fmt.Errorf("expected <start>-<end>, got %q", token)
	}
	start, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return calculator.Candidate{}, fmt.Errorf("start %s does not fit in 64 bits", m[1])
	}
	end, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return calculator.Candidate{}, fmt.Errorf("end %s does not fit in 64 bits", m[2])
	}
	if _, err := interval.New(start, end); err != nil {
		return calculator.Candidate{}, err
	}
	return calculator.Candidate{Start: start, End: end}, nil
}

// Messages renders errs the way the form displays them, e.g.
// `Include interval part 2 ("x-3") is invalid.`.
func Messages(errs calculator.Errors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Index < 0 {
			out = append(out, fmt.Sprintf("%s intervals are invalid: %s.", title(e.Side), e.Detail))
			continue
		}
		out = append(out, fmt.Sprintf("%s interval part %d (%q) is invalid.", title(e.Side), e.Index+1, fmt.Sprint(e.Value)))
	}
	return out
}

func title(side calculator.Side) string {
	s := string(side)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Format renders every interval as "start - end".
func Format(rr []interval.Interval) []string {
	out := make([]string, 0, len(rr))
	for _, r := range rr {
		out = append(out, fmt.Sprintf("%d - %d", r.Start(), r.End()))
	}
	return out
}

// Write writes Format(rr) to w, one interval per line.
func Write(w io.Writer, rr []interval.Interval) error {
	for _, line := range Format(rr) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
