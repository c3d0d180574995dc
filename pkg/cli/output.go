package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/henderiw/rangecalc/pkg/calculator"
	"github.com/henderiw/rangecalc/pkg/interval"
	"github.com/henderiw/rangecalc/pkg/rangetext"
	"go4.org/netipx"
)

type outputFunc func(io.Writer, []interval.Interval) error

type ipOutputFunc func(io.Writer, []netipx.IPRange) error

var (
	// A map of output type names to output functions.
	outputMap = map[string]outputFunc{
		"text": rangetext.Write,
		"json": outputJSON,
	}

	ipOutputMap = map[string]ipOutputFunc{
		"text": outputIPText,
		"json": outputIPJSON,
	}
)

func outputJSON(w io.Writer, rr []interval.Interval) error {
	out := make([]calculator.Candidate, 0, len(rr))
	for _, r := range rr {
		out = append(out, calculator.Candidate{Start: r.Start(), End: r.End()})
	}
	return writeJSON(w, out)
}

func outputIPText(w io.Writer, rr []netipx.IPRange) error {
	for _, r := range rr {
		if _, err := fmt.Fprintf(w, "%s - %s\n", r.From(), r.To()); err != nil {
			return err
		}
	}
	return nil
}

type ipRangeDoc struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func outputIPJSON(w io.Writer, rr []netipx.IPRange) error {
	out := make([]ipRangeDoc, 0, len(rr))
	for _, r := range rr {
		out = append(out, ipRangeDoc{From: r.From().String(), To: r.To().String()})
	}
	return writeJSON(w, out)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// report writes err to w, one line per validation failure when err carries
// calculator errors.
func report(w io.Writer, err error) {
	var errs calculator.Errors
	if !errors.As(err, &errs) {
		fmt.Fprintln(w, err)
		return
	}
	for _, msg := range rangetext.Messages(errs) {
		fmt.Fprintln(w, msg)
	}
}
