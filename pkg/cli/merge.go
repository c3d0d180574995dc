package cli

import (
	"context"
	"flag"
	"io"

	"github.com/google/subcommands"
	"github.com/henderiw/rangecalc/pkg/calculator"
	"github.com/henderiw/rangecalc/pkg/interval"
	"github.com/henderiw/rangecalc/pkg/rangetext"
	log "github.com/sirupsen/logrus"
)

// Merge implements subcommands.Command for the "merge" command.
type Merge struct {
	out    io.Writer
	errOut io.Writer

	ranges string
	output string
}

func NewMerge(out, errOut io.Writer) *Merge {
	return &Merge{out: out, errOut: errOut}
}

// Name implements subcommands.Command.Name.
func (*Merge) Name() string {
	return "merge"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Merge) Synopsis() string {
	return "print the minimal sorted set of ranges covering the input"
}

// Usage implements subcommands.Command.Usage.
func (*Merge) Usage() string {
	return `merge -ranges <ranges> - merge overlapping ranges.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (m *Merge) SetFlags(f *flag.FlagSet) {
	f.StringVar(&m.ranges, "ranges", "", "comma separated ranges, e.g. 1-3,2-6,8-10")
	f.StringVar(&m.output, "o", "text", "output format (text, json)")
}

// Execute implements subcommands.Command.Execute.
func (m *Merge) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out, ok := outputMap[m.output]
	if !ok {
		log.Errorf("unsupported output format %q", m.output)
		return subcommands.ExitUsageError
	}

	candidates, errs := rangetext.Parse(calculator.SideInclude, m.ranges)
	valid, verrs := calculator.Validate(calculator.SideInclude, candidates)
	errs = append(errs, verrs...)
	if len(errs) > 0 {
		report(m.errOut, errs)
		return subcommands.ExitFailure
	}

	merged := interval.Merge(valid)
	log.WithField("in", len(valid)).WithField("out", len(merged)).Debug("merged ranges")
	if err := out(m.out, merged); err != nil {
		report(m.errOut, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
