package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"github.com/henderiw/rangecalc/pkg/config"
	"github.com/henderiw/rangecalc/pkg/rangetable"
	log "github.com/sirupsen/logrus"
)

// Table implements subcommands.Command for the "table" command.
type Table struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	include    string
	exclude    string
	list       bool
	output     string
}

func NewTable(out, errOut io.Writer) *Table {
	return &Table{out: out, errOut: errOut}
}

// Name implements subcommands.Command.Name.
func (*Table) Name() string {
	return "table"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Table) Synopsis() string {
	return "compute ranges from labeled table entries"
}

// Usage implements subcommands.Command.Usage.
func (*Table) Usage() string {
	return `table -config <file> [flags] - load the table entries of a config and print
the ranges of the entries matching -include minus those matching -exclude.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (t *Table) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.configPath, "config", "", "YAML config holding the table entries")
	f.StringVar(&t.include, "include", "", "label selector of the entries to include, overrides the config")
	f.StringVar(&t.exclude, "exclude", "", "label selector of the entries to exclude, overrides the config")
	f.BoolVar(&t.list, "list", false, "list the selected entries instead of computing")
	f.StringVar(&t.output, "o", "text", "output format (text, json)")
}

// Execute implements subcommands.Command.Execute.
func (t *Table) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out, ok := outputMap[t.output]
	if !ok || t.configPath == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	cfg, err := config.Load(t.configPath)
	if err != nil {
		report(t.errOut, err)
		return subcommands.ExitFailure
	}
	tblCfg := config.Table{}
	if cfg.Table != nil {
		tblCfg = *cfg.Table
	}
	if t.include != "" {
		tblCfg.Include = t.include
	}
	if t.exclude != "" {
		tblCfg.Exclude = t.exclude
	}
	include, exclude, err := tblCfg.Selectors()
	if err != nil {
		report(t.errOut, err)
		return subcommands.ExitFailure
	}
	entries, err := tblCfg.RangeEntries()
	if err != nil {
		report(t.errOut, err)
		return subcommands.ExitFailure
	}
	tbl, err := rangetable.New(entries, rangetable.WithLogger(log.StandardLogger()))
	if err != nil {
		report(t.errOut, err)
		return subcommands.ExitFailure
	}

	if t.list {
		for _, e := range tbl.GetByLabel(include) {
			fmt.Fprintln(t.out, e.String())
		}
		return subcommands.ExitSuccess
	}
	if err := out(t.out, tbl.Compute(include, exclude)); err != nil {
		report(t.errOut, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
