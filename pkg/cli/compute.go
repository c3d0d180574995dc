package cli

import (
	"context"
	"flag"
	"io"

	"github.com/google/subcommands"
	"github.com/henderiw/rangecalc/pkg/calculator"
	"github.com/henderiw/rangecalc/pkg/config"
	"github.com/henderiw/rangecalc/pkg/interval"
	"github.com/henderiw/rangecalc/pkg/iprange"
	"github.com/henderiw/rangecalc/pkg/rangetext"
	log "github.com/sirupsen/logrus"
)

// Compute implements subcommands.Command for the "compute" command.
type Compute struct {
	out    io.Writer
	errOut io.Writer

	includes   string
	excludes   string
	ip         bool
	jsonInput  bool
	output     string
	configPath string
}

func NewCompute(out, errOut io.Writer) *Compute {
	return &Compute{out: out, errOut: errOut}
}

// Name implements subcommands.Command.Name.
func (*Compute) Name() string {
	return "compute"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Compute) Synopsis() string {
	return "print the include ranges minus the exclude ranges"
}

// Usage implements subcommands.Command.Usage.
func (*Compute) Usage() string {
	return `compute [flags] - print the union of -include minus the union of -exclude.

Example: compute -include 10-100,200-300 -exclude 95-205
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *Compute) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.includes, "include", "", "comma separated ranges to include, e.g. 10-100,200-300")
	f.StringVar(&c.excludes, "exclude", "", "comma separated ranges to exclude, e.g. 95-205")
	f.BoolVar(&c.ip, "ip", false, "treat ranges as IPv4 ranges, prefixes or addresses")
	f.BoolVar(&c.jsonInput, "json", false, `-include and -exclude are JSON arrays of {"start": n, "end": m}`)
	f.StringVar(&c.output, "o", "text", "output format (text, json)")
	f.StringVar(&c.configPath, "config", "", "YAML config providing includes, excludes and mode")
}

// Execute implements subcommands.Command.Execute.
func (c *Compute) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if _, ok := outputMap[c.output]; !ok {
		log.Errorf("unsupported output format %q", c.output)
		return subcommands.ExitUsageError
	}
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			report(c.errOut, err)
			return subcommands.ExitFailure
		}
		c.merge(cfg)
	}

	log.WithFields(log.Fields{
		"include": c.includes,
		"exclude": c.excludes,
		"ip":      c.ip,
		"json":    c.jsonInput,
	}).Debug("computing ranges")

	var err error
	switch {
	case c.ip:
		err = c.computeIP()
	case c.jsonInput:
		err = c.computeJSON()
	default:
		err = c.computeText()
	}
	if err != nil {
		report(c.errOut, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// merge fills in what was not given on the command line from cfg.
func (c *Compute) merge(cfg *config.Config) {
	if c.includes == "" {
		c.includes = cfg.IncludeText()
	}
	if c.excludes == "" {
		c.excludes = cfg.ExcludeText()
	}
	if cfg.Mode == config.ModeIP {
		c.ip = true
	}
}

func (c *Compute) computeText() error {
	includes, errs := rangetext.Parse(calculator.SideInclude, c.includes)
	excludes, excErrs := rangetext.Parse(calculator.SideExclude, c.excludes)
	errs = append(errs, excErrs...)
	if len(errs) > 0 {
		return errs
	}
	rr, err := calculator.Compute(includes, excludes)
	if err != nil {
		return err
	}
	return c.print(rr)
}

func (c *Compute) computeJSON() error {
	includes, excludes := c.includes, c.excludes
	if includes == "" {
		includes = "[]"
	}
	if excludes == "" {
		excludes = "[]"
	}
	rr, err := calculator.ComputeJSON([]byte(includes), []byte(excludes))
	if err != nil {
		return err
	}
	return c.print(rr)
}

func (c *Compute) computeIP() error {
	includes, errs := iprange.Parse(calculator.SideInclude, c.includes)
	excludes, excErrs := iprange.Parse(calculator.SideExclude, c.excludes)
	errs = append(errs, excErrs...)
	if len(errs) > 0 {
		return errs
	}
	ranges, err := iprange.ToIPRanges(calculator.ComputeIntervals(includes, excludes))
	if err != nil {
		return err
	}
	return ipOutputMap[c.output](c.out, ranges)
}

func (c *Compute) print(rr []interval.Interval) error {
	return outputMap[c.output](c.out, rr)
}
