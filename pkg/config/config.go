package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/henderiw/rangecalc/pkg/interval"
	"github.com/henderiw/rangecalc/pkg/rangetable"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/labels"
)

type Mode string

const (
	ModeInt Mode = "int"
	ModeIP  Mode = "ip"
)

type Entry struct {
	Name   string            `yaml:"name"`
	Range  string            `yaml:"range"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

type Table struct {
	Entries []Entry `yaml:"entries"`
	Include string  `yaml:"include,omitempty"`
	Exclude string  `yaml:"exclude,omitempty"`
}

type Config struct {
	Mode     Mode     `yaml:"mode,omitempty"`
	Includes []string `yaml:"includes,omitempty"`
	Excludes []string `yaml:"excludes,omitempty"`
	Table    *Table   `yaml:"table,omitempty"`
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open config %s", path)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse config %s", path)
	}
	return cfg, nil
}

// Parse decodes and validates a config. Unknown fields are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeInt
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *Config) Validate() error {
	switch r.Mode {
	case "", ModeInt, ModeIP:
	default:
		return fmt.Errorf("invalid config: unknown mode %q", r.Mode)
	}
	if r.Table == nil {
		return nil
	}

	names := make(map[string]bool)
	for _, e := range r.Table.Entries {
		if e.Name == "" {
			return fmt.Errorf("invalid config: table entry %q has no name", e.Range)
		}
		if names[e.Name] {
			return fmt.Errorf("invalid config: table entry duplicated: %s", e.Name)
		}
		names[e.Name] = true
		if _, err := interval.Parse(e.Range); err != nil {
			return fmt.Errorf("invalid config: table entry %s: %w", e.Name, err)
		}
	}
	if _, _, err := r.Table.Selectors(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// IncludeText joins the configured includes into one comma separated list.
func (r *Config) IncludeText() string {
	return strings.Join(r.Includes, ",")
}

func (r *Config) ExcludeText() string {
	return strings.Join(r.Excludes, ",")
}

// Selectors parses the include and exclude selectors. An empty exclude
// selector matches nothing.
func (r *Table) Selectors() (include, exclude labels.Selector, err error) {
	include, err = labels.Parse(r.Include)
	if err != nil {
		return nil, nil, errors.Wrap(err, "include selector")
	}
	if r.Exclude == "" {
		return include, labels.Nothing(), nil
	}
	exclude, err = labels.Parse(r.Exclude)
	if err != nil {
		return nil, nil, errors.Wrap(err, "exclude selector")
	}
	return include, exclude, nil
}

// RangeEntries converts the table entries for rangetable.New.
func (r *Table) RangeEntries() (rangetable.Entries, error) {
	out := make(rangetable.Entries, 0, len(r.Entries))
	for _, e := range r.Entries {
		rng, err := interval.Parse(e.Range)
		if err != nil {
			return nil, errors.Wrapf(err, "table entry %s", e.Name)
		}
		out = append(out, rangetable.NewEntry(e.Name, rng, e.Labels))
	}
	return out, nil
}
