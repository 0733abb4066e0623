/*
Package main is the relsort cli tool.
It reads a release dataset (JSON or YAML, optionally compressed),
filters it by free-text query and prints it in the requested order.
*/
package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/woozymasta/relsort"
	"github.com/woozymasta/relsort/internal/config"
	"github.com/woozymasta/relsort/internal/dataset"
	"github.com/woozymasta/relsort/internal/log"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	// betteralign:ignore

	// Dataset source
	OptionsInput OptionsInput `group:"Input"`
	// Query, filters and sort
	OptionsSelect OptionsSelect `group:"Selection and sort"`
	// Range clipping
	OptionsRange OptionsRange `group:"Range"`
	// Output format
	OptionsOutput OptionsOutput `group:"Output"`
	// Config and logging
	OptionsGeneral OptionsGeneral `group:"General"`
}

type OptionsInput struct {
	File   string `short:"f" long:"file"   description:"Dataset file (.json/.yaml, optionally .gz/.zst/.xz/.lz); '-' reads stdin" default:"-"`
	Format string `short:"F" long:"format" description:"Dataset format" choice:"auto" choice:"json" choice:"yaml" default:"auto"`
}

type OptionsSelect struct {
	Query    string `short:"q" long:"query"     description:"Case-insensitive text search over version, date, channel, build, changes and tags"`
	Sort     string `short:"S" long:"sort"      description:"Sort order; auto picks one from the dataset" choice:"auto" choice:"build-desc" choice:"build-asc" choice:"semver-desc" choice:"semver-asc" choice:"date-desc" choice:"date-asc" default:"auto"`
	URLQuery string `short:"u" long:"url-query" description:"URL query string seeding the sort key, e.g. '?sort=date-asc'"`
	Channel  string `short:"c" long:"channel"   description:"Keep only releases on this channel"`
	Include  string `short:"i" long:"include"   description:"Regexp on the version to keep releases"`
	Exclude  string `short:"e" long:"exclude"   description:"Regexp on the version to drop releases"`
	Limit    int    `short:"n" long:"limit"     description:"Max number of output releases (<=0 = unlimited)" default:"0"`
	Latest   bool   `short:"l" long:"latest"    description:"Print only the newest matching release by version"`
}

type OptionsRange struct {
	Min             string `short:"m" long:"min"                description:"Lower bound (X / X.Y / X.Y.Z or full SemVer)"`
	Max             string `short:"x" long:"max"                description:"Upper bound (X / X.Y / X.Y.Z or full SemVer)"`
	MinExclusive    bool   `short:"M" long:"min-exclusive"      description:"Exclude lower bound itself"`
	MaxExclusive    bool   `short:"X" long:"max-exclusive"      description:"Exclude upper bound itself"`
	IncludePreAtMin bool   `short:"p" long:"include-prerelease" description:"When min is shorthand, include prereleases at the floor (>= X.Y.0-0)"`
	Constraint      string `short:"C" long:"constraint"         description:"SemVer constraint, e.g. '>= 1.2, < 2'"`
}

type OptionsOutput struct {
	Output    string `short:"o" long:"output"    description:"Output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
	Canonical bool   `short:"k" long:"canonical" description:"Print valid SemVer versions as vMAJOR.MINOR.PATCH[-PRERELEASE]"`
}

type OptionsGeneral struct {
	Config  string `long:"config"       description:"Config file (TOML); defaults to $RELSORT_CONFIG or the user config dir"`
	Verbose bool   `short:"v" long:"verbose" description:"Log dataset and sort decisions"`
	Debug   bool   `short:"d" long:"debug"   description:"Log debug details"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default)
	parser.LongDescription = `relsort: filter and order a list of software release records.
Sorts by build number, semantic version or date; without --sort the order is picked from the dataset.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	log.SetDefault(log.NewText(os.Stderr, log.LevelFor(opt.OptionsGeneral.Verbose, opt.OptionsGeneral.Debug)))

	if err := run(parser, &opt); err != nil {
		fmt.Fprintf(os.Stderr, "relsort: %v\n", err)
		os.Exit(2)
	}
}

func run(parser *flags.Parser, opt *Options) error {
	cfg, err := config.Load(config.Path(opt.OptionsGeneral.Config))
	if err != nil {
		return err
	}
	applyConfig(parser, opt, cfg)

	base, err := buildOptions(opt)
	if err != nil {
		return err
	}

	store := relsort.NewStore(
		relsort.WithLogger(log.Default()),
		relsort.WithOptions(base),
		relsort.WithSort(pickSort(opt, cfg)),
	)

	if err := store.LoadFrom(func() ([]relsort.Release, error) {
		return loadDataset(opt.OptionsInput)
	}); err != nil {
		return err
	}

	store.SetQuery(opt.OptionsSelect.Query)

	view := store.View()
	if opt.OptionsSelect.Latest {
		view = nil
		if r, ok := relsort.Latest(store.Snapshot().Filtered); ok {
			view = []relsort.Release{r}
		}
	}

	return render(os.Stdout, view, opt.OptionsOutput.Output, opt.OptionsOutput.Canonical)
}

// applyConfig fills options the user did not pass on the command line.
func applyConfig(parser *flags.Parser, opt *Options, cfg *config.Config) {
	isSet := func(long string) bool {
		o := parser.FindOptionByLongName(long)
		return o != nil && o.IsSet()
	}

	if !isSet("output") {
		opt.OptionsOutput.Output = cfg.Output
	}
	if !isSet("channel") && cfg.Channel != "" {
		opt.OptionsSelect.Channel = cfg.Channel
	}
	if !isSet("limit") && cfg.Limit > 0 {
		opt.OptionsSelect.Limit = cfg.Limit
	}
	if !isSet("canonical") && cfg.Canonical {
		opt.OptionsOutput.Canonical = true
	}
}

// pickSort resolves the explicit sort key: --sort, then --url-query, then
// the config file. SortNone leaves the choice to the dataset.
func pickSort(opt *Options, cfg *config.Config) relsort.SortKey {
	if k, ok := relsort.ParseSortKey(opt.OptionsSelect.Sort); ok {
		return k
	}

	if k, ok := relsort.SortFromQuery(opt.OptionsSelect.URLQuery); ok {
		return k
	}

	k, _ := relsort.ParseSortKey(cfg.Sort)

	return k
}

func buildOptions(opt *Options) (relsort.Options, error) {
	var out relsort.Options

	var err error
	if out.Include, err = compileRe("include", opt.OptionsSelect.Include); err != nil {
		return out, err
	}
	if out.Exclude, err = compileRe("exclude", opt.OptionsSelect.Exclude); err != nil {
		return out, err
	}

	if c := strings.TrimSpace(opt.OptionsRange.Constraint); c != "" {
		if err := relsort.CheckConstraint(c); err != nil {
			return out, fmt.Errorf("constraint: %w", err)
		}
		out.Constraint = c
	}

	out.Channel = strings.TrimSpace(opt.OptionsSelect.Channel)
	out.Limit = opt.OptionsSelect.Limit
	out.Range = relsort.Range{
		Min:               strings.TrimSpace(opt.OptionsRange.Min),
		Max:               strings.TrimSpace(opt.OptionsRange.Max),
		MinExclusive:      opt.OptionsRange.MinExclusive,
		MaxExclusive:      opt.OptionsRange.MaxExclusive,
		IncludePrerelease: opt.OptionsRange.IncludePreAtMin,
	}

	return out, nil
}

func compileRe(name, expr string) (*regexp.Regexp, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return nil, nil
	}

	re, err := regexp.Compile(s)
	if err != nil {
		return nil, fmt.Errorf("%s regexp: %w", name, err)
	}

	return re, nil
}

func loadDataset(in OptionsInput) ([]relsort.Release, error) {
	var (
		rs  []relsort.Release
		err error
	)

	if f, ok := dataset.ParseFormat(in.Format); ok {
		rs, err = dataset.LoadFormat(in.File, f)
	} else {
		rs, err = dataset.Load(in.File)
	}

	if errors.Is(err, dataset.ErrLoad) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dataset.ErrLoad, err)
	}

	return rs, nil
}
