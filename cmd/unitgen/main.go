// unitgen expands a unit catalog into the Go source of package units.
//
//	unitgen --catalog units/catalog.toml --output units/zz_generated_units.go
//	unitgen --validate --catalog units/catalog.toml
//	unitgen --check
//	unitgen --template --catalog my_units.yaml
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/danmuck/dimunit/internal/catalog"
	"github.com/danmuck/dimunit/internal/codegen"
	"github.com/danmuck/dimunit/internal/logging"
)

// ErrStale reports that the generated file does not match its catalog.
var ErrStale = errors.New("unitgen: generated file is stale")

type options struct {
	catalogPath string
	output      string
	pkg         string
	dimImport   string
	validate    bool
	check       bool
	template    bool
	force       bool
	list        bool
}

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Error().Err(err).Msg("unitgen failed")
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	flagSet := pflag.NewFlagSet("unitgen", pflag.ContinueOnError)
	flagSet.StringVar(&opts.catalogPath, "catalog", "units/catalog.toml", "unit catalog (.toml, .yaml or .yml)")
	flagSet.StringVar(&opts.output, "output", "units/zz_generated_units.go", "generated Go file")
	flagSet.StringVar(&opts.pkg, "package", "units", "package name of the generated file")
	flagSet.StringVar(&opts.dimImport, "dim-import", codegen.DefaultDimImport, "import path of the dim package")
	flagSet.BoolVar(&opts.validate, "validate", false, "load and validate the catalog only")
	flagSet.BoolVar(&opts.check, "check", false, "fail if the generated file is out of date")
	flagSet.BoolVar(&opts.template, "template", false, "write a starter catalog to --catalog")
	flagSet.BoolVar(&opts.force, "force", false, "overwrite an existing catalog with --template")
	flagSet.BoolVar(&opts.list, "list", false, "log the declared units and relations")
	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", extra)
	}
	if opts.template && (opts.validate || opts.check) {
		return options{}, errors.New("--template cannot be combined with --validate or --check")
	}
	return opts, nil
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	if opts.template {
		if err := catalog.WriteTemplate(opts.catalogPath, opts.force); err != nil {
			return err
		}
		log.Info().Str("path", opts.catalogPath).Msg("wrote catalog template")
		return nil
	}

	cat, err := catalog.Load(opts.catalogPath)
	if err != nil {
		return err
	}
	if opts.list {
		listCatalog(cat)
	}
	if opts.validate {
		log.Info().Str("path", opts.catalogPath).Msg("catalog valid")
		return nil
	}

	src, err := codegen.Generate(cat, codegen.Options{
		Package:   opts.pkg,
		Source:    filepath.Base(opts.catalogPath),
		DimImport: opts.dimImport,
	})
	if err != nil {
		return err
	}

	if opts.check {
		current, err := os.ReadFile(opts.output)
		if err != nil {
			return fmt.Errorf("read %s: %w", opts.output, err)
		}
		if !bytes.Equal(current, src) {
			return fmt.Errorf("%s: %w, run go generate", opts.output, ErrStale)
		}
		log.Info().Str("path", opts.output).Msg("generated file up to date")
		return nil
	}

	if err := os.WriteFile(opts.output, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	log.Info().
		Str("catalog", opts.catalogPath).
		Str("path", opts.output).
		Int("units", len(cat.Units)).
		Msg("generated units")
	return nil
}

func listCatalog(cat catalog.Catalog) {
	for _, u := range cat.Units {
		subs := make([]string, 0, len(u.Subs))
		for _, s := range u.Subs {
			subs = append(subs, s.Symbol)
		}
		log.Info().
			Str("unit", u.Name).
			Str("representation", u.Representation).
			Str("canonical", u.Canonical).
			Strs("symbols", subs).
			Msg("unit")
	}
	for _, q := range cat.Quotients {
		log.Info().Msgf("quotient %s.%s(%s) %s", q.Dividend, q.Method, q.Divisor, q.Result)
	}
	for _, c := range cat.Conversions {
		log.Info().Msgf("conversion %s.%s() %s <-> %s.%s() factor %s", c.From, c.Method, c.To, c.To, c.Inverse, c.Factor)
	}
}
