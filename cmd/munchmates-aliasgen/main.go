// Command munchmates-aliasgen builds the static ingredient lookup artifacts
// from a line-delimited synonym file: a flat word list (words.json) and an
// alias-key to canonical-name map (ingredients.json)
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/uuid"

	"munchmates/internal/core/aliases"
	"munchmates/internal/core/version"
	"munchmates/internal/platform/config"
	perr "munchmates/internal/platform/errors"
	"munchmates/internal/platform/logger"
	"munchmates/internal/platform/validate"
)

// Options carries the resolved CLI configuration
type Options struct {
	Input   string `json:"input"   validate:"required"`
	Words   string `json:"words"   validate:"required"`
	Aliases string `json:"aliases" validate:"required"`
	Pretty  bool   `json:"pretty"`
}

func main() {
	cfg := config.New().Prefix("ALIASGEN_")

	var (
		input    = flag.String("input", cfg.MayString("INPUT", "./ingredients.txt"), "line-delimited synonym file, one group per line")
		words    = flag.String("words", cfg.MayString("WORDS", "./words.json"), "output path for the flat word list")
		aliasOut = flag.String("aliases", cfg.MayString("ALIASES", "./ingredients.json"), "output path for the alias map")
		pretty   = flag.Bool("pretty", cfg.MayBool("PRETTY", false), "pretty-print JSON artifacts")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	lopt := logger.FromEnv()
	lopt.Service = version.Info().Service
	if *verbose {
		lopt.Level = "debug"
	}
	logger.Init(lopt)

	ctx := logger.WithRun(context.Background(), uuid.NewString())

	opts := Options{
		Input:   *input,
		Words:   *words,
		Aliases: *aliasOut,
		Pretty:  *pretty,
	}
	if err := run(ctx, opts); err != nil {
		logger.C(ctx).Fatal().Err(err).Msg("aliasgen failed")
	}
}

// run is the whole pipeline: validate options, stream the input once,
// write both artifacts. Any error is fatal to the caller
func run(ctx context.Context, opts Options) error {
	log := logger.C(ctx)

	if err := validate.Struct(opts); err != nil {
		return err
	}

	bi := version.Info()
	log.Debug().
		Str("version", bi.Version).
		Str("input", opts.Input).
		Str("words", opts.Words).
		Str("aliases", opts.Aliases).
		Bool("pretty", opts.Pretty).
		Msg("building alias table")

	f, err := os.Open(opts.Input)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeIO, "open input")
	}
	defer func() { _ = f.Close() }() // read-only handle

	table, err := aliases.Build(f)
	if err != nil {
		return err
	}

	if err := aliases.WriteArtifacts(table, aliases.WriteOptions{
		WordsPath:   opts.Words,
		AliasesPath: opts.Aliases,
		Pretty:      opts.Pretty,
	}); err != nil {
		return err
	}

	log.Info().
		Int("aliases", len(table.Aliases)).
		Int("words", len(table.Words)).
		Msg("artifacts written")
	return nil
}
