// Package cli is the langsniff command: it parses and validates the command
// line, wires the classify module and writes TSV records to stdout
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"langsniff/internal/adapters/tsv"
	"langsniff/internal/core/input"
	"langsniff/internal/core/langcode"
	"langsniff/internal/core/version"
	"langsniff/internal/modkit"
	mmodule "langsniff/internal/modkit/module"
	"langsniff/internal/platform/config"
	perr "langsniff/internal/platform/errors"
	"langsniff/internal/platform/logger"
	str "langsniff/internal/platform/strings"
	"langsniff/internal/platform/validate"
	"langsniff/internal/services/classify/domain"
	classifymod "langsniff/internal/services/classify/module"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const name = "langsniff"

// newModule builds the classify module; tests swap in one backed by a fake engine
var newModule = func(deps modkit.Deps, rc *domain.Config, opts classifymod.Options) (*classifymod.Module, error) {
	return classifymod.New(deps, rc, opts)
}

// Execute runs the command and returns the process exit code.
// Nothing is written to stdout unless the whole run succeeds
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", name, describe(err))
		return perr.ExitCode(err)
	}
	return perr.ExitOK
}

func newRootCmd(stdin io.Reader) *cobra.Command {
	var opts options
	cfg := config.New()

	cmd := &cobra.Command{
		Use:   name + " [flags] [text...]",
		Short: "Identify the natural language of text",
		Long: `langsniff prints the most probable language of its input as an ISO 639-1 code
and a confidence in [0,1], separated by a tab.

Text is taken from the arguments, joined with single spaces, or from standard
input when no arguments are given. With --per-line every line is classified on
its own and echoed as a third column.`,
		Example: `  langsniff bonjour à tous
  printf 'hola a todos\nhallo allemaal\n' | langsniff -n -l es,nl,en
  langsniff -L`,
		Version:       version.Info().String(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, opts, args, stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid command line")
	})
	opts.bind(cmd.Flags(), cfg)
	return cmd
}

func run(ctx context.Context, cfg config.Conf, opts options, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	if opts.List {
		return listLanguages(stdout, langcode.Default())
	}

	ctx, log := startRun(ctx, opts, stderr)
	defer func() {
		if err != nil {
			var op string
			if e, ok := perr.As(err); ok {
				op = e.Op()
			}
			log.Debug().
				Str("code", perr.CodeOf(err).String()).
				Str("op", op).
				AnErr("cause", perr.Root(err)).
				Msg("run failed")
		}
	}()

	if err := check(opts); err != nil {
		return err
	}

	candidates, err := langcode.Default().Resolve(str.SplitTrim(opts.Languages.val, ","))
	if err != nil {
		return perr.WithOp(err, "resolve languages")
	}

	rc := &domain.Config{Candidates: candidates, LineMode: opts.PerLine}
	if len(args) > 0 {
		// any argument, even "", means stdin is not read
		text := strings.Join(args, " ")
		rc.InlineText = &text
	}

	workers := 1
	if opts.Parallel {
		workers = opts.Workers
	}

	m, err := newModule(modkit.Deps{Log: log, Cfg: cfg}, rc, classifymod.Options{
		Workers:             workers,
		Quick:               opts.Quick,
		Preload:             opts.Preload,
		MinRelativeDistance: opts.MinRelativeDistance,
		MinConfidence:       opts.Confidence,
		MinLetters:          opts.MinLength,
		All:                 opts.All,
		Multi:               opts.Multi,
	})
	if err != nil {
		return err
	}

	texts, err := input.Acquire(input.Source{Inline: rc.InlineText, Stdin: stdin, LineMode: rc.LineMode})
	if err != nil {
		return err
	}
	log.Debug().
		Int("units", len(texts)).
		Bool("inline", rc.HasInline()).
		Int("candidates", len(rc.Candidates)).
		Msg("input acquired")

	classifier := mmodule.MustPortsOf[domain.ClassifierPort](m)
	results, err := classifier.ClassifyAll(ctx, domain.NewUnits(texts))
	if err != nil {
		return err
	}

	w := tsv.NewWriter(stdout, opts.Delimiter)
	mode := tsv.Mode{LineMode: rc.LineMode, All: opts.All, Multi: opts.Multi}
	return perr.WrapIf(tsv.RenderAll(w, results, mode), perr.ErrorCodeUnknown, "write output")
}

// startRun builds the per-run logger on stderr and tags ctx with a fresh run id
func startRun(ctx context.Context, opts options, stderr io.Writer) (context.Context, *logger.Logger) {
	lo := logger.FromEnv()
	lo.Writer = stderr
	lo.Component = name
	if opts.Verbose {
		lo.Level = "debug"
	}
	l := logger.New(lo)

	runID := uuid.NewString()
	ctx = logger.Into(logger.WithRun(ctx, runID), &l)
	return ctx, logger.C(ctx)
}

// check validates option values and combinations that flags alone cannot express
func check(opts options) error {
	if opts.Languages.repeated {
		return perr.WithField(perr.InvalidArgf("--languages given more than once; pass one comma-separated list"), "languages")
	}
	if err := validate.Struct(opts); err != nil {
		return err
	}
	if opts.Multi && opts.PerLine {
		return perr.WithField(perr.InvalidArgf("--multi cannot be combined with --per-line"), "multi")
	}
	if opts.Multi && opts.All {
		return perr.WithField(perr.InvalidArgf("--multi cannot be combined with --all"), "multi")
	}
	return nil
}

// listLanguages prints "code - Name" for every supported language
func listLanguages(w io.Writer, reg *langcode.Registry) error {
	bw := bufio.NewWriter(w)
	for _, e := range reg.Entries() {
		fmt.Fprintf(bw, "%s - %s\n", e.Code, e.Name)
	}
	if err := bw.Flush(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "write language list")
	}
	return nil
}

// describe renders err for humans; validation failures already name their flag
func describe(err error) string {
	if e, ok := perr.As(err); ok && e.Code() == perr.ErrorCodeUnknownLanguage {
		return fmt.Sprintf("%s (run %s --list for supported codes)", e.Error(), name)
	}
	return err.Error()
}
