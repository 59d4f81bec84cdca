// The walk command wires the pipeline:
// terms file → walk → resolve → fetch/extract → console (and transcript).

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gaurav-prasanna/glosswalk/config"
	"github.com/gaurav-prasanna/glosswalk/core"
	"github.com/gaurav-prasanna/glosswalk/core/extract"
	"github.com/gaurav-prasanna/glosswalk/core/fetch"
	"github.com/gaurav-prasanna/glosswalk/core/output"
	"github.com/gaurav-prasanna/glosswalk/core/render"
	"github.com/gaurav-prasanna/glosswalk/core/resolve"
	"github.com/gaurav-prasanna/glosswalk/core/walk"
)

// walkFlags holds the flag values of one walk command instance.
type walkFlags struct {
	transcript string
	outputDir  string
	noColor    bool
	logLevel   string
	logFormat  string
	timeout    time.Duration
}

func newWalkCmd() *cobra.Command {
	f := &walkFlags{}
	cmd := &cobra.Command{
		Use:   "walk <terms-file> [start]",
		Short: "Walk a term list, showing glossary definitions one term at a time",
		Long: `Walk reads one term per line from <terms-file>, starting at the 1-based line
[start] (default 1), and for each term prints its position, then up to four
glossary definitions. Press Enter to move to the next term.

Examples:
  glosswalk walk terms.txt
  glosswalk walk terms.txt 42
  glosswalk walk terms.txt --transcript markdown --output_dir ./notes

A negative start is rejected; pass it after -- so it is not read as a flag.`,
		Args:         walkArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(cmd, args, f)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", core.ErrArgument, err)
	})
	bindWalkFlags(cmd.Flags(), f)
	return cmd
}

// walkArgs requires the terms file and allows an optional start position.
func walkArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
		return fmt.Errorf("%w: %v", core.ErrArgument, err)
	}
	return nil
}

func bindWalkFlags(fs *pflag.FlagSet, f *walkFlags) {
	fs.StringVar(&f.transcript, "transcript", "", "Also write a transcript: markdown, json or pdf")
	fs.StringVar(&f.outputDir, "output_dir", "", "Transcript directory (default: current directory)")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "", "Log format: text or json")
	fs.DurationVar(&f.timeout, "timeout", 0, "Per-request fetch timeout (0 waits forever)")
}

// applyFlags overrides cfg with the flags the user actually set.
func applyFlags(fs *pflag.FlagSet, f *walkFlags, cfg *config.Config) {
	if fs.Changed("output_dir") {
		cfg.OutputDir = f.outputDir
	}
	if fs.Changed("no-color") {
		cfg.NoColor = f.noColor
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if fs.Changed("timeout") {
		cfg.FetchTimeout = f.timeout
	}
}

// parseStart reads the optional 1-based start position.
func parseStart(args []string) (int, error) {
	if len(args) < 2 {
		return 1, nil
	}
	start, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("%w: start position %q is not a number", core.ErrArgument, args[1])
	}
	if start < 1 {
		return 0, fmt.Errorf("%w: start position must be at least 1, got %d", core.ErrArgument, start)
	}
	return start, nil
}

func runWalk(cmd *cobra.Command, args []string, f *walkFlags) error {
	termFile := args[0]
	start, err := parseStart(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%w: loading config: %v", core.ErrArgument, err)
	}
	applyFlags(cmd.Flags(), f, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrArgument, err)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrArgument, err)
	}

	var renderer core.Renderer
	if f.transcript != "" {
		if renderer, err = render.New(f.transcript); err != nil {
			return err
		}
	}

	links, err := extract.NewLinkExtractor(cfg.ResultsClass)
	if err != nil {
		return err
	}

	file, err := os.Open(termFile)
	if err != nil {
		return fmt.Errorf("%w: opening terms file: %v", core.ErrIO, err)
	}
	defer file.Close()

	console := output.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.NoColor)
	walker := &walk.Walker{
		Resolver: &resolve.TermResolver{
			SearchURL:  cfg.SearchURL,
			Fetcher:    fetch.New(cfg.FetchTimeout, cfg.UserAgent, logger),
			Links:      links,
			Definition: extract.NewDefinitionExtractor(),
			Logger:     logger,
		},
		Presenter: console,
		Advancer:  console,
		Logger:    logger,
	}

	var recorder *walk.TranscriptRecorder
	if renderer != nil {
		recorder = &walk.TranscriptRecorder{}
		walker.Recorder = recorder
	}

	walkErr := walker.Run(context.Background(), file, start)

	if recorder != nil {
		path, err := writeTranscript(logger, termFile, recorder.Entries, renderer, cfg.OutputDir)
		switch {
		case err != nil && walkErr == nil:
			return err
		case err != nil:
			logger.Error("transcript not written", "error", err)
		default:
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Transcript: %s\n", path)
		}
	}
	return walkErr
}

// writeTranscript renders the recorded entries and writes them next to
// the other transcripts in outputDir.
func writeTranscript(logger *slog.Logger, termFile string, entries []core.TermEntry, renderer core.Renderer, outputDir string) (string, error) {
	data, err := renderer.Render(core.Transcript{
		Source:      termFile,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:     entries,
	})
	if err != nil {
		return "", fmt.Errorf("%w: rendering transcript: %v", core.ErrIO, err)
	}

	writer, err := output.New(outputDir)
	if err != nil {
		return "", err
	}
	logger.Debug("writing transcript", "dir", writer.OutputDir, "entries", len(entries))
	return writer.Write(termFile, data, renderer.Extension())
}
