package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"ago/internal/core/relative"
	"ago/internal/document"
	"ago/internal/logging"
)

type renderOptions struct {
	output   string
	inPlace  bool
	watch    bool
	interval time.Duration
	selector string
	style    string
	debug    bool

	clock  clockwork.Clock
	stdout io.Writer
	stderr io.Writer
}

func newRootCommand() *cobra.Command {
	opts := &renderOptions{
		clock:  clockwork.NewRealClock(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	cmd := &cobra.Command{
		Use:   "agorender <input.html>",
		Short: "Rewrite <time> elements of an HTML file as relative time labels",
		Long: `agorender replaces the text of every <time datetime="..."> element with a
label such as "5 minutes ago" or "2 days ahead". With --watch the output is
rewritten on every interval until interrupted.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			err := runRender(ctx, args[0], opts)
			if err != nil {
				logging.New(opts.stderr, opts.debug).Error("agorender failed", "error", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "write the result to this file instead of stdout")
	flags.BoolVar(&opts.inPlace, "in-place", false, "overwrite the input file")
	flags.BoolVar(&opts.watch, "watch", false, "keep rewriting the output every interval")
	flags.DurationVar(&opts.interval, "interval", relative.DefaultInterval, "time between two renders in watch mode")
	flags.StringVar(&opts.selector, "selector", relative.DefaultSelector, "CSS selector of the elements to rewrite")
	flags.StringVar(&opts.style, "style", relative.StyleDefault, "number style: default or grouped")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("output", "in-place")

	return cmd
}

func runRender(ctx context.Context, input string, opts *renderOptions) error {
	logger := logging.New(opts.stderr, opts.debug)

	format := relative.FormatByName(opts.style)
	if format == nil {
		return errors.Errorf("unknown style %q", opts.style)
	}

	doc, err := document.Load(input)
	if err != nil {
		return err
	}

	output := opts.output
	if opts.inPlace {
		output = input
	}
	if opts.watch && output == "" {
		return errors.New("--watch needs --output or --in-place")
	}

	elements := doc.QueryAll(opts.selector)
	logger.Debug("loaded document", "path", input, "selector", opts.selector, "elements", len(elements))

	formatter := relative.WithElements(elements, relative.Config{
		Interval: opts.interval,
		Format:   format,
	}, relative.WithClock(opts.clock), relative.WithLogger(logger))

	if !opts.watch {
		if err := formatter.RenderAll(); err != nil {
			return err
		}
		return write(doc, output, opts.stdout)
	}

	return watch(ctx, doc, formatter, output, logger)
}

func watch(ctx context.Context, doc *document.Document, formatter *relative.Formatter, output string, logger *log.Logger) error {
	events := formatter.Subscribe(4)
	formatter.Start(ctx)
	defer formatter.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if event.Type != relative.EventRendered {
				continue
			}
			if err := doc.Save(output); err != nil {
				return err
			}
			logger.Info("rendered", "path", output, "elements", event.Rendered)
		}
	}
}

func write(doc *document.Document, output string, stdout io.Writer) error {
	if output == "" {
		return doc.Render(stdout)
	}
	return doc.Save(output)
}
