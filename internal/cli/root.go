// Package cli implements the tokensmith command.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"tokensmith.app/forge/common/llm"
	"tokensmith.app/forge/common/logger"
	"tokensmith.app/forge/internal/export"
	"tokensmith.app/forge/internal/prompt"
	"tokensmith.app/forge/internal/service"
)

type app struct {
	in      io.Reader
	out     io.Writer
	now     func() time.Time
	verbose bool
	newLLM  func(ctx context.Context, cfg llm.Config) (llm.Client, error)
}

func (a *app) brand() service.BrandService {
	return service.NewBrandService(service.BrandServiceConfig{
		Prompts: prompt.NewBuilder(nil, 0, 0),
		Now:     a.now,
	})
}

func (a *app) exports() service.ExportService {
	return service.NewExportService(export.NewRegistry(a.now), "")
}

// NewRootCommand builds the command tree. now stamps generated files; nil
// means time.Now.
func NewRootCommand(in io.Reader, out io.Writer, now func() time.Time) *cobra.Command {
	if now == nil {
		now = time.Now
	}
	return newRootCommand(&app{in: in, out: out, now: now, newLLM: llm.New})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "tokensmith",
		Short: "Derive, scaffold and export brand design systems",
		Long: `tokensmith turns a discovery brief into design decisions and a token
tree, and renders token trees into CSS, Tailwind and HTML artifacts.

Briefs and token files may be JSON or YAML; pass "-" to read stdin.`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.SetupCLI(a.verbose)
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		a.deriveCommand(),
		a.promptCommand(),
		a.scaffoldCommand(),
		a.generateCommand(),
		a.validateCommand(),
		a.cssCommand(),
		a.exportCommand(),
		a.formatsCommand(),
	)
	return root
}

func Execute(in io.Reader, out io.Writer) error {
	return NewRootCommand(in, out, nil).Execute()
}
