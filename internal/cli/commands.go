package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tokensmith.app/forge/common"
	"tokensmith.app/forge/common/llm"
	"tokensmith.app/forge/core/config"
	"tokensmith.app/forge/internal/export"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/prompt"
	"tokensmith.app/forge/internal/service"
)

var (
	errInvalidTokens = errors.New("token tree failed validation")
	errLLMDisabled   = errors.New("no generation model configured: set GENERATION_LLM_API_KEY or use scaffold")
)

func (a *app) deriveCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "derive <brief>",
		Short: "Print the design decisions derived from a brief",
		Example: `  tokensmith derive brief.yaml
  tokensmith derive --format yaml brief.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.readBrief(args[0])
			if err != nil {
				return err
			}
			derived, err := a.brand().Derive(cmd.Context(), in)
			if err != nil {
				return err
			}
			return writeValue(a.out, derived, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json or yaml")
	return cmd
}

func (a *app) promptCommand() *cobra.Command {
	var withSystem bool
	cmd := &cobra.Command{
		Use:   "prompt <brief>",
		Short: "Print the generation prompt for a brief",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.readBrief(args[0])
			if err != nil {
				return err
			}
			res, err := a.brand().BuildPrompt(cmd.Context(), in)
			if err != nil {
				return err
			}
			if withSystem {
				fmt.Fprintf(a.out, "%s\n\n---\n\n", res.System)
			}
			_, err = fmt.Fprint(a.out, res.User)
			return err
		},
	}
	cmd.Flags().BoolVar(&withSystem, "system", false, "print the system prompt first")
	return cmd
}

func (a *app) scaffoldCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "scaffold <brief>",
		Short: "Build a complete token tree from a brief without a model call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.readBrief(args[0])
			if err != nil {
				return err
			}
			res, err := a.brand().Generate(cmd.Context(), in)
			if err != nil {
				return err
			}
			return writeValue(a.out, res.Tokens, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json or yaml")
	return cmd
}

func (a *app) generateCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "generate <brief>",
		Short: "Generate a token tree with the configured model",
		Long: `generate calls the model configured by the GENERATION_LLM_* variables
(read from .env.cli or .env in development). A failed model call falls back
to the scaffold; the log line "brand system generated" reports the source.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.readBrief(args[0])
			if err != nil {
				return err
			}
			cfg, err := config.Load(config.ServiceTypeCLI)
			if err != nil {
				return err
			}
			if !cfg.GenerationLLM.Enabled() {
				return errLLMDisabled
			}

			ctx := cmd.Context()
			client, err := a.newLLM(ctx, llm.Config{
				Provider: cfg.GenerationLLM.Provider,
				APIKey:   cfg.GenerationLLM.APIKey,
				BaseURL:  cfg.GenerationLLM.BaseURL,
				Model:    cfg.GenerationLLM.Model,
			})
			if err != nil {
				return fmt.Errorf("creating llm client: %w", err)
			}
			slog.DebugContext(ctx, "generating with model", "provider", cfg.GenerationLLM.Provider, "model", client.Model())

			svc := service.NewBrandService(service.BrandServiceConfig{
				Prompts:     prompt.NewBuilder(nil, cfg.GoldenExamples.FetchLimit, cfg.GoldenExamples.PromptLimit),
				LLM:         client,
				MaxTokens:   cfg.GenerationLLM.MaxTokens,
				Temperature: cfg.GenerationLLM.Temperature,
				Now:         a.now,
			})
			res, err := svc.Generate(ctx, in)
			if err != nil {
				return err
			}
			return writeValue(a.out, res.Tokens, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json or yaml")
	return cmd
}

func (a *app) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <tokens>",
		Short: "Check colour completeness and text contrast of a token tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := a.readTokens(args[0])
			if err != nil {
				return err
			}
			report, err := a.brand().Validate(tokens)
			if err != nil {
				return err
			}
			if err := writeValue(a.out, report, formatJSON); err != nil {
				return err
			}
			if !report.Valid {
				return errInvalidTokens
			}
			return nil
		},
	}
}

func (a *app) cssCommand() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "css <tokens>",
		Short: "Print the CSS custom properties of a token tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := a.readTokens(args[0])
			if err != nil {
				return err
			}
			svc := a.brand()
			switch model.ColorMode(mode) {
			case model.ColorModeBoth:
				css, err := svc.FullCSS(tokens)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(a.out, css)
				return err
			case model.ColorModeLight, model.ColorModeDark:
				theme, err := svc.Preview(tokens, model.ColorMode(mode))
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(a.out, theme.Block(":root"))
				return err
			default:
				return fmt.Errorf("unknown mode %q (want light, dark or both)", mode)
			}
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(model.ColorModeBoth), "light, dark or both")
	return cmd
}

func (a *app) exportCommand() *cobra.Command {
	var (
		outDir string
		zip    bool
		opts   export.Options
		mode   string
	)
	cmd := &cobra.Command{
		Use:   "export <format> <tokens>",
		Short: "Render a token tree into an export format",
		Example: `  tokensmith export landing-page tokens.json --mode both --out dist
  tokensmith export slideshow tokens.yaml --slides title,colors,contact --zip`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := a.readTokens(args[1])
			if err != nil {
				return err
			}
			opts.ColorMode = model.ColorMode(mode)
			svc := a.exports()
			result, err := svc.Export(cmd.Context(), args[0], tokens, opts)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", outDir, err)
			}
			if zip {
				data, err := svc.Bundle(result)
				if err != nil {
					return err
				}
				name := filepath.Join(outDir, common.BrandSlug(result.Metadata.BrandName)+"-"+result.Format+".zip")
				if err := os.WriteFile(name, data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", name, err)
				}
				fmt.Fprintln(a.out, name)
				return nil
			}
			for _, f := range result.Files {
				name := filepath.Join(outDir, filepath.Base(f.Filename))
				if err := os.WriteFile(name, []byte(f.Content), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", name, err)
				}
				fmt.Fprintln(a.out, name)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&outDir, "out", "o", ".", "directory to write files into")
	f.BoolVar(&zip, "zip", false, "write a single zip archive")
	f.StringVarP(&mode, "mode", "m", "", "colour mode: light, dark or both")
	f.StringSliceVar(&opts.Templates, "templates", nil, "social templates to render (og, twitter, linkedin, instagram)")
	f.StringSliceVar(&opts.Slides, "slides", nil, "slideshow sections in order")
	f.StringVar(&opts.Subject, "subject", "", "email subject line")
	f.StringVar(&opts.CtaURL, "cta-url", "", "call-to-action link")
	f.StringVar(&opts.ContactEmail, "contact-email", "", "contact address for the slideshow")
	f.StringVar(&opts.Website, "website", "", "website shown on the one-sheeter and slideshow")
	return cmd
}

func (a *app) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List export formats",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, f := range a.exports().Formats() {
				fmt.Fprintln(a.out, f)
			}
			return nil
		},
	}
}
