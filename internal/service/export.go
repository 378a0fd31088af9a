package service

import (
	"context"
	"fmt"
	"log/slog"

	"tokensmith.app/forge/common/logger"
	"tokensmith.app/forge/internal/export"
	"tokensmith.app/forge/internal/model"
)

type ExportService interface {
	Formats() []string
	Export(ctx context.Context, format string, tokens *model.BrandSystem, opts export.Options) (*model.ExportResult, error)
	Bundle(result *model.ExportResult) ([]byte, error)
}

type exportService struct {
	registry    *export.Registry
	defaultMode model.ColorMode
}

// NewExportService renders with registry. defaultMode applies when a request
// names no colour mode; invalid values fall back to light.
func NewExportService(registry *export.Registry, defaultMode model.ColorMode) ExportService {
	if !defaultMode.Valid() {
		defaultMode = model.ColorModeLight
	}
	return &exportService{registry: registry, defaultMode: defaultMode}
}

func (s *exportService) Formats() []string {
	return s.registry.Formats()
}

func (s *exportService) Export(ctx context.Context, format string, tokens *model.BrandSystem, opts export.Options) (*model.ExportResult, error) {
	if tokens == nil {
		return nil, ErrNilTokens
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		BrandName:    logger.Ptr(tokens.Metadata.Name),
		ExportFormat: logger.Ptr(format),
		Component:    "tokensmith.service.export",
	})

	if opts.ColorMode == "" {
		opts.ColorMode = s.defaultMode
	}
	if !opts.ColorMode.Valid() {
		return nil, fmt.Errorf("%w: colour mode %q", ErrInvalidOption, opts.ColorMode)
	}

	result, err := s.registry.Generate(ctx, format, tokens, opts)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "export generated", "files", len(result.Files), "color_mode", opts.ColorMode)
	return result, nil
}

func (s *exportService) Bundle(result *model.ExportResult) ([]byte, error) {
	return export.Bundle(result)
}
