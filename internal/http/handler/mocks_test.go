package handler_test

import (
	"context"

	"tokensmith.app/forge/internal/cssvars"
	"tokensmith.app/forge/internal/export"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/service"
)

type mockBrandService struct {
	deriveFn   func(ctx context.Context, in model.DiscoveryInputs) (model.DerivedDesignDecisions, error)
	promptFn   func(ctx context.Context, in model.DiscoveryInputs) (*service.PromptResult, error)
	generateFn func(ctx context.Context, in model.DiscoveryInputs) (*service.GenerateResult, error)
	validateFn func(tokens *model.BrandSystem) (*service.ValidationReport, error)
}

func (m *mockBrandService) Derive(ctx context.Context, in model.DiscoveryInputs) (model.DerivedDesignDecisions, error) {
	if m.deriveFn != nil {
		return m.deriveFn(ctx, in)
	}
	return model.DerivedDesignDecisions{}, nil
}

func (m *mockBrandService) BuildPrompt(ctx context.Context, in model.DiscoveryInputs) (*service.PromptResult, error) {
	if m.promptFn != nil {
		return m.promptFn(ctx, in)
	}
	return &service.PromptResult{}, nil
}

func (m *mockBrandService) Generate(ctx context.Context, in model.DiscoveryInputs) (*service.GenerateResult, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, in)
	}
	return &service.GenerateResult{}, nil
}

func (m *mockBrandService) Preview(tokens *model.BrandSystem, mode model.ColorMode) (cssvars.Theme, error) {
	if tokens == nil {
		return cssvars.Theme{}, service.ErrNilTokens
	}
	return cssvars.NewTheme(tokens, mode), nil
}

func (m *mockBrandService) FullCSS(tokens *model.BrandSystem) (string, error) {
	if tokens == nil {
		return "", service.ErrNilTokens
	}
	return cssvars.GenerateFullCSS(tokens), nil
}

func (m *mockBrandService) Validate(tokens *model.BrandSystem) (*service.ValidationReport, error) {
	if m.validateFn != nil {
		return m.validateFn(tokens)
	}
	return &service.ValidationReport{Valid: true}, nil
}

type mockExportService struct {
	exportFn func(ctx context.Context, format string, tokens *model.BrandSystem, opts export.Options) (*model.ExportResult, error)
	bundleFn func(result *model.ExportResult) ([]byte, error)
}

func (m *mockExportService) Formats() []string {
	return []string{export.FormatJSON, export.FormatCSS}
}

func (m *mockExportService) Export(ctx context.Context, format string, tokens *model.BrandSystem, opts export.Options) (*model.ExportResult, error) {
	if m.exportFn != nil {
		return m.exportFn(ctx, format, tokens, opts)
	}
	return &model.ExportResult{Format: format}, nil
}

func (m *mockExportService) Bundle(result *model.ExportResult) ([]byte, error) {
	if m.bundleFn != nil {
		return m.bundleFn(result)
	}
	return []byte("PK"), nil
}

type mockGoldenExampleService struct {
	createFn     func(ctx context.Context, params service.CreateGoldenExampleParams) (*model.GoldenExample, error)
	listFn       func(ctx context.Context, limit, offset int32) ([]model.GoldenExample, error)
	activateFn   func(ctx context.Context, id int64) (*model.GoldenExample, error)
	deactivateFn func(ctx context.Context, id int64) (*model.GoldenExample, error)
}

func (m *mockGoldenExampleService) Create(ctx context.Context, params service.CreateGoldenExampleParams) (*model.GoldenExample, error) {
	if m.createFn != nil {
		return m.createFn(ctx, params)
	}
	return &model.GoldenExample{ID: 1, Name: params.Name, IsActive: true}, nil
}

func (m *mockGoldenExampleService) List(ctx context.Context, limit, offset int32) ([]model.GoldenExample, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockGoldenExampleService) Activate(ctx context.Context, id int64) (*model.GoldenExample, error) {
	if m.activateFn != nil {
		return m.activateFn(ctx, id)
	}
	return &model.GoldenExample{ID: id, IsActive: true}, nil
}

func (m *mockGoldenExampleService) Deactivate(ctx context.Context, id int64) (*model.GoldenExample, error) {
	if m.deactivateFn != nil {
		return m.deactivateFn(ctx, id)
	}
	return &model.GoldenExample{ID: id}, nil
}
