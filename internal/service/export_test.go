package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tokensmith.app/forge/internal/derive"
	"tokensmith.app/forge/internal/export"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/palette"
	"tokensmith.app/forge/internal/service"
)

var _ = Describe("ExportService", func() {
	var (
		ctx    context.Context
		tokens *model.BrandSystem
		reg    *export.Registry
	)

	BeforeEach(func() {
		ctx = context.Background()
		in := brief()
		tokens = palette.Scaffold(in, derive.Derive(in))
		reg = export.NewRegistry(func() time.Time { return fixedNow })
	})

	It("should list the registry formats", func() {
		svc := service.NewExportService(reg, model.ColorModeLight)
		Expect(svc.Formats()).To(Equal(reg.Formats()))
	})

	It("should apply the configured default colour mode", func() {
		svc := service.NewExportService(reg, model.ColorModeBoth)

		res, err := svc.Export(ctx, export.FormatEmail, tokens, export.Options{})

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Files).To(HaveLen(2))
		Expect(res.Files[0].Filename).To(HaveSuffix("-light.html"))
		Expect(res.Files[1].Filename).To(HaveSuffix("-dark.html"))
	})

	It("should let the request override the default", func() {
		svc := service.NewExportService(reg, model.ColorModeBoth)

		res, err := svc.Export(ctx, export.FormatEmail, tokens, export.Options{ColorMode: model.ColorModeDark})

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Files).To(HaveLen(1))
	})

	It("should fall back to light for an invalid configured mode", func() {
		svc := service.NewExportService(reg, model.ColorMode("sepia"))

		res, err := svc.Export(ctx, export.FormatEmail, tokens, export.Options{})

		Expect(err).NotTo(HaveOccurred())
		Expect(res.Files).To(HaveLen(1))
		Expect(res.Files[0].Filename).NotTo(ContainSubstring("-dark"))
	})

	It("should reject an invalid requested mode", func() {
		svc := service.NewExportService(reg, model.ColorModeLight)

		_, err := svc.Export(ctx, export.FormatCSS, tokens, export.Options{ColorMode: "sepia"})

		Expect(err).To(MatchError(service.ErrInvalidOption))
	})

	It("should surface unknown formats and nil trees", func() {
		svc := service.NewExportService(reg, model.ColorModeLight)

		_, err := svc.Export(ctx, "pdf", tokens, export.Options{})
		Expect(err).To(MatchError(export.ErrUnknownFormat))

		_, err = svc.Export(ctx, export.FormatJSON, nil, export.Options{})
		Expect(err).To(MatchError(service.ErrNilTokens))
	})

	It("should bundle a result", func() {
		svc := service.NewExportService(reg, model.ColorModeLight)
		res, err := svc.Export(ctx, export.FormatTailwind, tokens, export.Options{})
		Expect(err).NotTo(HaveOccurred())

		data, err := svc.Bundle(res)

		Expect(err).NotTo(HaveOccurred())
		Expect(data[:2]).To(Equal([]byte("PK")))
	})
})
