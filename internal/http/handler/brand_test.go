package handler_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tokensmith.app/forge/internal/http/handler"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/service"
)

var _ = Describe("BrandHandler", func() {
	var (
		router *gin.Engine
		svc    *mockBrandService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockBrandService{}
		h := handler.NewBrandHandler(svc)
		router.POST("/brand/derive", h.Derive)
		router.POST("/brand/prompt", h.Prompt)
		router.POST("/brand/generate", h.Generate)
		router.POST("/brand/validate", h.Validate)
		router.POST("/brand/css", h.CSS)
	})

	brief := map[string]any{
		"companyName": "Ledgerly",
		"industry":    "fintech",
		"personality": []string{"trustworthy"},
	}

	Describe("Derive", func() {
		It("returns the derived decisions", func() {
			var got model.DiscoveryInputs
			svc.deriveFn = func(_ context.Context, in model.DiscoveryInputs) (model.DerivedDesignDecisions, error) {
				got = in
				return model.DerivedDesignDecisions{Recommendations: model.Recommendations{ColorMode: model.ColorModeBoth}}, nil
			}

			w := doJSON(router, http.MethodPost, "/brand/derive", brief)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got.CompanyName).To(Equal("Ledgerly"))
			Expect(got.Personality).To(Equal([]string{"trustworthy"}))
			resp := decode(w)
			Expect(resp["recommendations"]).To(HaveKeyWithValue("colorMode", "both"))
		})

		It("rejects enum values outside the allowed set", func() {
			w := doJSON(router, http.MethodPost, "/brand/derive", map[string]any{
				"companyName": "Ledgerly",
				"colorMood":   "neon",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["code"]).To(Equal("invalid_request"))
		})

		It("rejects malformed JSON", func() {
			w := doJSON(router, http.MethodPost, "/brand/derive", `{"companyName":`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Generate", func() {
		It("maps a missing company name to 400", func() {
			svc.generateFn = func(context.Context, model.DiscoveryInputs) (*service.GenerateResult, error) {
				return nil, service.ErrMissingCompanyName
			}

			w := doJSON(router, http.MethodPost, "/brand/generate", map[string]any{"companyName": " "})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["code"]).To(Equal("missing_company_name"))
		})

		It("hides unexpected errors behind a generic message", func() {
			svc.generateFn = func(context.Context, model.DiscoveryInputs) (*service.GenerateResult, error) {
				return nil, errors.New("pq: password authentication failed")
			}

			w := doJSON(router, http.MethodPost, "/brand/generate", brief)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("password"))
			Expect(decode(w)["error"]).To(Equal("failed to generate brand system"))
		})

		It("returns the generated tree and its source", func() {
			svc.generateFn = func(context.Context, model.DiscoveryInputs) (*service.GenerateResult, error) {
				return &service.GenerateResult{
					Tokens: &model.BrandSystem{Metadata: model.Metadata{Name: "Ledgerly"}},
					Source: service.SourceScaffold,
				}, nil
			}

			w := doJSON(router, http.MethodPost, "/brand/generate", brief)

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["source"]).To(Equal("scaffold"))
			Expect(resp["tokens"]).To(HaveKey("metadata"))
		})
	})

	Describe("Prompt", func() {
		It("returns both prompts", func() {
			svc.promptFn = func(context.Context, model.DiscoveryInputs) (*service.PromptResult, error) {
				return &service.PromptResult{System: "sys", User: "# Design system brief: Ledgerly"}, nil
			}

			w := doJSON(router, http.MethodPost, "/brand/prompt", brief)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)).To(HaveKeyWithValue("user", "# Design system brief: Ledgerly"))
		})
	})

	Describe("Validate", func() {
		It("requires a token tree", func() {
			w := doJSON(router, http.MethodPost, "/brand/validate", map[string]any{})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns the report", func() {
			svc.validateFn = func(tokens *model.BrandSystem) (*service.ValidationReport, error) {
				Expect(tokens.Colors.Primary.Light).To(Equal("#0055ff"))
				return &service.ValidationReport{Valid: false, IncompleteColors: []string{"colors.primary.dark"}}, nil
			}

			w := doJSON(router, http.MethodPost, "/brand/validate", map[string]any{
				"tokens": map[string]any{"colors": map[string]any{"primary": map[string]string{"light": "#0055ff"}}},
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["valid"]).To(BeFalse())
		})
	})

	Describe("CSS", func() {
		tokens := map[string]any{
			"tokens": map[string]any{"colors": map[string]any{"primary": map[string]string{"light": "#112233", "dark": "#aabbcc"}}},
		}

		It("renders a single mode as one :root block", func() {
			w := doJSON(router, http.MethodPost, "/brand/css?mode=dark", tokens)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(HavePrefix("text/css"))
			Expect(w.Body.String()).To(HavePrefix(":root {"))
			Expect(w.Body.String()).To(ContainSubstring("--primary: #aabbcc;"))
			Expect(w.Body.String()).NotTo(ContainSubstring("#112233"))
		})

		It("renders both modes without a mode", func() {
			w := doJSON(router, http.MethodPost, "/brand/css", tokens)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("#112233"))
			Expect(w.Body.String()).To(ContainSubstring("#aabbcc"))
		})

		It("rejects unknown modes", func() {
			w := doJSON(router, http.MethodPost, "/brand/css?mode=sepia", tokens)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
