package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tokensmith.app/forge/internal/http/handler"
	"tokensmith.app/forge/internal/model"
	"tokensmith.app/forge/internal/service"
	"tokensmith.app/forge/internal/store"
)

var _ = Describe("GoldenExampleHandler", func() {
	var (
		router *gin.Engine
		svc    *mockGoldenExampleService
	)

	mount := func(h *handler.GoldenExampleHandler) {
		router = gin.New()
		router.POST("/golden-examples", h.Create)
		router.GET("/golden-examples", h.List)
		router.POST("/golden-examples/:id/activate", h.Activate)
		router.POST("/golden-examples/:id/deactivate", h.Deactivate)
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		svc = &mockGoldenExampleService{}
		mount(handler.NewGoldenExampleHandler(svc))
	})

	Describe("Create", func() {
		It("returns 201 with the stored example", func() {
			var got service.CreateGoldenExampleParams
			svc.createFn = func(_ context.Context, p service.CreateGoldenExampleParams) (*model.GoldenExample, error) {
				got = p
				return &model.GoldenExample{ID: 1234567890123, Name: p.Name, Industry: p.Industry, IsActive: true, Tokens: p.Tokens}, nil
			}

			w := doJSON(router, http.MethodPost, "/golden-examples", map[string]any{
				"name":          "Ledgerly reference",
				"industry":      "Fintech",
				"color_mood":    "cool",
				"tokens":        map[string]any{"schemaVersion": "2.1"},
				"quality_score": 90,
				"supersede":     true,
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(got.Supersede).To(BeTrue())
			Expect(got.ColorMood).To(Equal(model.ColorMoodCool))
			resp := decode(w)
			Expect(resp["id"]).To(Equal("1234567890123"))
			Expect(resp["tokens"]).To(HaveKeyWithValue("schemaVersion", "2.1"))
		})

		It("rejects scores above 100", func() {
			w := doJSON(router, http.MethodPost, "/golden-examples", map[string]any{
				"name": "x", "industry": "y", "tokens": map[string]any{}, "quality_score": 101,
			})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps invalid tokens to 400", func() {
			svc.createFn = func(context.Context, service.CreateGoldenExampleParams) (*model.GoldenExample, error) {
				return nil, service.ErrInvalidOption
			}

			w := doJSON(router, http.MethodPost, "/golden-examples", map[string]any{
				"name": "x", "industry": "y", "tokens": map[string]any{},
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["code"]).To(Equal("invalid_option"))
		})
	})

	Describe("List", func() {
		It("forwards paging and leaves tokens out", func() {
			var gotLimit, gotOffset int32
			svc.listFn = func(_ context.Context, limit, offset int32) ([]model.GoldenExample, error) {
				gotLimit, gotOffset = limit, offset
				return []model.GoldenExample{{ID: 1, Name: "a", Tokens: []byte(`{"big":true}`)}}, nil
			}

			w := doJSON(router, http.MethodGet, "/golden-examples?limit=10&offset=20", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotLimit).To(Equal(int32(10)))
			Expect(gotOffset).To(Equal(int32(20)))
			examples := decode(w)["examples"].([]any)
			Expect(examples).To(HaveLen(1))
			Expect(examples[0]).NotTo(HaveKey("tokens"))
		})
	})

	Describe("Activate and Deactivate", func() {
		It("toggles by id", func() {
			w := doJSON(router, http.MethodPost, "/golden-examples/42/deactivate", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["is_active"]).To(BeFalse())

			w = doJSON(router, http.MethodPost, "/golden-examples/42/activate", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["is_active"]).To(BeTrue())
		})

		It("returns 404 for unknown ids", func() {
			svc.activateFn = func(context.Context, int64) (*model.GoldenExample, error) {
				return nil, store.ErrNotFound
			}

			w := doJSON(router, http.MethodPost, "/golden-examples/7/activate", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("rejects non-numeric ids", func() {
			w := doJSON(router, http.MethodPost, "/golden-examples/abc/activate", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("without a database", func() {
		It("answers 503", func() {
			mount(handler.NewGoldenExampleHandler(nil))

			w := doJSON(router, http.MethodGet, "/golden-examples", nil)

			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		})
	})
})
