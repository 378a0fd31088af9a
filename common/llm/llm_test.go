package llm_test

import (
	"context"
	"encoding/json"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/genai"

	"tokensmith.app/forge/common/llm"
)

var _ = Describe("New", func() {
	It("requires an API key", func() {
		client, err := llm.New(context.Background(), llm.Config{Provider: llm.ProviderOpenAI})
		Expect(err).To(MatchError(llm.ErrMissingAPIKey))
		Expect(client).To(BeNil())
	})

	It("rejects unknown providers", func() {
		_, err := llm.New(context.Background(), llm.Config{Provider: "mystery", APIKey: "k"})
		Expect(err).To(MatchError(llm.ErrUnsupportedProvider))
	})

	It("defaults to openai with a default model", func() {
		client, err := llm.New(context.Background(), llm.Config{APIKey: "k"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Model()).To(Equal("gpt-4o"))
	})

	It("keeps the configured anthropic model", func() {
		client, err := llm.New(context.Background(), llm.Config{Provider: llm.ProviderAnthropic, APIKey: "k", Model: "claude-x"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Model()).To(Equal("claude-x"))
	})
})

var _ = Describe("ExtractJSON", func() {
	DescribeTable("strips wrappers around the JSON payload",
		func(input, expected string) {
			Expect(llm.ExtractJSON(input)).To(Equal(expected))
		},
		Entry("bare object", `{"a":1}`, `{"a":1}`),
		Entry("json fence", "```json\n{\"a\":1}\n```", `{"a":1}`),
		Entry("plain fence", "```\n{\"a\":1}\n```", `{"a":1}`),
		Entry("leading prose", "Here you go: {\"a\":1}", `{"a":1}`),
		Entry("surrounding whitespace", "  \n{\"a\":1}\n ", `{"a":1}`),
		Entry("empty", "", ""),
	)
})

var _ = Describe("GenerateSchema", func() {
	type sample struct {
		Name    string   `json:"name"`
		Tags    []string `json:"tags"`
		Comment string   `json:"comment,omitempty"`
	}

	It("reflects an inline object schema", func() {
		raw, err := json.Marshal(llm.GenerateSchema[sample]())
		Expect(err).NotTo(HaveOccurred())

		var doc map[string]any
		Expect(json.Unmarshal(raw, &doc)).To(Succeed())
		Expect(doc["type"]).To(Equal("object"))
		Expect(doc).NotTo(HaveKey("$ref"))
		Expect(doc["properties"]).To(HaveKey("name"))
		Expect(doc["required"]).To(ContainElements("name", "tags"))
		Expect(doc["required"]).NotTo(ContainElement("comment"))
	})
})

var _ = Describe("IsRetryable", func() {
	It("does not retry cancelled contexts", func() {
		Expect(llm.IsRetryable(context.Background(), context.Canceled)).To(BeFalse())
	})

	It("retries errors without an HTTP status", func() {
		Expect(llm.IsRetryable(context.Background(), llm.ErrEmptyResponse)).To(BeTrue())
	})

	DescribeTable("reads the status of gemini API errors",
		func(err error, retryable bool) {
			Expect(llm.IsRetryable(context.Background(), err)).To(Equal(retryable))
		},
		Entry("bad request", genai.APIError{Code: 400, Status: "INVALID_ARGUMENT"}, false),
		Entry("permission denied, wrapped", fmt.Errorf("gemini generate: %w", genai.APIError{Code: 403}), false),
		Entry("pointer form", &genai.APIError{Code: 401}, false),
		Entry("rate limited", genai.APIError{Code: 429}, true),
		Entry("unavailable", fmt.Errorf("gemini generate: %w", genai.APIError{Code: 503}), true),
	)

	It("returns false for nil", func() {
		Expect(llm.IsRetryable(context.Background(), nil)).To(BeFalse())
	})
})
