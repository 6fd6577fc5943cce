package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIGenerate(t *testing.T) {
	var captured openAIChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" Our programs run 2 to 6 months. "}}]}`))
	}))
	defer srv.Close()

	g := NewOpenAIGenerator("test-key", "gpt-3.5-turbo", srv.URL)

	text, err := g.Generate(context.Background(), Request{
		System:      "you help with leadership programs",
		Prompt:      "how long are the programs?",
		MaxTokens:   300,
		Temperature: 0.7,
	})

	require.NoError(t, err)
	assert.Equal(t, "Our programs run 2 to 6 months.", text)

	assert.Equal(t, "gpt-3.5-turbo", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "you help with leadership programs", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, 300, captured.MaxTokens)
	assert.InDelta(t, 0.7, captured.Temperature, 0.001)
}

func TestOpenAIGenerateOmitsSystemMessageWhenBlank(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openAIChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	g := NewOpenAIGenerator("test-key", "gpt-3.5-turbo", srv.URL)

	_, err := g.Generate(context.Background(), Request{Prompt: "hello"})
	require.NoError(t, err)
}

func TestOpenAIGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewOpenAIGenerator("test-key", "gpt-3.5-turbo", srv.URL)

	_, err := g.Generate(context.Background(), Request{Prompt: "hello"})
	assert.Error(t, err)
}

func TestOpenAIGenerateEmptyCompletion(t *testing.T) {
	responses := []string{
		`{"choices":[]}`,
		`{"choices":[{"message":{"role":"assistant","content":"   "}}]}`,
	}

	for _, body := range responses {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		g := NewOpenAIGenerator("test-key", "gpt-3.5-turbo", srv.URL)

		_, err := g.Generate(context.Background(), Request{Prompt: "hello"})
		assert.Error(t, err)

		srv.Close()
	}
}

func TestNewReturnsNilWithoutProvider(t *testing.T) {
	for _, opts := range []Options{
		{},
		{Provider: "none", APIKey: "key"},
		{Provider: "openai"},
	} {
		g, err := New(context.Background(), opts)
		require.NoError(t, err)
		assert.Nil(t, g)
	}
}

func TestNewUnsupportedProvider(t *testing.T) {
	_, err := New(context.Background(), Options{Provider: "palm", APIKey: "key"})
	assert.Error(t, err)
}

func TestNewOpenAIProvider(t *testing.T) {
	g, err := New(context.Background(), Options{Provider: "openai", APIKey: "key", Model: "gpt-3.5-turbo"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIGenerator{}, g)
}
