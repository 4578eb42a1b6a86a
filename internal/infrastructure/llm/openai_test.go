package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeUpstream(t *testing.T, handler func(w http.ResponseWriter, req openai.ChatCompletionRequest)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		handler(w, req)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIClient_Complete(t *testing.T) {
	srv := newFakeUpstream(t, func(w http.ResponseWriter, req openai.ChatCompletionRequest) {
		assert.Equal(t, DefaultModel, req.Model)
		assert.Equal(t, DefaultMaxTokens, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[0].Role)
		assert.Equal(t, "hello", req.Messages[0].Content)

		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "\n  hi there \n"}},
			},
		})
	})

	client := NewOpenAIClient(Options{APIKey: "test-key", BaseURL: srv.URL})
	reply, err := client.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)
}

func TestOpenAIClient_CustomModel(t *testing.T) {
	srv := newFakeUpstream(t, func(w http.ResponseWriter, req openai.ChatCompletionRequest) {
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, 42, req.MaxTokens)
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "ok"}}},
		})
	})

	client := NewOpenAIClient(Options{APIKey: "test-key", BaseURL: srv.URL, Model: "gpt-4o-mini", MaxTokens: 42})
	reply, err := client.Complete(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
}

func TestOpenAIClient_UpstreamError(t *testing.T) {
	srv := newFakeUpstream(t, func(w http.ResponseWriter, _ openai.ChatCompletionRequest) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	})

	client := NewOpenAIClient(Options{APIKey: "test-key", BaseURL: srv.URL})
	_, err := client.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, "Incorrect API key provided", err.Error())
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	srv := newFakeUpstream(t, func(w http.ResponseWriter, _ openai.ChatCompletionRequest) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	client := NewOpenAIClient(Options{APIKey: "test-key", BaseURL: srv.URL})
	_, err := client.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestOpenAIClient_Timeout(t *testing.T) {
	srv := newFakeUpstream(t, func(w http.ResponseWriter, _ openai.ChatCompletionRequest) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	})

	client := NewOpenAIClient(Options{APIKey: "test-key", BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := client.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProviderFunc(t *testing.T) {
	var p Provider = ProviderFunc(func(_ context.Context, prompt string) (string, error) {
		return "echo: " + prompt, nil
	})
	reply, err := p.Complete(context.Background(), "ping")
	require.NoError(t, err)
	assert.Equal(t, "echo: ping", reply)
}
