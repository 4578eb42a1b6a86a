package llm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	DefaultModel     = openai.GPT3Dot5Turbo
	DefaultMaxTokens = 100
	DefaultTimeout   = 30 * time.Second
)

// Options 对应配置里的 openai.* 段
type Options struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type OpenAIClient struct {
	modelName string
	maxTokens int
	timeout   time.Duration
	client    *openai.Client
}

var _ Provider = (*OpenAIClient)(nil)

func NewOpenAIClient(opts Options) *OpenAIClient {
	config := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		config.BaseURL = opts.BaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	// 请求级超时由 context 控制，这里的 http 超时只是兜底
	config.HTTPClient = &http.Client{Timeout: opts.Timeout + 5*time.Second}

	return &OpenAIClient{
		modelName: opts.Model,
		maxTokens: opts.MaxTokens,
		timeout:   opts.Timeout,
		client:    openai.NewClientWithConfig(config),
	}
}

// Complete 调用一次非流式 chat completion
func (o *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: o.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: o.maxTokens,
	}

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		slog.WarnContext(ctx, "completion request failed", "model", o.modelName, "err", err)
		return "", UpstreamMessage(err)
	}
	slog.DebugContext(ctx, "completion done",
		"model", o.modelName,
		"duration", time.Since(start),
		"total_tokens", resp.Usage.TotalTokens,
	)

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// UpstreamMessage 把 go-openai 的 APIError 拍平成只带上游 message 的错误，
// 其它错误原样返回
func UpstreamMessage(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	return err
}
