package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/leon37/promptboard/internal/infrastructure/llm"
)

// ChatService 把 prompt 转发给补全服务
type ChatService struct {
	llmClient llm.Provider // 依赖接口，而不是具体 struct
}

func NewChatService(llmClient llm.Provider) *ChatService {
	return &ChatService{llmClient: llmClient}
}

// Chat 返回补全结果。上游失败时错误信息原样带回
func (s *ChatService) Chat(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrMissingPrompt
	}

	reply, err := s.llmClient.Complete(ctx, prompt)
	if err != nil {
		slog.ErrorContext(ctx, "completion failed", "err", err)
		return "", &upstreamError{cause: err}
	}
	return strings.TrimSpace(reply), nil
}
