// Package llm 封装对 OpenAI 兼容补全接口的调用。
package llm

import (
	"context"
	"errors"
)

// ErrEmptyCompletion 上游返回了 0 个 choice
var ErrEmptyCompletion = errors.New("completion returned no choices")

// Provider 定义了 LLM 的通用行为
type Provider interface {
	// Complete 把 prompt 作为单条 user 消息发出去，返回去掉首尾空白的回复
	Complete(ctx context.Context, prompt string) (string, error)
}

// ProviderFunc 让普通函数实现 Provider，测试里用得最多
type ProviderFunc func(ctx context.Context, prompt string) (string, error)

// Complete implements Provider.
func (f ProviderFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
