// Package auth 提供密码哈希和会话 Token 的签发/校验。
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost 是 bcrypt 的工作因子
const DefaultCost = 10

// ErrPasswordTooLong bcrypt 只接受最多 72 字节的明文
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// PasswordHasher 对 bcrypt 做了一层很薄的封装，cost 在构造时固定
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher 构造函数，cost 越界时回落到 DefaultCost
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash 生成带随机盐的哈希，同一个明文每次结果都不同
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify 比对明文和哈希。哈希格式不对时直接返回 false
func (h *PasswordHasher) Verify(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
