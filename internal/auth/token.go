package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL 会话 Token 的默认有效期
const DefaultTokenTTL = time.Hour

var (
	// ErrMissingSigningKey 签名密钥为空，属于启动期配置错误
	ErrMissingSigningKey = errors.New("jwt signing key is empty")

	// ErrInvalidToken 是所有校验失败的共同父错误，边界层只需要判断它
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenMalformed token 缺失、无法解析或缺少身份声明
	ErrTokenMalformed = fmt.Errorf("%w: malformed", ErrInvalidToken)
	// ErrTokenSignature 签名不是本进程密钥产生的，或者被篡改
	ErrTokenSignature = fmt.Errorf("%w: bad signature", ErrInvalidToken)
	// ErrTokenExpired 当前时间已超过 exp
	ErrTokenExpired = fmt.Errorf("%w: expired", ErrInvalidToken)
)

// Claims 是写进 token 的声明：userId + 标准的 iat/exp
type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

// TokenCodec 签发和校验 HS256 token。无状态，任何共享同一密钥的实例都能互相校验
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption 用于测试时替换时钟等
type TokenOption func(*TokenCodec)

// WithClock 替换时间来源
func WithClock(now func() time.Time) TokenOption {
	return func(c *TokenCodec) {
		c.now = now
	}
}

// NewTokenCodec 构造函数。密钥为空直接失败，绝不拖到请求阶段
func NewTokenCodec(secret []byte, ttl time.Duration, opts ...TokenOption) (*TokenCodec, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSigningKey
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	c := &TokenCodec{
		secret: append([]byte(nil), secret...),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TTL 返回 token 有效期
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue 签发一个包含 userID 的 token，exp = 签发时间 + ttl
func (c *TokenCodec) Issue(userID uint) (string, error) {
	now := c.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return ss, nil
}

// Verify 校验签名和过期时间，返回 token 中的 userID。
// 失败时返回的错误一定 wrap 了 ErrTokenMalformed / ErrTokenSignature / ErrTokenExpired 之一
func (c *TokenCodec) Verify(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, ErrTokenMalformed
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return 0, fmt.Errorf("%w: %v", ErrTokenSignature, err)
	default:
		return 0, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	if claims.UserID == 0 {
		return 0, fmt.Errorf("%w: missing userId claim", ErrTokenMalformed)
	}
	return claims.UserID, nil
}
