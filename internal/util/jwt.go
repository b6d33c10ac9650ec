package util

import (
	"dsa_platform_backend/internal/model"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer 写入 iss，解析时校验
const TokenIssuer = "dsa-platform"

var ErrInvalidToken = errors.New("invalid token")

// Claims 登录令牌载荷，Subject 与 UserID 相同（十进制字符串）
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func GenerateJWT(user *model.User, secret string, ttl time.Duration) (string, error) {
	issuedAt := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	})
	return token.SignedString([]byte(secret))
}

// ParseJWT 只接受 HS256 且 iss 匹配的令牌
func ParseJWT(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CurrentUserID 返回 TryAuthMiddleware 写入的用户 ID；未携带令牌时 ok 为 false
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(UserClaimsKey)
	if !exists {
		return 0, false
	}
	claims, ok := value.(*Claims)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
