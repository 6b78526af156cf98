package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/domain"
)

// Identity — аутентифицированный принципал, извлечённый из bearer-токена.
type Identity struct {
	ID    string
	Email string
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier локально проверяет токены, подписанные провайдером
// аутентификации (HS256, общий секрет). Сессии сервис не выпускает.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(tokenString string) (*Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !token.Valid || c.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	return &Identity{ID: c.Subject, Email: c.Email}, nil
}
