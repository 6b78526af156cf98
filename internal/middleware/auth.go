package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/auth"
)

const identityKey = "identity"

type TokenVerifier interface {
	Verify(token string) (*auth.Identity, error)
}

// Auth извлекает bearer-токен и резолвит identity до вызова бизнес-логики.
// Без валидного токена запрос дальше не проходит.
func Auth(verifier TokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "no token provided"},
			)
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid token"},
			)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFrom возвращает identity, положенный Auth-middleware.
func IdentityFrom(c *ginext.Context) (*auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*auth.Identity)
	return identity, ok
}
