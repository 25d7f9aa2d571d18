package middleware

import (
	"errors"
	"log"
	"strings"

	"budget_tracker/internal/adapter/http/session"
	"budget_tracker/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	identityKey = "identity"
	claimsKey   = "session_claims"
)

// ResolveIdentity reads the session token from the cookie or an
// Authorization: Bearer header and stores the caller identity in the context.
// Requests without a valid, unrevoked token continue anonymously; the use
// cases decide whether that is allowed.
func ResolveIdentity(sessions *session.Manager, revocations session.RevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFrom(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := sessions.Verify(c.Request.Context(), token, revocations)
		if err != nil {
			if !errors.Is(err, session.ErrInvalidToken) && !errors.Is(err, session.ErrRevoked) {
				log.Printf("[session][middleware] token rejected err=%v", err)
			}
			c.Next()
			return
		}

		identity, err := claims.Identity()
		if err != nil {
			c.Next()
			return
		}

		SetIdentity(c, &identity)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// TokenFrom returns the session cookie, falling back to a Bearer token.
func TokenFrom(c *gin.Context) string {
	if v, err := c.Cookie(session.CookieName); err == nil && v != "" {
		return v
	}
	auth := c.GetHeader("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// SetIdentity attaches the caller identity to the request context.
func SetIdentity(c *gin.Context, identity *entities.Identity) {
	c.Set(identityKey, identity)
}

// IdentityFrom returns the caller, or nil for anonymous requests.
func IdentityFrom(c *gin.Context) *entities.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*entities.Identity)
	return identity
}

func ClaimsFrom(c *gin.Context) (session.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return session.Claims{}, false
	}
	claims, ok := v.(session.Claims)
	return claims, ok
}
