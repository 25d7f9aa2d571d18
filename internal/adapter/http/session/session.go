package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"budget_tracker/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie that carries the session token.
const CookieName = "session"

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrRevoked      = errors.New("session revoked")
)

// Claims is the signed content of a session token. Subject holds the
// identity id and ID a unique token id used for revocation.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IdentityID parses the subject back into an identity id.
func (c Claims) IdentityID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// Identity rebuilds the caller identity carried by the token.
func (c Claims) Identity() (entities.Identity, error) {
	id, err := c.IdentityID()
	if err != nil {
		return entities.Identity{}, err
	}
	role := entities.Role(c.Role)
	if !role.IsValid() {
		return entities.Identity{}, ErrInvalidToken
	}
	return entities.Identity{ID: id, Username: c.Username, Role: role}, nil
}

// Manager issues and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl, now: time.Now}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

func (m *Manager) Issue(identity entities.Identity) (string, Claims, error) {
	now := m.now().UTC()
	claims := Claims{
		Username: identity.Username,
		Role:     string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(identity.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", Claims{}, fmt.Errorf("sign session: %w", err)
	}
	return signed, claims, nil
}

func (m *Manager) Parse(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.ID == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// Verify parses token and rejects it with ErrRevoked once it has been logged
// out.
func (m *Manager) Verify(ctx context.Context, token string, revocations RevocationStore) (Claims, error) {
	claims, err := m.Parse(token)
	if err != nil {
		return Claims{}, err
	}
	revoked, err := revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return Claims{}, fmt.Errorf("revocation check: %w", err)
	}
	if revoked {
		return Claims{}, ErrRevoked
	}
	return claims, nil
}
