package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aikombin/aikombin-server/pkg/httpx"
	"github.com/aikombin/aikombin-server/pkg/logger"
)

// TokenTTL is the lifetime of issued bearer tokens.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken is returned when a bearer token fails signature or claim checks.
var ErrInvalidToken = errors.New("invalid bearer token")

// TokenIssuer signs and verifies the HS256 bearer tokens used by the v1 API.
// Mobile clients that cannot hold a session cookie authenticate with these.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer returns a TokenIssuer for the given shared secret.
func NewTokenIssuer(secret []byte) *TokenIssuer {
	return &TokenIssuer{secret: secret}
}

// Issue generates a signed token whose subject is the given user id.
func (t *TokenIssuer) Issue(userID uuid.UUID) (string, error) {
	if len(t.secret) == 0 {
		return "", fmt.Errorf("issue token: signing secret not configured")
	}
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token string and returns the user id from its subject.
func (t *TokenIssuer) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

// RequireBearer is a chi middleware enforcing Authorization: Bearer <token>
// on the v1 API. The token subject is injected as the request's UserID.
func RequireBearer(issuer *TokenIssuer, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "bearer token required"})
				return
			}

			userID, err := issuer.Verify(tokenString)
			if err != nil {
				log.WarnContext(r.Context(), "bearer token rejected", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid bearer token"})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
