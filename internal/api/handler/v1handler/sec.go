package v1handler

import (
	"bus2ride/internal/config"
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type CtxKey string

// UserIDKey holds the authenticated administrator's domain.UserID.
const UserIDKey CtxKey = "userID"

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key admin tokens are verified with.
	PublicKey string
	// Issuer, when set, must match the token's iss claim.
	Issuer string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey, Issuer: cfg.JWT.Issuer}
}

// SecHandler verifies RS256 admin tokens.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

// NewSecHandler parses the configured public key. Without a key every admin
// request is rejected.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse jwt public key: %w", err)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}

	return &SecHandler{publicKey: key, parser: jwt.NewParser(parserOpts...)}, nil
}

// HandleBearerAuth validates token and stores the subject as the user id in
// the returned context.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if s.publicKey == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "admin access is not configured")
	}

	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(userID)), nil
}

// Require rejects requests without a valid "Authorization: Bearer" token
// before they reach next. Failures are rendered through h.
func (s SecHandler) Require(next http.Handler, h Handler) http.Handler {
	return h.wrap(func(w http.ResponseWriter, r *http.Request) error {
		token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return serrors.With(serrors.ErrUnauthorized, "missing bearer token")
		}

		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			return err
		}
		next.ServeHTTP(w, r.WithContext(ctx))

		return nil
	})
}

// GetUserIDFromContext returns the authenticated user, or the zero id on
// routes without authentication.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}
