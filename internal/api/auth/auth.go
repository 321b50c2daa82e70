package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hbomb79/Reel/pkg/logger"
	"github.com/labstack/echo/v4"
)

var (
	log = logger.Get("Auth")

	ErrAuthTokenMissing = errors.New("request does not contain a bearer token")
	ErrAuthTokenInvalid = errors.New("bearer token is expired or invalid")
	ErrNoOwner          = errors.New("no authenticated owner in request context")

	errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
)

const (
	// DevOwnerID is the owner every request made with the development token acts as.
	DevOwnerID = "dev-user-id"

	ownerContextKey = "reel.owner_id"
	tokenQueryParam = "token"
)

type (
	Config struct {
		JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true" validate:"required"`
		DevToken  string `yaml:"dev_token" env:"AUTH_DEV_TOKEN"`
	}

	// Provider verifies the bearer tokens of incoming requests. Identity is issued
	// elsewhere; Reel only needs the subject of a valid HS256 token, which becomes
	// the owner ID for the request.
	Provider struct {
		secret   []byte
		devToken string
	}

	identity struct {
		ID string `json:"id"`
	}
)

func New(config Config) *Provider {
	if config.DevToken != "" {
		log.Emit(logger.WARNING, "Development token is enabled, requests bearing it act as %q\n", DevOwnerID)
	}

	return &Provider{secret: []byte(config.JWTSecret), devToken: config.DevToken}
}

// VerifierMiddleware rejects requests without a valid token with a 401. The token is
// read from the Authorization header, or from the 'token' query parameter so that
// media elements (which can not set headers) may stream.
func (provider *Provider) VerifierMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			token, err := extractToken(ec.Request())
			if err != nil {
				return errUnauthorized
			}

			ownerID, err := provider.Authenticate(token)
			if err != nil {
				log.Debugf("Rejecting %s %s: %v\n", ec.Request().Method, ec.Path(), err)
				return errUnauthorized
			}

			ec.Set(ownerContextKey, ownerID)
			return next(ec)
		}
	}
}

// SetRoutes registers the identity routes on a group already guarded by the
// VerifierMiddleware.
func (provider *Provider) SetRoutes(eg *echo.Group) {
	eg.GET("/me", me)
}

func me(ec echo.Context) error {
	ownerID, err := OwnerID(ec)
	if err != nil {
		return errUnauthorized
	}

	return ec.JSON(http.StatusOK, map[string]identity{"user": {ID: ownerID}})
}

// Authenticate validates the token, returning the owner ID it identifies.
func (provider *Provider) Authenticate(token string) (string, error) {
	if provider.devToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(provider.devToken)) == 1 {
		return DevOwnerID, nil
	}

	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(
		token,
		claims,
		func(*jwt.Token) (interface{}, error) { return provider.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthTokenInvalid, err)
	}
	if tkn == nil || !tkn.Valid {
		return "", ErrAuthTokenInvalid
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", ErrAuthTokenInvalid)
	}

	return claims.Subject, nil
}

// GenerateToken signs an HS256 token for the owner which expires after the lifespan given.
func GenerateToken(secret string, ownerID string, lifespan time.Duration) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   ownerID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifespan)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// OwnerID returns the owner the request was authenticated as.
func OwnerID(ec echo.Context) (string, error) {
	if ownerID, ok := ec.Get(ownerContextKey).(string); ok && ownerID != "" {
		return ownerID, nil
	}

	return "", ErrNoOwner
}

func extractToken(req *http.Request) (string, error) {
	if header := req.Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") && strings.TrimSpace(token) != "" {
			return strings.TrimSpace(token), nil
		}
	}

	if token := req.URL.Query().Get(tokenQueryParam); token != "" {
		return token, nil
	}

	return "", ErrAuthTokenMissing
}
