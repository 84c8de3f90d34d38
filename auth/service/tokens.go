package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/shopcore/commerce-api/common"
)

// Bearer token errors. The middleware surfaces these messages verbatim so
// clients can distinguish a missing token from a bad or stale one.
var (
	ErrTokenMissing = errors.New("missing authorization token")
	ErrTokenInvalid = errors.New("invalid authorization token")
	ErrTokenExpired = errors.New("authorization token expired")
)

const defaultTokenTTL = 24 * time.Hour

// Claims carries the customer identity inside a bearer token.
type Claims struct {
	CustomerID string `json:"customerId"`
	Email      string `json:"email"`
	jwt.StandardClaims
}

type Tokens struct {
	signingKey []byte
	ttl        time.Duration
}

func NewTokens() *Tokens {
	return NewTokensWithKey([]byte(common.GetEnv("JWT_SIGNING_KEY", "")), defaultTokenTTL)
}

func NewTokensWithKey(key []byte, ttl time.Duration) *Tokens {
	return &Tokens{
		signingKey: key,
		ttl:        ttl,
	}
}

// Issue creates a signed token with a fixed expiry for the given customer.
func (t *Tokens) Issue(customerID, email string) (string, error) {
	now := time.Now()

	claims := Claims{
		CustomerID: customerID,
		Email:      email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(t.ttl).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.signingKey)
}

// Verify parses and validates the token, returning its claims.
func (t *Tokens) Verify(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}

		return t.signingKey, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}

		return nil, ErrTokenInvalid
	}

	if !parsed.Valid || claims.CustomerID == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
