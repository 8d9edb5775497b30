package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Rejection reasons. All of them become 401 at the HTTP boundary; the
// distinction exists for diagnostics only.
var (
	ErrMalformed    = errors.New("malformed token")
	ErrBadSignature = errors.New("bad token signature")
	ErrExpired      = errors.New("token expired")
)

type Claims struct {
	UserID int64 `json:"user_id"`
	jwtlib.RegisteredClaims
}

// Signer issues and verifies bearer tokens with a process-wide secret.
// It is built once at startup and never mutated.
type Signer struct {
	secret []byte
	method jwtlib.SigningMethod
	ttl    time.Duration
}

func NewSigner(secret []byte, alg string, ttl time.Duration) (*Signer, error) {
	method := jwtlib.GetSigningMethod(alg)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", alg)
	}
	if _, ok := method.(*jwtlib.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not symmetric", alg)
	}
	return &Signer{secret: secret, method: method, ttl: ttl}, nil
}

func (s *Signer) TTL() time.Duration {
	return s.ttl
}

func (s *Signer) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwtlib.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature before trusting any claim, then the expiry.
// Returns the user id carried by the token.
func (s *Signer) Verify(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwtlib.ParseWithClaims(tokenString, claims, func(token *jwtlib.Token) (interface{}, error) {
		if token.Method.Alg() != s.method.Alg() {
			return nil, ErrBadSignature
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwtlib.ErrTokenExpired):
			return 0, ErrExpired
		case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
			return 0, ErrBadSignature
		default:
			return 0, ErrMalformed
		}
	}
	if !token.Valid || claims.UserID == 0 {
		return 0, ErrMalformed
	}
	return claims.UserID, nil
}
