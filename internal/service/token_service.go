package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wallet-ledger/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// clockSkew tolerated between this service and the identity service.
const clockSkew = 30 * time.Second

type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenService implements ports.TokenService. Tokens are HS256, carry the
// actor in "sub" and its role in "role", and must name the configured issuer.
type JWTTokenService struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWTTokenService(secret, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

// Validate parses a bearer token minted by the identity service. Minting
// stays with that service.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	claims := &actorClaims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("missing subject claim")
	}

	return &ports.TokenClaims{
		ActorID: claims.Subject,
		Role:    strings.ToLower(claims.Role),
	}, nil
}
