// Package invitelink signs and verifies the tokens embedded in guest invitation links.
package invitelink

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"weddingplanner/internal/domain"
)

const issuerName = "weddingplanner"

type inviteClaims struct {
	jwt.RegisteredClaims
	WeddingID string `json:"wid"`
}

// Signer issues and verifies HS256 invitation tokens. The guest id is the subject.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner returns a Signer. A ttl of zero issues tokens that never expire.
func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("invitation token secret is empty")
	}
	return &Signer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *Signer) Issue(guestID, weddingID string) (string, error) {
	now := s.now()
	claims := inviteClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuerName,
			Subject:  guestID,
			IssuedAt: jwt.NewNumericDate(now),
		},
		WeddingID: weddingID,
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign invitation token: %w", err)
	}
	return token, nil
}

// Verify returns domain.ErrInvalidToken for malformed, tampered or expired tokens.
func (s *Signer) Verify(token string) (*domain.InvitationClaims, error) {
	claims := &inviteClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.Subject == "" || claims.WeddingID == "" {
		return nil, fmt.Errorf("%w: missing guest or wedding", domain.ErrInvalidToken)
	}
	out := &domain.InvitationClaims{GuestID: claims.Subject, WeddingID: claims.WeddingID}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
