package domain

import (
	"context"
	"time"
)

// InvitationClaims identifies the guest an invitation link was issued for.
type InvitationClaims struct {
	GuestID   string
	WeddingID string
	ExpiresAt time.Time
}

// InvitationTokenIssuer issues signed invitation tokens embedded in guest links.
type InvitationTokenIssuer interface {
	Issue(guestID, weddingID string) (string, error)
}

// InvitationTokenVerifier verifies an invitation token. It returns ErrInvalidToken for any bad token.
type InvitationTokenVerifier interface {
	Verify(token string) (*InvitationClaims, error)
}

// InvitationService sends invitation links to guests.
type InvitationService interface {
	// SendInvitation issues a link for the guest, stores it on the guest and emails it when the guest has an email.
	// The returned bool reports whether an email was sent.
	SendInvitation(ctx context.Context, guestID string) (*Guest, bool, error)
}
