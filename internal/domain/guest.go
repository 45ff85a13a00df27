package domain

import (
	"context"
	"strings"
	"time"
)

// RSVPStatus is a guest's response to the invitation.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

// RSVPStatuses lists every valid status in display order.
var RSVPStatuses = []RSVPStatus{RSVPPending, RSVPConfirmed, RSVPDeclined}

// ParseRSVPStatus converts s (case-insensitive, surrounding spaces ignored) to an RSVPStatus.
// Anything outside the closed set is rejected with ErrValidation.
func ParseRSVPStatus(s string) (RSVPStatus, error) {
	switch RSVPStatus(strings.ToLower(strings.TrimSpace(s))) {
	case RSVPPending:
		return RSVPPending, nil
	case RSVPConfirmed:
		return RSVPConfirmed, nil
	case RSVPDeclined:
		return RSVPDeclined, nil
	}
	return "", Validationf("rsvp_status must be one of pending, confirmed, declined (got %q)", s)
}

// Valid reports whether s is one of the enumerated statuses.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPPending, RSVPConfirmed, RSVPDeclined:
		return true
	}
	return false
}

// CanTransitionTo reports whether a guest in status s may move to next.
// Guests may change their mind, so every valid pair is allowed, including s -> s.
func (s RSVPStatus) CanTransitionTo(next RSVPStatus) bool {
	return s.Valid() && next.Valid()
}

// Guest is one invitee belonging to exactly one wedding event.
// swagger:model Guest
type Guest struct {
	ID             string     `json:"id" db:"id" validate:"omitempty,uuid"`
	WeddingID      string     `json:"wedding_id" db:"wedding_id" validate:"required"`
	Name           string     `json:"name" db:"name" validate:"required"`
	Table          string     `json:"table_number" db:"table_number" validate:"required"`
	Email          string     `json:"email,omitempty" db:"email" validate:"omitempty,email"`
	Status         RSVPStatus `json:"rsvp_status" db:"rsvp_status"`
	InvitationLink string     `json:"invitation_link,omitempty" db:"invitation_link"`
	Sender         string     `json:"sender,omitempty" db:"sender"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// NewGuest returns a pending Guest for the given wedding. Leave ID empty to have the repository assign one.
func NewGuest(weddingID, name, table, email string) *Guest {
	return &Guest{
		WeddingID: weddingID,
		Name:      name,
		Table:     table,
		Email:     email,
		Status:    RSVPPending,
	}
}

// Normalize trims the organizer-editable text fields, lowercases the id and defaults an empty status to pending.
func (g *Guest) Normalize() {
	g.ID = strings.ToLower(strings.TrimSpace(g.ID))
	g.Name = strings.TrimSpace(g.Name)
	g.Table = strings.TrimSpace(g.Table)
	g.Email = strings.TrimSpace(g.Email)
	g.WeddingID = strings.TrimSpace(g.WeddingID)
	if g.Status == "" {
		g.Status = RSVPPending
	}
}

// Validate checks the create/update contract: owning wedding, name and table are mandatory
// and the status is one of the enumerated values.
func (g *Guest) Validate() error {
	if err := validateStruct(g); err != nil {
		return err
	}
	if !g.Status.Valid() {
		return Validationf("rsvp_status must be one of pending, confirmed, declined (got %q)", g.Status)
	}
	return nil
}

// guestFields are the organizer-editable fields, checked on update before the stored guest is loaded.
type guestFields struct {
	Name  string `validate:"required"`
	Table string `validate:"required"`
	Email string `validate:"omitempty,email"`
}

// ValidateFields checks name, table and email only. It needs no owning wedding or status.
func (g *Guest) ValidateFields() error {
	return validateStruct(&guestFields{Name: g.Name, Table: g.Table, Email: g.Email})
}

// GuestRepository defines storage operations for guests.
type GuestRepository interface {
	// Create inserts the guest and sets CreatedAt and UpdatedAt. A non-empty ID is kept,
	// otherwise one is assigned; an ID already in use fails with ErrValidation.
	Create(ctx context.Context, guest *Guest) error
	// Update writes the organizer-editable fields (name, table, email, invitation link, sender).
	// It never changes wedding_id or rsvp_status. Returns ErrNotFound when the id does not exist.
	Update(ctx context.Context, guest *Guest) error
	// UpdateStatus writes only the RSVP status and returns the new updated_at.
	UpdateStatus(ctx context.Context, id string, status RSVPStatus) (time.Time, error)
	GetByID(ctx context.Context, id string) (*Guest, error)
	ListByWeddingID(ctx context.Context, weddingID string) ([]*Guest, error)
	// Delete removes the guest with its messages and preference. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}

// GuestService is the guest half of the persistence gateway plus the RSVP lifecycle.
type GuestService interface {
	ListGuests(ctx context.Context, weddingID string) ([]*Guest, error)
	GetGuest(ctx context.Context, id string) (*Guest, error)
	AddGuest(ctx context.Context, guest *Guest) error
	UpdateGuest(ctx context.Context, guest *Guest) error
	DeleteGuest(ctx context.Context, id string) error
	// TransitionRSVP persists the new status and only then reflects it on guest.
	TransitionRSVP(ctx context.Context, guest *Guest, next RSVPStatus) error
	// RespondRSVP loads the guest by id and transitions it; used by self-service invitation links.
	RespondRSVP(ctx context.Context, guestID string, next RSVPStatus) (*Guest, error)
}
