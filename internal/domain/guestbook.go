package domain

import (
	"context"
	"time"
)

// GuestMessage is an append-only guestbook entry.
// swagger:model GuestMessage
type GuestMessage struct {
	ID        string    `json:"id" db:"id"`
	GuestID   string    `json:"guest_id" db:"guest_id" validate:"required"`
	Message   string    `json:"message" db:"message" validate:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewGuestMessage returns a message for guestID. ID and CreatedAt are set by the repository.
func NewGuestMessage(guestID, message string) *GuestMessage {
	return &GuestMessage{GuestID: guestID, Message: message}
}

// GuestPreference is a guest's drink choices. There is at most one per guest.
// swagger:model GuestPreference
type GuestPreference struct {
	ID           string    `json:"id" db:"id"`
	GuestID      string    `json:"guest_id" db:"guest_id"`
	Alcoholic    []string  `json:"alcoholic"`
	NonAlcoholic []string  `json:"non_alcoholic"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// NewGuestPreference copies the given lists so later caller mutation cannot leak into the record.
func NewGuestPreference(guestID string, alcoholic, nonAlcoholic []string) *GuestPreference {
	return &GuestPreference{
		GuestID:      guestID,
		Alcoholic:    append([]string{}, alcoholic...),
		NonAlcoholic: append([]string{}, nonAlcoholic...),
	}
}

// GuestMessageRepository defines storage operations for guestbook messages.
type GuestMessageRepository interface {
	// Create inserts the message and assigns ID and CreatedAt.
	Create(ctx context.Context, msg *GuestMessage) error
	// ListByGuestID returns the guest's messages in creation order.
	ListByGuestID(ctx context.Context, guestID string) ([]*GuestMessage, error)
}

// GuestPreferenceRepository defines storage operations for drink preferences.
type GuestPreferenceRepository interface {
	// Replace removes any existing preference of pref.GuestID and stores pref, assigning ID and CreatedAt.
	Replace(ctx context.Context, pref *GuestPreference) error
	// GetByGuestID returns ErrNotFound when the guest has no preference.
	GetByGuestID(ctx context.Context, guestID string) (*GuestPreference, error)
}

// GuestbookService is the message and preference half of the persistence gateway.
type GuestbookService interface {
	AddGuestMessage(ctx context.Context, guestID, text string) (*GuestMessage, error)
	ListGuestMessages(ctx context.Context, guestID string) ([]*GuestMessage, error)
	SaveGuestPreferences(ctx context.Context, guestID string, alcoholic, nonAlcoholic []string) (*GuestPreference, error)
	// GetGuestPreferences returns (nil, nil) when the guest has not saved preferences yet.
	GetGuestPreferences(ctx context.Context, guestID string) (*GuestPreference, error)
}
