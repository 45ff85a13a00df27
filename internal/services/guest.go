package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weddingplanner/internal/domain"
)

type guestService struct {
	guestRepo      domain.GuestRepository
	weddingRepo    domain.WeddingEventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewGuestService returns a GuestService. Guests are only written after their wedding resolves.
func NewGuestService(guestRepo domain.GuestRepository, weddingRepo domain.WeddingEventRepository, logger *slog.Logger, timeout time.Duration) domain.GuestService {
	return &guestService{
		guestRepo:      guestRepo,
		weddingRepo:    weddingRepo,
		logger:         logger,
		contextTimeout: timeoutOrDefault(timeout),
	}
}

func (s *guestService) ListGuests(ctx context.Context, weddingID string) ([]*domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	guests, err := s.guestRepo.ListByWeddingID(ctx, strings.TrimSpace(weddingID))
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	if guests == nil {
		guests = []*domain.Guest{}
	}
	return guests, nil
}

func (s *guestService) GetGuest(ctx context.Context, id string) (*domain.Guest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrNotFound
	}
	g, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}
	return g, nil
}

func (s *guestService) AddGuest(ctx context.Context, guest *domain.Guest) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if guest == nil {
		return domain.Validationf("guest is required")
	}
	guest.Normalize()
	if err := guest.Validate(); err != nil {
		return err
	}
	if err := s.requireWedding(ctx, guest.WeddingID); err != nil {
		return err
	}
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return fmt.Errorf("add guest: %w", err)
	}
	s.logger.InfoContext(ctx, "guest added", "guest_id", guest.ID, "wedding_id", guest.WeddingID)
	return nil
}

// UpdateGuest writes organizer edits. The owning wedding and the RSVP status are kept from the stored guest.
// Name, table and email are checked before the stored guest is read.
func (s *guestService) UpdateGuest(ctx context.Context, guest *domain.Guest) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if guest == nil {
		return domain.Validationf("guest is required")
	}
	guest.Normalize()
	if err := guest.ValidateFields(); err != nil {
		return err
	}
	if guest.ID == "" {
		return domain.ErrNotFound
	}
	existing, err := s.guestRepo.GetByID(ctx, guest.ID)
	if err != nil {
		return fmt.Errorf("get guest: %w", err)
	}

	if guest.WeddingID == "" {
		guest.WeddingID = existing.WeddingID
	} else if guest.WeddingID != existing.WeddingID {
		return domain.Validationf("wedding_id cannot be changed")
	}
	guest.Status = existing.Status
	if guest.InvitationLink == "" {
		guest.InvitationLink = existing.InvitationLink
	}
	if err := guest.Validate(); err != nil {
		return err
	}

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return fmt.Errorf("update guest: %w", err)
	}
	return nil
}

func (s *guestService) DeleteGuest(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if err := s.guestRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}
	s.logger.InfoContext(ctx, "guest deleted", "guest_id", id)
	return nil
}

// TransitionRSVP writes the status first and reflects it on guest only after the write succeeded.
// On failure guest is left exactly as it was.
func (s *guestService) TransitionRSVP(ctx context.Context, guest *domain.Guest, next domain.RSVPStatus) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if guest == nil || strings.TrimSpace(guest.ID) == "" {
		return domain.ErrNotFound
	}
	if !next.Valid() {
		return domain.Validationf("rsvp_status must be one of pending, confirmed, declined (got %q)", next)
	}
	current := guest.Status
	if current == "" {
		current = domain.RSVPPending
	}
	if !current.CanTransitionTo(next) {
		return domain.Validationf("cannot move rsvp from %s to %s", current, next)
	}

	updatedAt, err := s.guestRepo.UpdateStatus(ctx, guest.ID, next)
	if err != nil {
		s.logger.WarnContext(ctx, "rsvp transition failed", "guest_id", guest.ID, "to", next, "error", err)
		return fmt.Errorf("update rsvp status: %w", err)
	}
	guest.Status = next
	guest.UpdatedAt = updatedAt
	s.logger.InfoContext(ctx, "rsvp updated", "guest_id", guest.ID, "from", current, "to", next)
	return nil
}

func (s *guestService) RespondRSVP(ctx context.Context, guestID string, next domain.RSVPStatus) (*domain.Guest, error) {
	guest, err := s.GetGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if err := s.TransitionRSVP(ctx, guest, next); err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *guestService) requireWedding(ctx context.Context, weddingID string) error {
	if _, err := s.weddingRepo.GetByID(ctx, weddingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: wedding %s", domain.ErrReference, weddingID)
		}
		return fmt.Errorf("get wedding event: %w", err)
	}
	return nil
}

// requireGuest resolves the parent guest of a message or preference.
func requireGuest(ctx context.Context, repo domain.GuestRepository, guestID string) error {
	if strings.TrimSpace(guestID) == "" {
		return fmt.Errorf("%w: guest id is empty", domain.ErrReference)
	}
	if _, err := repo.GetByID(ctx, guestID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: guest %s", domain.ErrReference, guestID)
		}
		return fmt.Errorf("get guest: %w", err)
	}
	return nil
}
