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

type guestbookService struct {
	messageRepo    domain.GuestMessageRepository
	preferenceRepo domain.GuestPreferenceRepository
	guestRepo      domain.GuestRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewGuestbookService(
	messageRepo domain.GuestMessageRepository,
	preferenceRepo domain.GuestPreferenceRepository,
	guestRepo domain.GuestRepository,
	logger *slog.Logger,
	timeout time.Duration,
) domain.GuestbookService {
	return &guestbookService{
		messageRepo:    messageRepo,
		preferenceRepo: preferenceRepo,
		guestRepo:      guestRepo,
		logger:         logger,
		contextTimeout: timeoutOrDefault(timeout),
	}
}

func (s *guestbookService) AddGuestMessage(ctx context.Context, guestID, text string) (*domain.GuestMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.Validationf("message is required")
	}
	if err := requireGuest(ctx, s.guestRepo, guestID); err != nil {
		return nil, err
	}
	msg := domain.NewGuestMessage(guestID, text)
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("add guest message: %w", err)
	}
	s.logger.InfoContext(ctx, "guest message added", "guest_id", guestID, "message_id", msg.ID)
	return msg, nil
}

func (s *guestbookService) ListGuestMessages(ctx context.Context, guestID string) ([]*domain.GuestMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	msgs, err := s.messageRepo.ListByGuestID(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("list guest messages: %w", err)
	}
	if msgs == nil {
		msgs = []*domain.GuestMessage{}
	}
	return msgs, nil
}

// SaveGuestPreferences replaces whatever the guest chose before; a guest never has two preference records.
func (s *guestbookService) SaveGuestPreferences(ctx context.Context, guestID string, alcoholic, nonAlcoholic []string) (*domain.GuestPreference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := requireGuest(ctx, s.guestRepo, guestID); err != nil {
		return nil, err
	}
	pref := domain.NewGuestPreference(guestID, alcoholic, nonAlcoholic)
	if err := s.preferenceRepo.Replace(ctx, pref); err != nil {
		return nil, fmt.Errorf("save guest preferences: %w", err)
	}
	return pref, nil
}

func (s *guestbookService) GetGuestPreferences(ctx context.Context, guestID string) (*domain.GuestPreference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	pref, err := s.preferenceRepo.GetByGuestID(ctx, guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get guest preferences: %w", err)
	}
	return pref, nil
}
