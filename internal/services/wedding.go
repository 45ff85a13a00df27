package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weddingplanner/internal/domain"
	"weddingplanner/internal/mapper"
)

const defaultContextTimeout = 5 * time.Second

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultContextTimeout
	}
	return d
}

type weddingService struct {
	weddingRepo    domain.WeddingEventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewWeddingService returns a WeddingService that stores events as flat rows through repo.
func NewWeddingService(repo domain.WeddingEventRepository, logger *slog.Logger, timeout time.Duration) domain.WeddingService {
	return &weddingService{
		weddingRepo:    repo,
		logger:         logger,
		contextTimeout: timeoutOrDefault(timeout),
	}
}

func (s *weddingService) GetWeddingEvent(ctx context.Context, id string) (*domain.WeddingEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrNotFound
	}
	row, err := s.weddingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get wedding event: %w", err)
	}
	event := mapper.WeddingEventToDomain(*row)
	return &event, nil
}

func (s *weddingService) GetLatestWeddingEvent(ctx context.Context) (*domain.WeddingEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	row, err := s.weddingRepo.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("get latest wedding event: %w", err)
	}
	event := mapper.WeddingEventToDomain(*row)
	return &event, nil
}

func (s *weddingService) SaveWeddingEvent(ctx context.Context, event *domain.WeddingEvent) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event == nil {
		return domain.Validationf("wedding event is required")
	}
	if err := event.Validate(); err != nil {
		return err
	}

	event.ID = strings.TrimSpace(event.ID)
	row := mapper.WeddingEventToRow(*event)
	if !event.IsSaved() {
		if err := s.weddingRepo.Create(ctx, &row); err != nil {
			return fmt.Errorf("create wedding event: %w", err)
		}
		s.logger.InfoContext(ctx, "wedding event created", "wedding_id", row.ID)
	} else {
		if err := s.weddingRepo.Update(ctx, &row); err != nil {
			return fmt.Errorf("update wedding event %s: %w", event.ID, err)
		}
		s.logger.InfoContext(ctx, "wedding event updated", "wedding_id", row.ID)
	}

	event.ID = row.ID
	event.CreatedAt = row.CreatedAt
	event.UpdatedAt = row.UpdatedAt
	return nil
}
