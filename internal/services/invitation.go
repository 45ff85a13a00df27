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

const invitationTemplate = "invitation"

type invitationService struct {
	guestRepo      domain.GuestRepository
	weddingRepo    domain.WeddingEventRepository
	issuer         domain.InvitationTokenIssuer
	mailer         domain.Mailer
	renderer       domain.EmailTemplateRenderer
	baseURL        string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// InvitationConfig holds the collaborators of the invitation service.
type InvitationConfig struct {
	Guests   domain.GuestRepository
	Weddings domain.WeddingEventRepository
	Issuer   domain.InvitationTokenIssuer
	Mailer   domain.Mailer
	Renderer domain.EmailTemplateRenderer
	// BaseURL is the public origin of the invitation pages, e.g. https://example.com.
	BaseURL string
	Logger  *slog.Logger
	Timeout time.Duration
}

func NewInvitationService(cfg InvitationConfig) domain.InvitationService {
	return &invitationService{
		guestRepo:      cfg.Guests,
		weddingRepo:    cfg.Weddings,
		issuer:         cfg.Issuer,
		mailer:         cfg.Mailer,
		renderer:       cfg.Renderer,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		logger:         cfg.Logger,
		contextTimeout: timeoutOrDefault(cfg.Timeout),
	}
}

// SendInvitation stores a fresh invitation link on the guest and emails it using the "invitation" template.
// The link is stored even when the guest has no email; the caller can share it by other means.
func (s *invitationService) SendInvitation(ctx context.Context, guestID string) (*domain.Guest, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	guestID = strings.TrimSpace(guestID)
	if guestID == "" {
		return nil, false, domain.ErrNotFound
	}
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return nil, false, fmt.Errorf("get guest: %w", err)
	}
	row, err := s.weddingRepo.GetByID(ctx, guest.WeddingID)
	if err != nil {
		return nil, false, fmt.Errorf("get wedding event: %w", err)
	}
	event := mapper.WeddingEventToDomain(*row)

	token, err := s.issuer.Issue(guest.ID, guest.WeddingID)
	if err != nil {
		return nil, false, fmt.Errorf("issue invitation token: %w", err)
	}
	guest.InvitationLink = s.baseURL + "/invite/" + token
	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, false, fmt.Errorf("store invitation link: %w", err)
	}

	if guest.Email == "" {
		s.logger.InfoContext(ctx, "invitation link created without email", "guest_id", guest.ID)
		return guest, false, nil
	}

	data := &domain.InvitationEmailData{
		Email:     guest.Email,
		GuestName: guest.Name,
		Sender:    guest.Sender,
		GroomName: event.Couple.GroomName,
		BrideName: event.Couple.BrideName,
		Date:      event.Date,
		Ceremony:  event.Ceremony,
		Link:      guest.InvitationLink,
	}
	subject, htmlBody, textBody, err := s.renderer.Render(invitationTemplate, data)
	if err != nil {
		return guest, false, fmt.Errorf("render invitation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return guest, false, fmt.Errorf("send invitation email: %w", err)
	}
	s.logger.InfoContext(ctx, "invitation email sent", "guest_id", guest.ID)
	return guest, true, nil
}
