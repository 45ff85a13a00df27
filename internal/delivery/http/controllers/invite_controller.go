package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/delivery/http/middleware"
	"weddingplanner/internal/domain"
)

// InvitationView is everything the invitation page needs for one guest.
type InvitationView struct {
	Guest       *domain.Guest           `json:"guest"`
	Wedding     *domain.WeddingEvent    `json:"wedding"`
	Preferences *domain.GuestPreference `json:"preferences"`
}

type InvitationViewSuccessResponse struct {
	Data  InvitationView    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// InviteController serves the guest-facing invitation page. Every route requires an invitation token.
type InviteController struct {
	Logger    *slog.Logger
	Weddings  domain.WeddingService
	Guests    domain.GuestService
	Guestbook *GuestbookController
}

func NewInviteController(logger *slog.Logger, weddings domain.WeddingService, guests domain.GuestService, guestbook *GuestbookController) *InviteController {
	return &InviteController{Logger: logger, Weddings: weddings, Guests: guests, Guestbook: guestbook}
}

// invitedGuest loads the guest named by the token and checks it still belongs to the token's wedding.
func (c *InviteController) invitedGuest(ctx context.Context) (*domain.Guest, error) {
	claims, ok := middleware.InvitationFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	guest, err := c.Guests.GetGuest(ctx, claims.GuestID)
	if err != nil {
		return nil, err
	}
	if guest.WeddingID != claims.WeddingID {
		return nil, domain.ErrForbidden
	}
	return guest, nil
}

// Me godoc
// @Summary Get the invitation for the token holder
// @Tags invitation
// @Produce json
// @Security InvitationToken
// @Success 200 {object} controllers.InvitationViewSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (guest was removed)"
// @Router /invite/me [get]
func (c *InviteController) Me(w http.ResponseWriter, r *http.Request) {
	guest, err := c.invitedGuest(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	wedding, err := c.Weddings.GetWeddingEvent(r.Context(), guest.WeddingID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	pref, err := c.Guestbook.Service.GetGuestPreferences(r.Context(), guest.ID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, InvitationView{Guest: guest, Wedding: wedding, Preferences: pref})
}

// RSVP godoc
// @Summary Answer the invitation
// @Tags invitation
// @Accept json
// @Produce json
// @Security InvitationToken
// @Param rsvp body RSVPRequest true "confirmed, declined or pending"
// @Success 200 {object} controllers.GuestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /invite/rsvp [put]
func (c *InviteController) RSVP(w http.ResponseWriter, r *http.Request) {
	guest, err := c.invitedGuest(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	var req RSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	status, err := domain.ParseRSVPStatus(req.Status)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if err := c.Guests.TransitionRSVP(r.Context(), guest, status); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}

// AddMessage godoc
// @Summary Sign the guestbook
// @Tags invitation
// @Accept json
// @Produce json
// @Security InvitationToken
// @Param message body MessageRequest true "Message"
// @Success 201 {object} controllers.GuestMessageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /invite/messages [post]
func (c *InviteController) AddMessage(w http.ResponseWriter, r *http.Request) {
	guest, err := c.invitedGuest(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.Guestbook.addMessage(w, r, guest.ID)
}

// SavePreferences godoc
// @Summary Choose drinks
// @Tags invitation
// @Accept json
// @Produce json
// @Security InvitationToken
// @Param preferences body PreferencesRequest true "Drink choices"
// @Success 200 {object} controllers.GuestPreferenceSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /invite/preferences [put]
func (c *InviteController) SavePreferences(w http.ResponseWriter, r *http.Request) {
	guest, err := c.invitedGuest(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.Guestbook.savePreferences(w, r, guest.ID)
}
