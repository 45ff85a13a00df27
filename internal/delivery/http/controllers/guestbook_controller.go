package controllers

import (
	"log/slog"
	"net/http"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"
)

type MessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// PreferencesRequest replaces the guest's drink choices. Omitted lists are stored empty.
type PreferencesRequest struct {
	Alcoholic    []string `json:"alcoholic" validate:"max=50"`
	NonAlcoholic []string `json:"non_alcoholic" validate:"max=50"`
}

type GuestMessagesSuccessResponse struct {
	Data  []*domain.GuestMessage `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type GuestMessageSuccessResponse struct {
	Data  *domain.GuestMessage `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// GuestPreferenceSuccessResponse carries the preference, or null data when none was saved yet.
type GuestPreferenceSuccessResponse struct {
	Data  *domain.GuestPreference `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type GuestbookController struct {
	Logger  *slog.Logger
	Service domain.GuestbookService
}

func NewGuestbookController(logger *slog.Logger, svc domain.GuestbookService) *GuestbookController {
	return &GuestbookController{Logger: logger, Service: svc}
}

// ListMessages godoc
// @Summary List a guest's guestbook messages
// @Tags guestbook
// @Produce json
// @Param guestID path string true "Guest ID (UUID)"
// @Success 200 {object} controllers.GuestMessagesSuccessResponse "oldest first"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /guests/{guestID}/messages [get]
func (c *GuestbookController) ListMessages(w http.ResponseWriter, r *http.Request) {
	guestID, ok := helpers.PathID(w, r, "guestID")
	if !ok {
		return
	}
	msgs, err := c.Service.ListGuestMessages(r.Context(), guestID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, msgs)
}

// AddMessage godoc
// @Summary Add a guestbook message for a guest
// @Tags guestbook
// @Accept json
// @Produce json
// @Param guestID path string true "Guest ID (UUID)"
// @Param message body MessageRequest true "Message"
// @Success 201 {object} controllers.GuestMessageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: reference_error (guest does not exist)"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /guests/{guestID}/messages [post]
func (c *GuestbookController) AddMessage(w http.ResponseWriter, r *http.Request) {
	guestID, ok := helpers.PathID(w, r, "guestID")
	if !ok {
		return
	}
	c.addMessage(w, r, guestID)
}

func (c *GuestbookController) addMessage(w http.ResponseWriter, r *http.Request, guestID string) {
	var req MessageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	msg, err := c.Service.AddGuestMessage(r.Context(), guestID, req.Message)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, msg)
}

// GetPreferences godoc
// @Summary Get a guest's drink preferences
// @Description data is null when the guest has not chosen yet.
// @Tags guestbook
// @Produce json
// @Param guestID path string true "Guest ID (UUID)"
// @Success 200 {object} controllers.GuestPreferenceSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /guests/{guestID}/preferences [get]
func (c *GuestbookController) GetPreferences(w http.ResponseWriter, r *http.Request) {
	guestID, ok := helpers.PathID(w, r, "guestID")
	if !ok {
		return
	}
	pref, err := c.Service.GetGuestPreferences(r.Context(), guestID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, pref)
}

// SavePreferences godoc
// @Summary Replace a guest's drink preferences
// @Tags guestbook
// @Accept json
// @Produce json
// @Param guestID path string true "Guest ID (UUID)"
// @Param preferences body PreferencesRequest true "Drink choices"
// @Success 200 {object} controllers.GuestPreferenceSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: reference_error (guest does not exist)"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /guests/{guestID}/preferences [put]
func (c *GuestbookController) SavePreferences(w http.ResponseWriter, r *http.Request) {
	guestID, ok := helpers.PathID(w, r, "guestID")
	if !ok {
		return
	}
	c.savePreferences(w, r, guestID)
}

func (c *GuestbookController) savePreferences(w http.ResponseWriter, r *http.Request, guestID string) {
	var req PreferencesRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	pref, err := c.Service.SaveGuestPreferences(r.Context(), guestID, req.Alcoholic, req.NonAlcoholic)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, pref)
}
