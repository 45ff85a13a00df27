package controllers

import (
	"log/slog"
	"net/http"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"
	"weddingplanner/internal/guestquery"
)

// GuestRequest is the body for creating or editing a guest. RSVP status is only set on create;
// later changes go through PUT /guests/{guestID}/rsvp.
type GuestRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	TableNumber string `json:"table_number" validate:"required,max=50"`
	Email       string `json:"email" validate:"omitempty,email"`
	Sender      string `json:"sender" validate:"max=200"`
	RSVPStatus  string `json:"rsvp_status"`
}

// RSVPRequest is the body for an RSVP transition. The status is matched case-insensitively.
type RSVPRequest struct {
	Status string `json:"rsvp_status" validate:"required"`
}

// GuestListResponse is one page of the guest list with the dashboard totals.
type GuestListResponse struct {
	Guests     []*domain.Guest        `json:"guests"`
	Counts     guestquery.Counts      `json:"counts"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

type GuestListSuccessResponse struct {
	Data  GuestListResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type GuestSuccessResponse struct {
	Data  *domain.Guest     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// InvitationResponse reports the stored link and whether it was emailed.
type InvitationResponse struct {
	Guest     *domain.Guest `json:"guest"`
	EmailSent bool          `json:"email_sent"`
}

type InvitationSuccessResponse struct {
	Data  InvitationResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type GuestController struct {
	Logger      *slog.Logger
	Service     domain.GuestService
	Invitations domain.InvitationService
}

func NewGuestController(logger *slog.Logger, svc domain.GuestService, invitations domain.InvitationService) *GuestController {
	return &GuestController{Logger: logger, Service: svc, Invitations: invitations}
}

// parseGuestQuery reads search, status, sort and pagination parameters.
// order_by ("name desc") takes precedence over sort and direction.
func parseGuestQuery(r *http.Request) (guestquery.Query, error) {
	values := r.URL.Query()
	status, err := guestquery.ParseStatusFilter(values.Get("status"))
	if err != nil {
		return guestquery.Query{}, err
	}
	var (
		key guestquery.SortKey
		dir guestquery.Direction
	)
	if orderBy := values.Get("order_by"); orderBy != "" {
		key, dir, err = guestquery.ParseOrderBy(orderBy)
		if err != nil {
			return guestquery.Query{}, err
		}
	} else {
		if key, err = guestquery.ParseSortKey(values.Get("sort")); err != nil {
			return guestquery.Query{}, err
		}
		if dir, err = guestquery.ParseDirection(values.Get("direction")); err != nil {
			return guestquery.Query{}, err
		}
	}
	return guestquery.Query{
		Search:           values.Get("search"),
		Status:           status,
		SortKey:          key,
		Direction:        dir,
		PaginationParams: helpers.ParsePagination(r),
	}, nil
}

// List godoc
// @Summary List guests of a wedding
// @Description Case-insensitive search over name, email and table; status filter; stable sort; 1-based pages.
// @Description Counts are per status over all guests of the wedding, regardless of filters.
// @Tags guests
// @Produce json
// @Param weddingID path string true "Wedding event ID (UUID)"
// @Param search query string false "Search term"
// @Param status query string false "all, pending, confirmed or declined"
// @Param sort query string false "name, table, status or email"
// @Param direction query string false "asc or desc"
// @Param order_by query string false "AIP-132 ordering, e.g. \"name desc\"; overrides sort and direction"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} controllers.GuestListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /weddings/{weddingID}/guests [get]
func (c *GuestController) List(w http.ResponseWriter, r *http.Request) {
	weddingID, ok := helpers.PathID(w, r, "weddingID")
	if !ok {
		return
	}
	q, err := parseGuestQuery(r)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	guests, err := c.Service.ListGuests(r.Context(), weddingID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	res := guestquery.Run(guests, q)
	helpers.WriteJSONSuccess(w, http.StatusOK, GuestListResponse{
		Guests:     res.Guests,
		Counts:     res.Counts,
		Pagination: helpers.NewPaginationMeta(q.PaginationParams, res.Total),
	})
}

// Create godoc
// @Summary Add a guest
// @Tags guests
// @Accept json
// @Produce json
// @Param weddingID path string true "Wedding event ID (UUID)"
// @Param guest body GuestRequest true "Guest"
// @Success 201 {object} controllers.GuestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: reference_error (wedding does not exist)"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /weddings/{weddingID}/guests [post]
func (c *GuestController) Create(w http.ResponseWriter, r *http.Request) {
	weddingID, ok := helpers.PathID(w, r, "weddingID")
	if !ok {
		return
	}
	var req GuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	guest := domain.NewGuest(weddingID, req.Name, req.TableNumber, req.Email)
	guest.Sender = req.Sender
	if req.RSVPStatus != "" {
		status, err := domain.ParseRSVPStatus(req.RSVPStatus)
		if err != nil {
			helpers.WriteServiceError(w, r, c.Logger, err)
			return
		}
		guest.Status = status
	}
	if err := c.Service.AddGuest(r.Context(), guest); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, guest)
}

// Update godoc
// @Summary Edit a guest
// @Description Updates name, table, email and sender. The RSVP status is not changed here.
// @Tags guests
// @Accept json
// @Produce json
// @Param guestID path string true "Guest ID (UUID)"
// @Param guest body GuestRequest true "Guest"
// @Success 200 {object} controllers.GuestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /guests/{guestID} [put]
func (c *GuestController) Update(w http.ResponseWriter, r *http.Request) {
	guestID, ok := helpers.PathID(w, r, "guestID")
	if !ok {
		return
	}
	var req GuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	guest := &domain.Guest{
		ID:     guestID,
		Name:   req.Name,
		Table:  req.TableNumber,
		Email:  req.Email,
		Sender: req.Sender,
	}
	if err := c.Service.UpdateGuest(r.Context(), guest); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}

// Delete godoc
// @Summary Delete a guest
// @Description Removes the guest with its messages and preferences. Deleting a missing guest also returns 204.
// @Tags guests
// @Param guestID path string true "Guest ID (UUID)"
// @Success 204 "deleted"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /guests/{guestID} [delete]
func (c *GuestController) Delete(w http.ResponseWriter, r *http.Request) {
	guestID, ok := helpers.PathID(w, r, "guestID")
	if !ok {
		return
	}
	if err := c.Service.DeleteGuest(r.Context(), guestID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateRSVP godoc
// @Summary Change a guest's RSVP status
// @Description Any status may move to any other. On 503 the status was not changed and the call can be retried.
// @Tags guests
// @Accept json
// @Produce json
// @Param guestID path string true "Guest ID (UUID)"
// @Param rsvp body RSVPRequest true "New status"
// @Success 200 {object} controllers.GuestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /guests/{guestID}/rsvp [put]
func (c *GuestController) UpdateRSVP(w http.ResponseWriter, r *http.Request) {
	guestID, ok := helpers.PathID(w, r, "guestID")
	if !ok {
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
	guest, err := c.Service.RespondRSVP(r.Context(), guestID, status)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guest)
}

// SendInvitation godoc
// @Summary Send a guest their invitation link
// @Description Issues a new invitation link, stores it on the guest and emails it when the guest has an email.
// @Tags guests
// @Produce json
// @Param guestID path string true "Guest ID (UUID)"
// @Success 200 {object} controllers.InvitationSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /guests/{guestID}/invitation [post]
func (c *GuestController) SendInvitation(w http.ResponseWriter, r *http.Request) {
	guestID, ok := helpers.PathID(w, r, "guestID")
	if !ok {
		return
	}
	guest, sent, err := c.Invitations.SendInvitation(r.Context(), guestID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, InvitationResponse{Guest: guest, EmailSent: sent})
}
