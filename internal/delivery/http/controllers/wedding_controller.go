package controllers

import (
	"log/slog"
	"net/http"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"
)

// WeddingEventSuccessResponse is the success envelope for wedding event endpoints.
type WeddingEventSuccessResponse struct {
	Data  *domain.WeddingEvent `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type WeddingController struct {
	Logger  *slog.Logger
	Service domain.WeddingService
}

func NewWeddingController(logger *slog.Logger, svc domain.WeddingService) *WeddingController {
	return &WeddingController{Logger: logger, Service: svc}
}

// GetLatest godoc
// @Summary Get the current wedding event
// @Description Returns the most recently updated wedding event. Single-event deployments use this instead of an id.
// @Tags weddings
// @Produce json
// @Success 200 {object} controllers.WeddingEventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /weddings/latest [get]
func (c *WeddingController) GetLatest(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetLatestWeddingEvent(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetByID godoc
// @Summary Get a wedding event
// @Tags weddings
// @Produce json
// @Param weddingID path string true "Wedding event ID (UUID)"
// @Success 200 {object} controllers.WeddingEventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /weddings/{weddingID} [get]
func (c *WeddingController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "weddingID")
	if !ok {
		return
	}
	event, err := c.Service.GetWeddingEvent(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Save godoc
// @Summary Create or update the wedding event
// @Description Without an id the event is created (201). With an id the event is updated in place (200).
// @Description Groom and bride names are required. Timestamps are assigned by the server.
// @Tags weddings
// @Accept json
// @Produce json
// @Param event body domain.WeddingEvent true "Wedding event"
// @Success 200 {object} controllers.WeddingEventSuccessResponse "updated"
// @Success 201 {object} controllers.WeddingEventSuccessResponse "created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: store_unavailable"
// @Router /weddings [post]
func (c *WeddingController) Save(w http.ResponseWriter, r *http.Request) {
	var event domain.WeddingEvent
	if !helpers.DecodeAndValidate(w, r, &event) {
		return
	}
	creating := !event.IsSaved()
	if err := c.Service.SaveWeddingEvent(r.Context(), &event); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	status := http.StatusOK
	if creating {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, &event)
}
