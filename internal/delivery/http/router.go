package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"weddingplanner/internal/delivery/http/controllers"
	"weddingplanner/internal/delivery/http/middleware"
	"weddingplanner/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Weddings  *controllers.WeddingController
	Guests    *controllers.GuestController
	Guestbook *controllers.GuestbookController
	Invite    *controllers.InviteController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(c Controllers, invitations domain.InvitationTokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	requireInvitation := middleware.RequireInvitation(invitations)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Wedding event
	mux.HandleFunc("GET /weddings/latest", c.Weddings.GetLatest)
	mux.HandleFunc("GET /weddings/{weddingID}", c.Weddings.GetByID)
	mux.HandleFunc("POST /weddings", c.Weddings.Save)

	// Guests
	mux.HandleFunc("GET /weddings/{weddingID}/guests", c.Guests.List)
	mux.HandleFunc("POST /weddings/{weddingID}/guests", c.Guests.Create)
	mux.HandleFunc("PUT /guests/{guestID}", c.Guests.Update)
	mux.HandleFunc("DELETE /guests/{guestID}", c.Guests.Delete)
	mux.HandleFunc("PUT /guests/{guestID}/rsvp", c.Guests.UpdateRSVP)
	mux.HandleFunc("POST /guests/{guestID}/invitation", c.Guests.SendInvitation)

	// Guestbook
	mux.HandleFunc("GET /guests/{guestID}/messages", c.Guestbook.ListMessages)
	mux.HandleFunc("POST /guests/{guestID}/messages", c.Guestbook.AddMessage)
	mux.HandleFunc("GET /guests/{guestID}/preferences", c.Guestbook.GetPreferences)
	mux.HandleFunc("PUT /guests/{guestID}/preferences", c.Guestbook.SavePreferences)

	// Invitation page (guest self-service)
	mux.HandleFunc("GET /invite/me", requireInvitation(c.Invite.Me))
	mux.HandleFunc("PUT /invite/rsvp", requireInvitation(c.Invite.RSVP))
	mux.HandleFunc("POST /invite/messages", requireInvitation(c.Invite.AddMessage))
	mux.HandleFunc("PUT /invite/preferences", requireInvitation(c.Invite.SavePreferences))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
