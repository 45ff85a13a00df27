package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingplanner/internal/domain"
)

func listGuests(t *testing.T, c *GuestController, weddingID, query string) (*httptest.ResponseRecorder, GuestListResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/weddings/"+weddingID+"/guests?"+query, nil)
	req.SetPathValue("weddingID", weddingID)
	rr := httptest.NewRecorder()
	c.List(rr, req)
	var res GuestListResponse
	if rr.Code == http.StatusOK {
		decodeData(t, rr, &res)
	}
	return rr, res
}

func names(guests []*domain.Guest) []string {
	out := make([]string, len(guests))
	for i, g := range guests {
		out[i] = g.Name
	}
	return out
}

func TestGuestController_List(t *testing.T) {
	env := newTestEnv()
	c := NewGuestController(testLogger, env.guests, nil)
	w := env.wedding(t)
	env.guest(t, w.ID, "Ana", "T1", domain.RSVPConfirmed)
	env.guest(t, w.ID, "Bo", "T2", domain.RSVPPending)
	env.guest(t, w.ID, "Cid", "T1", domain.RSVPDeclined)

	tests := []struct {
		name      string
		query     string
		wantNames []string
		wantTotal int
		wantPages int
	}{
		{"default sort by name", "", []string{"Ana", "Bo", "Cid"}, 3, 1},
		{"status filter", "status=confirmed", []string{"Ana"}, 1, 1},
		{"search table", "search=t1", []string{"Ana", "Cid"}, 2, 1},
		{"name descending", "sort=name&direction=desc", []string{"Cid", "Bo", "Ana"}, 3, 1},
		{"order_by", "order_by=name%20desc", []string{"Cid", "Bo", "Ana"}, 3, 1},
		{"page 2 of 2", "page=2&page_size=2", []string{"Cid"}, 3, 2},
		{"page past end", "page=3&page_size=2", []string{}, 3, 2},
		{"huge page number", "page=92233720368547760&page_size=100", []string{}, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, res := listGuests(t, c, w.ID, tt.query)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantNames, names(res.Guests))
			assert.Equal(t, tt.wantTotal, res.Pagination.Total)
			assert.Equal(t, tt.wantPages, res.Pagination.TotalPages)
			assert.Equal(t, 3, res.Counts.All)
			assert.Equal(t, 1, res.Counts.Confirmed)
			assert.Equal(t, 1, res.Counts.Pending)
			assert.Equal(t, 1, res.Counts.Declined)
		})
	}

	for _, bad := range []string{"status=maybe", "sort=age", "direction=up", "order_by=name%20desc,%20table"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			rr, _ := listGuests(t, c, w.ID, bad)
			require.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}

	t.Run("store unavailable", func(t *testing.T) {
		failing := NewGuestController(testLogger, unavailableGuests{env.guests}, nil)
		rr, _ := listGuests(t, failing, w.ID, "")
		require.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "store_unavailable", decodeErrorCode(t, rr))
	})
}

func TestGuestController_Create(t *testing.T) {
	env := newTestEnv()
	c := NewGuestController(testLogger, env.guests, nil)
	w := env.wedding(t)

	tests := []struct {
		name       string
		weddingID  string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"created", w.ID, `{"name":"Ana","table_number":"T1","email":"ana@example.com"}`, http.StatusCreated, ""},
		{"with status", w.ID, `{"name":"Bo","table_number":"T2","rsvp_status":"Confirmed"}`, http.StatusCreated, ""},
		{"missing table", w.ID, `{"name":"Ana"}`, http.StatusBadRequest, "bad_request"},
		{"blank name", w.ID, `{"name":"   ","table_number":"T1"}`, http.StatusBadRequest, "bad_request"},
		{"bad status", w.ID, `{"name":"Ana","table_number":"T1","rsvp_status":"maybe"}`, http.StatusBadRequest, "bad_request"},
		{"unknown wedding", uuid.NewString(), `{"name":"Ana","table_number":"T1"}`, http.StatusConflict, "reference_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jsonRequest(t, http.MethodPost, "/weddings/"+tt.weddingID+"/guests", tt.body)
			req.SetPathValue("weddingID", tt.weddingID)
			rr := httptest.NewRecorder()
			c.Create(rr, req)
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeErrorCode(t, rr))
				return
			}
			var g domain.Guest
			decodeData(t, rr, &g)
			assert.NotEmpty(t, g.ID)
			assert.Equal(t, tt.weddingID, g.WeddingID)
		})
	}
}

func TestGuestController_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	c := NewGuestController(testLogger, env.guests, nil)
	w := env.wedding(t)
	g := env.guest(t, w.ID, "Ana", "T1", domain.RSVPConfirmed)

	req := jsonRequest(t, http.MethodPut, "/guests/"+g.ID, `{"name":"Ana B","table_number":"T9"}`)
	req.SetPathValue("guestID", g.ID)
	rr := httptest.NewRecorder()
	c.Update(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var updated domain.Guest
	decodeData(t, rr, &updated)
	assert.Equal(t, "T9", updated.Table)
	assert.Equal(t, domain.RSVPConfirmed, updated.Status)

	missing := uuid.NewString()
	req = jsonRequest(t, http.MethodPut, "/guests/"+missing, `{"name":"x","table_number":"1"}`)
	req.SetPathValue("guestID", missing)
	rr = httptest.NewRecorder()
	c.Update(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)

	for i := 0; i < 2; i++ {
		req = httptest.NewRequest(http.MethodDelete, "/guests/"+g.ID, nil)
		req.SetPathValue("guestID", g.ID)
		rr = httptest.NewRecorder()
		c.Delete(rr, req)
		require.Equal(t, http.StatusNoContent, rr.Code)
	}
	_, err := env.guests.GetGuest(ctx, g.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGuestController_UpdateRSVP(t *testing.T) {
	env := newTestEnv()
	c := NewGuestController(testLogger, env.guests, nil)
	w := env.wedding(t)
	g := env.guest(t, w.ID, "Ana", "T1", domain.RSVPPending)

	tests := []struct {
		name       string
		controller *GuestController
		guestID    string
		body       string
		wantStatus int
		wantRSVP   domain.RSVPStatus
	}{
		{"confirm", c, g.ID, `{"rsvp_status":"confirmed"}`, http.StatusOK, domain.RSVPConfirmed},
		{"confirm again", c, g.ID, `{"rsvp_status":"CONFIRMED"}`, http.StatusOK, domain.RSVPConfirmed},
		{"decline", c, g.ID, `{"rsvp_status":"declined"}`, http.StatusOK, domain.RSVPDeclined},
		{"invalid", c, g.ID, `{"rsvp_status":"maybe"}`, http.StatusBadRequest, ""},
		{"missing", c, g.ID, `{}`, http.StatusBadRequest, ""},
		{"unknown guest", c, uuid.NewString(), `{"rsvp_status":"declined"}`, http.StatusNotFound, ""},
		{"store down", NewGuestController(testLogger, unavailableGuests{env.guests}, nil), g.ID, `{"rsvp_status":"pending"}`, http.StatusServiceUnavailable, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jsonRequest(t, http.MethodPut, "/guests/"+tt.guestID+"/rsvp", tt.body)
			req.SetPathValue("guestID", tt.guestID)
			rr := httptest.NewRecorder()
			tt.controller.UpdateRSVP(rr, req)
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantRSVP != "" {
				var got domain.Guest
				decodeData(t, rr, &got)
				assert.Equal(t, tt.wantRSVP, got.Status)
			}
		})
	}

	stored, err := env.guests.GetGuest(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RSVPDeclined, stored.Status, "failed calls must not change the stored status")
}

type fakeInvitations struct {
	sent bool
	err  error
}

func (f fakeInvitations) SendInvitation(_ context.Context, guestID string) (*domain.Guest, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	return &domain.Guest{ID: guestID, InvitationLink: "https://example.com/invite/tok"}, f.sent, nil
}

func TestGuestController_SendInvitation(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name       string
		svc        fakeInvitations
		wantStatus int
	}{
		{"emailed", fakeInvitations{sent: true}, http.StatusOK},
		{"link only", fakeInvitations{}, http.StatusOK},
		{"unknown guest", fakeInvitations{err: domain.ErrNotFound}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewGuestController(testLogger, nil, tt.svc)
			req := httptest.NewRequest(http.MethodPost, "/guests/"+id+"/invitation", nil)
			req.SetPathValue("guestID", id)
			rr := httptest.NewRecorder()
			c.SendInvitation(rr, req)
			require.Equal(t, tt.wantStatus, rr.Code)
			if rr.Code == http.StatusOK {
				var res InvitationResponse
				decodeData(t, rr, &res)
				assert.Equal(t, tt.svc.sent, res.EmailSent)
				assert.Equal(t, "https://example.com/invite/tok", res.Guest.InvitationLink)
			}
		})
	}
}
