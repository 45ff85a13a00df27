package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"weddingplanner/internal/delivery/http/helpers"
	"weddingplanner/internal/domain"
	"weddingplanner/internal/repository/memory"
	"weddingplanner/internal/services"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// testEnv wires real services over the memory store.
type testEnv struct {
	store    *memory.Store
	weddings domain.WeddingService
	guests   domain.GuestService
	book     domain.GuestbookService
}

func newTestEnv() *testEnv {
	store := memory.NewStore()
	return &testEnv{
		store:    store,
		weddings: services.NewWeddingService(store.WeddingEvents(), testLogger, time.Second),
		guests:   services.NewGuestService(store.Guests(), store.WeddingEvents(), testLogger, time.Second),
		book:     services.NewGuestbookService(store.GuestMessages(), store.GuestPreferences(), store.Guests(), testLogger, time.Second),
	}
}

func (e *testEnv) wedding(t *testing.T) *domain.WeddingEvent {
	t.Helper()
	event := &domain.WeddingEvent{Couple: domain.Couple{GroomName: "Tom", BrideName: "Mia"}}
	require.NoError(t, e.weddings.SaveWeddingEvent(context.Background(), event))
	return event
}

func (e *testEnv) guest(t *testing.T, weddingID, name, table string, status domain.RSVPStatus) *domain.Guest {
	t.Helper()
	g := domain.NewGuest(weddingID, name, table, "")
	g.Status = status
	require.NoError(t, e.guests.AddGuest(context.Background(), g))
	return g
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// decodeData decodes the envelope and unmarshals its data into dest.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	require.Nil(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

func decodeErrorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var env helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	require.NotNil(t, env.Error)
	return env.Error.Code
}

// unavailableGuests fails every read with a transient store error.
type unavailableGuests struct {
	domain.GuestService
}

func (unavailableGuests) ListGuests(context.Context, string) ([]*domain.Guest, error) {
	return nil, domain.ErrTransientStore
}

func (unavailableGuests) RespondRSVP(context.Context, string, domain.RSVPStatus) (*domain.Guest, error) {
	return nil, domain.ErrTransientStore
}
