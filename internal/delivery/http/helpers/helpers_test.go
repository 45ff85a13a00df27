package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingplanner/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var body APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domain.Validationf("name is required"), http.StatusBadRequest, ErrCodeBadRequest},
		{"not found", fmt.Errorf("get guest: %w", domain.ErrNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"reference", fmt.Errorf("%w: wedding x", domain.ErrReference), http.StatusConflict, ErrCodeReference},
		{"transient", fmt.Errorf("list guests: %w", domain.ErrTransientStore), http.StatusServiceUnavailable, ErrCodeStoreUnavailable},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, ErrCodeUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, ErrCodeForbidden},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			WriteServiceError(rr, req, testLogger, tt.err)

			require.Equal(t, tt.wantStatus, rr.Code)
			body := decodeEnvelope(t, rr)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Nil(t, body.Data)
		})
	}
}

func TestWriteServiceError_HidesInternalDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteServiceError(rr, httptest.NewRequest(http.MethodGet, "/x", nil), testLogger, errors.New("pq: password authentication failed"))
	assert.NotContains(t, rr.Body.String(), "password")
}

type sampleRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Status string `json:"rsvp_status" validate:"omitempty,oneof=pending confirmed declined"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantOK   bool
		wantText string
	}{
		{"valid", `{"name":"Ana","email":"ana@example.com"}`, true, ""},
		{"missing name", `{"email":"ana@example.com"}`, false, "name is required"},
		{"bad email", `{"name":"Ana","email":"nope"}`, false, "email must be a valid email"},
		{"bad status", `{"name":"Ana","rsvp_status":"maybe"}`, false, "rsvp_status must be one of pending confirmed declined"},
		{"unknown field", `{"name":"Ana","age":3}`, false, "unknown field"},
		{"malformed", `{"name":`, false, "invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(tt.body))
			var dest sampleRequest

			ok := DecodeAndValidate(rr, req, &dest)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				return
			}
			require.Equal(t, http.StatusBadRequest, rr.Code)
			body := decodeEnvelope(t, rr)
			assert.Contains(t, body.Error.Message, tt.wantText)
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query    string
		wantPage int
		wantSize int
	}{
		{"", DefaultPage, DefaultPageSize},
		{"page=3&page_size=5", 3, 5},
		{"page=0&page_size=-1", DefaultPage, DefaultPageSize},
		{"page=abc", DefaultPage, DefaultPageSize},
		{"page_size=1000", DefaultPage, MaxPageSize},
		{"page=92233720368547760&page_size=100", MaxPage, 100},
		{"page=99999999999999999999999", DefaultPage, DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x?"+tt.query, nil)
			p := ParsePagination(req)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.PageSize)
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(domain.PaginationParams{Page: 2, PageSize: 2}, 3)
	assert.Equal(t, PaginationMeta{Page: 2, PageSize: 2, Total: 3, TotalPages: 2}, meta)
}

func TestPathID(t *testing.T) {
	mux := http.NewServeMux()
	var got string
	mux.HandleFunc("GET /guests/{guestID}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(w, r, "guestID")
		if !ok {
			return
		}
		got = id
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/guests/6F9619FF-8B86-D011-B42D-00C04FC964FF", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", got)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/guests/not-a-uuid", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
