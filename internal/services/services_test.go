package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"weddingplanner/internal/domain"
	"weddingplanner/internal/repository/memory"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const testTimeout = time.Second

// failingGuestRepo wraps a real repository and fails the selected operations.
type failingGuestRepo struct {
	domain.GuestRepository
	updateStatusErr error
	updateErr       error
	statusWrites    int
}

func (f *failingGuestRepo) UpdateStatus(ctx context.Context, id string, status domain.RSVPStatus) (time.Time, error) {
	f.statusWrites++
	if f.updateStatusErr != nil {
		return time.Time{}, f.updateStatusErr
	}
	return f.GuestRepository.UpdateStatus(ctx, id, status)
}

func (f *failingGuestRepo) Update(ctx context.Context, g *domain.Guest) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	return f.GuestRepository.Update(ctx, g)
}

// unreachableGuests fails every call as if the database were down.
type unreachableGuests struct{ domain.GuestRepository }

func (unreachableGuests) GetByID(context.Context, string) (*domain.Guest, error) {
	return nil, domain.ErrTransientStore
}

func (unreachableGuests) Update(context.Context, *domain.Guest) error {
	return domain.ErrTransientStore
}

type fixture struct {
	store    *memory.Store
	weddings domain.WeddingService
	guests   domain.GuestService
	book     domain.GuestbookService
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:    store,
		weddings: NewWeddingService(store.WeddingEvents(), testLogger, testTimeout),
		guests:   NewGuestService(store.Guests(), store.WeddingEvents(), testLogger, testTimeout),
		book:     NewGuestbookService(store.GuestMessages(), store.GuestPreferences(), store.Guests(), testLogger, testTimeout),
	}
}

func (f *fixture) wedding(t *testing.T) *domain.WeddingEvent {
	t.Helper()
	event := &domain.WeddingEvent{Couple: domain.Couple{GroomName: "Tom", BrideName: "Ana"}}
	require.NoError(t, f.weddings.SaveWeddingEvent(context.Background(), event))
	return event
}

func (f *fixture) guest(t *testing.T, weddingID, name string) *domain.Guest {
	t.Helper()
	g := domain.NewGuest(weddingID, name, "T1", "")
	require.NoError(t, f.guests.AddGuest(context.Background(), g))
	return g
}
