// Package memory provides in-process implementations of the repository interfaces.
// They follow the same contracts as the Postgres repositories, including foreign-key
// checks and cascading guest deletes, and are used for local runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"weddingplanner/internal/domain"
)

// Store holds every table behind a single lock.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	events      map[string]domain.WeddingEventRow
	guests      map[string]domain.Guest
	guestOrder  []string
	messages    []domain.GuestMessage
	preferences map[string]domain.GuestPreference
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		now:         func() time.Time { return time.Now().UTC() },
		events:      make(map[string]domain.WeddingEventRow),
		guests:      make(map[string]domain.Guest),
		preferences: make(map[string]domain.GuestPreference),
	}
}

func (s *Store) WeddingEvents() domain.WeddingEventRepository { return weddingEventRepository{s} }

func (s *Store) Guests() domain.GuestRepository { return guestRepository{s} }

func (s *Store) GuestMessages() domain.GuestMessageRepository { return guestMessageRepository{s} }

func (s *Store) GuestPreferences() domain.GuestPreferenceRepository {
	return guestPreferenceRepository{s}
}

type weddingEventRepository struct{ s *Store }

func (r weddingEventRepository) Create(ctx context.Context, row *domain.WeddingEventRow) error {
	if err := ctx.Err(); err != nil {
		return transient(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	row.ID = uuid.NewString()
	row.CreatedAt = now
	row.UpdatedAt = now
	r.s.events[row.ID] = *row
	return nil
}

func (r weddingEventRepository) Update(ctx context.Context, row *domain.WeddingEventRow) error {
	if err := ctx.Err(); err != nil {
		return transient(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.events[row.ID]
	if !ok {
		return domain.ErrNotFound
	}
	row.CreatedAt = existing.CreatedAt
	row.UpdatedAt = r.s.now()
	r.s.events[row.ID] = *row
	return nil
}

func (r weddingEventRepository) GetByID(ctx context.Context, id string) (*domain.WeddingEventRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, transient(err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

func (r weddingEventRepository) GetLatest(ctx context.Context) (*domain.WeddingEventRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, transient(err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var latest *domain.WeddingEventRow
	for _, row := range r.s.events {
		if latest == nil || row.UpdatedAt.After(latest.UpdatedAt) ||
			(row.UpdatedAt.Equal(latest.UpdatedAt) && row.ID < latest.ID) {
			latest = &row
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return latest, nil
}

type guestRepository struct{ s *Store }

func (r guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	if err := ctx.Err(); err != nil {
		return transient(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[g.WeddingID]; !ok {
		return domain.ErrReference
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	} else if _, taken := r.s.guests[g.ID]; taken {
		return domain.Validationf("guest id %s is already in use", g.ID)
	}
	now := r.s.now()
	g.CreatedAt = now
	g.UpdatedAt = now
	r.s.guests[g.ID] = *g
	r.s.guestOrder = append(r.s.guestOrder, g.ID)
	return nil
}

func (r guestRepository) Update(ctx context.Context, g *domain.Guest) error {
	if err := ctx.Err(); err != nil {
		return transient(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.guests[g.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Name = g.Name
	existing.Table = g.Table
	existing.Email = g.Email
	existing.InvitationLink = g.InvitationLink
	existing.Sender = g.Sender
	existing.UpdatedAt = r.s.now()
	r.s.guests[g.ID] = existing
	*g = existing
	return nil
}

func (r guestRepository) UpdateStatus(ctx context.Context, id string, status domain.RSVPStatus) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, transient(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.guests[id]
	if !ok {
		return time.Time{}, domain.ErrNotFound
	}
	existing.Status = status
	existing.UpdatedAt = r.s.now()
	r.s.guests[id] = existing
	return existing.UpdatedAt, nil
}

func (r guestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, transient(err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g, ok := r.s.guests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &g, nil
}

func (r guestRepository) ListByWeddingID(ctx context.Context, weddingID string) ([]*domain.Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, transient(err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.Guest, 0)
	for _, id := range r.s.guestOrder {
		g := r.s.guests[id]
		if g.WeddingID == weddingID {
			out = append(out, &g)
		}
	}
	return out, nil
}

func (r guestRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return transient(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.messages = slices.DeleteFunc(r.s.messages, func(m domain.GuestMessage) bool { return m.GuestID == id })
	delete(r.s.preferences, id)
	delete(r.s.guests, id)
	r.s.guestOrder = slices.DeleteFunc(r.s.guestOrder, func(gid string) bool { return gid == id })
	return nil
}

type guestMessageRepository struct{ s *Store }

func (r guestMessageRepository) Create(ctx context.Context, msg *domain.GuestMessage) error {
	if err := ctx.Err(); err != nil {
		return transient(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.guests[msg.GuestID]; !ok {
		return domain.ErrReference
	}
	msg.ID = uuid.NewString()
	msg.CreatedAt = r.s.now()
	r.s.messages = append(r.s.messages, *msg)
	return nil
}

func (r guestMessageRepository) ListByGuestID(ctx context.Context, guestID string) ([]*domain.GuestMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, transient(err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.GuestMessage, 0)
	for _, m := range r.s.messages {
		if m.GuestID == guestID {
			out = append(out, &m)
		}
	}
	return out, nil
}

type guestPreferenceRepository struct{ s *Store }

func (r guestPreferenceRepository) Replace(ctx context.Context, pref *domain.GuestPreference) error {
	if err := ctx.Err(); err != nil {
		return transient(err)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.guests[pref.GuestID]; !ok {
		return domain.ErrReference
	}
	pref.ID = uuid.NewString()
	pref.CreatedAt = r.s.now()
	pref.Alcoholic = slices.Clone(nonNil(pref.Alcoholic))
	pref.NonAlcoholic = slices.Clone(nonNil(pref.NonAlcoholic))
	r.s.preferences[pref.GuestID] = clonePreference(*pref)
	return nil
}

func (r guestPreferenceRepository) GetByGuestID(ctx context.Context, guestID string) (*domain.GuestPreference, error) {
	if err := ctx.Err(); err != nil {
		return nil, transient(err)
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.preferences[guestID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p = clonePreference(p)
	return &p, nil
}

func clonePreference(p domain.GuestPreference) domain.GuestPreference {
	p.Alcoholic = slices.Clone(nonNil(p.Alcoholic))
	p.NonAlcoholic = slices.Clone(nonNil(p.NonAlcoholic))
	return p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
