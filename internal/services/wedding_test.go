package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddingplanner/internal/domain"
)

func TestWeddingService_SaveCreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	event := &domain.WeddingEvent{
		Couple: domain.Couple{GroomName: "  Tom ", BrideName: "Ana"},
		Date:   domain.WeddingDate{Day: "12", Month: "June", Year: "2027"},
		Drinks: domain.DrinkMenu{Alcoholic: []string{"Wine", "Beer"}},
	}
	require.NoError(t, f.weddings.SaveWeddingEvent(ctx, event))
	require.True(t, event.IsSaved())
	require.Equal(t, "Tom", event.Couple.GroomName)
	id := event.ID

	event.Texts.Welcome.Title = "Welcome!"
	require.NoError(t, f.weddings.SaveWeddingEvent(ctx, event))
	require.Equal(t, id, event.ID)

	got, err := f.weddings.GetWeddingEvent(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Welcome!", got.Texts.Welcome.Title)
	assert.Equal(t, "June", got.Date.Month)
	assert.Equal(t, []string{"Wine", "Beer"}, got.Drinks.Alcoholic)
	assert.NotNil(t, got.Drinks.NonAlcoholic)
	assert.Empty(t, got.Drinks.NonAlcoholic)

	latest, err := f.weddings.GetLatestWeddingEvent(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, latest.ID)
}

func TestWeddingService_SaveErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		event   *domain.WeddingEvent
		wantErr error
	}{
		{"nil event", nil, domain.ErrValidation},
		{"missing bride", &domain.WeddingEvent{Couple: domain.Couple{GroomName: "Tom"}}, domain.ErrValidation},
		{"blank groom", &domain.WeddingEvent{Couple: domain.Couple{GroomName: "  ", BrideName: "Ana"}}, domain.ErrValidation},
		{"non-UTF-8 alcoholic drink", &domain.WeddingEvent{
			Couple: domain.Couple{GroomName: "Tom", BrideName: "Ana"},
			Drinks: domain.DrinkMenu{Alcoholic: []string{"Vinho\xff"}},
		}, domain.ErrValidation},
		{"non-UTF-8 soft drink", &domain.WeddingEvent{
			Couple: domain.Couple{GroomName: "Tom", BrideName: "Ana"},
			Drinks: domain.DrinkMenu{NonAlcoholic: []string{"Água", "Su\xc3co"}},
		}, domain.ErrValidation},
		{"unknown id", &domain.WeddingEvent{ID: "missing", Couple: domain.Couple{GroomName: "Tom", BrideName: "Ana"}}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			err := f.weddings.SaveWeddingEvent(ctx, tt.event)
			require.ErrorIs(t, err, tt.wantErr)
			_, latestErr := f.weddings.GetLatestWeddingEvent(ctx)
			require.ErrorIs(t, latestErr, domain.ErrNotFound, "nothing must be written")
		})
	}
}

func TestWeddingService_GetMissing(t *testing.T) {
	f := newFixture()
	_, err := f.weddings.GetWeddingEvent(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.weddings.GetWeddingEvent(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
