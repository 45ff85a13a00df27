package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDrinkList(t *testing.T) {
	tests := []struct {
		name   string
		drinks []string
		want   string
	}{
		{"nil", nil, "[]"},
		{"empty", []string{}, "[]"},
		{"keeps order", []string{"Wine", "Beer", "Gin"}, `["Wine","Beer","Gin"]`},
		{"keeps whitespace and duplicates", []string{" Wine ", "Wine", "Wine"}, `[" Wine ","Wine","Wine"]`},
		{"no html escaping", []string{"Gin & Tonic", "<Rosé>"}, `["Gin & Tonic","<Rosé>"]`},
		{"quotes", []string{`"Special" punch`}, `["\"Special\" punch"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeDrinkList(tt.drinks))
		})
	}
}

func TestDecodeDrinkList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty column", "", []string{}},
		{"empty array", "[]", []string{}},
		{"null", "null", []string{}},
		{"malformed", "Wine, Beer", []string{}},
		{"wrong element type", "[1,2]", []string{}},
		{"values", `["Wine","Beer"]`, []string{"Wine", "Beer"}},
		{"spaced json", `[ "Wine" , "Beer" ]`, []string{"Wine", "Beer"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeDrinkList(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDrinkList_Lossless(t *testing.T) {
	lists := [][]string{
		{"Champagne", "champagne", "  Prosecco", "Cider\t"},
		{"Água com gás", "Ginger ale", ""},
		{"z", "a", "m"},
		{"Caipirinha 🍋", "Saké", `Gin & "Tonic" <house>`, "Tab\\Slash"},
	}
	for _, l := range lists {
		assert.Equal(t, l, DecodeDrinkList(EncodeDrinkList(l)))
	}
}

func TestDrinkList_InvalidUTF8IsNotPreserved(t *testing.T) {
	// Callers must validate with WeddingEvent.Validate before encoding.
	got := DecodeDrinkList(EncodeDrinkList([]string{"Vinho\xff"}))
	assert.Equal(t, []string{"Vinho\uFFFD"}, got)
}
