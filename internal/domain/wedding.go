package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

// WeddingEventRow is the flat persisted shape of a wedding event: one field per column.
// Drink options are stored as serialized lists (see mapper.EncodeDrinkList).
type WeddingEventRow struct {
	ID        string `db:"id"`
	GroomName string `db:"groom_name"`
	BrideName string `db:"bride_name"`
	PhotoURL  string `db:"photo_url"`

	DateDay       string `db:"date_day"`
	DateMonth     string `db:"date_month"`
	DateYear      string `db:"date_year"`
	DateDayOfWeek string `db:"date_day_of_week"`
	DateTime      string `db:"date_time"`

	CeremonyTime     string `db:"ceremony_time"`
	CeremonyVenue    string `db:"ceremony_venue"`
	CeremonyAddress  string `db:"ceremony_address"`
	ReceptionTime    string `db:"reception_time"`
	ReceptionVenue   string `db:"reception_venue"`
	ReceptionAddress string `db:"reception_address"`

	WelcomeTitle    string `db:"welcome_title"`
	WelcomeSubtitle string `db:"welcome_subtitle"`
	WelcomeMessage  string `db:"welcome_message"`

	InvitationTitle   string `db:"invitation_title"`
	InvitationMessage string `db:"invitation_message"`
	InvitationClosing string `db:"invitation_closing"`

	ProgramTitle       string `db:"program_title"`
	ProgramDescription string `db:"program_description"`

	GuestbookTitle       string `db:"guestbook_title"`
	GuestbookDescription string `db:"guestbook_description"`
	GuestbookPlaceholder string `db:"guestbook_placeholder"`

	PreferencesTitle             string `db:"preferences_title"`
	PreferencesDescription       string `db:"preferences_description"`
	PreferencesAlcoholicLabel    string `db:"preferences_alcoholic_label"`
	PreferencesNonAlcoholicLabel string `db:"preferences_non_alcoholic_label"`

	CancellationTitle        string `db:"cancellation_title"`
	CancellationMessage      string `db:"cancellation_message"`
	CancellationConfirmLabel string `db:"cancellation_confirm_label"`

	AlcoholicDrinks    string `db:"alcoholic_drinks"`
	NonAlcoholicDrinks string `db:"non_alcoholic_drinks"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Couple holds the names and photo shown on the invitation.
type Couple struct {
	GroomName string `json:"groom_name" validate:"required"`
	BrideName string `json:"bride_name" validate:"required"`
	PhotoURL  string `json:"photo_url"`
}

// WeddingDate keeps the date as free-form display strings; no calendar semantics are implied.
type WeddingDate struct {
	Day       string `json:"day"`
	Month     string `json:"month"`
	Year      string `json:"year"`
	DayOfWeek string `json:"day_of_week"`
	Time      string `json:"time"`
}

// Venue is a ceremony or reception block.
type Venue struct {
	Time    string `json:"time"`
	Name    string `json:"venue"`
	Address string `json:"address"`
}

type WelcomeTexts struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Message  string `json:"message"`
}

type InvitationTexts struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Closing string `json:"closing"`
}

type ProgramTexts struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GuestbookTexts struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Placeholder string `json:"placeholder"`
}

type PreferencesTexts struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	AlcoholicLabel    string `json:"alcoholic_label"`
	NonAlcoholicLabel string `json:"non_alcoholic_label"`
}

type CancellationTexts struct {
	Title        string `json:"title"`
	Message      string `json:"message"`
	ConfirmLabel string `json:"confirm_label"`
}

// WeddingTexts groups the editable copy by invitation page section.
type WeddingTexts struct {
	Welcome      WelcomeTexts      `json:"welcome"`
	Invitation   InvitationTexts   `json:"invitation"`
	Program      ProgramTexts      `json:"program"`
	Guestbook    GuestbookTexts    `json:"guestbook"`
	Preferences  PreferencesTexts  `json:"preferences"`
	Cancellation CancellationTexts `json:"cancellation"`
}

// DrinkMenu lists the drink options guests can choose from, in display order.
type DrinkMenu struct {
	Alcoholic    []string `json:"alcoholic"`
	NonAlcoholic []string `json:"non_alcoholic"`
}

// WeddingEvent is the nested domain shape used by the editor.
// swagger:model WeddingEvent
type WeddingEvent struct {
	ID        string       `json:"id"`
	Couple    Couple       `json:"couple"`
	Date      WeddingDate  `json:"date"`
	Ceremony  Venue        `json:"ceremony"`
	Reception Venue        `json:"reception"`
	Texts     WeddingTexts `json:"texts"`
	Drinks    DrinkMenu    `json:"drinks"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// IsSaved reports whether the event has been persisted (has an identifier).
func (e *WeddingEvent) IsSaved() bool {
	return strings.TrimSpace(e.ID) != ""
}

// Validate checks the fields required to save an event. Drink options must be valid UTF-8
// because the stored lists are JSON and would otherwise not read back byte for byte.
func (e *WeddingEvent) Validate() error {
	e.Couple.GroomName = strings.TrimSpace(e.Couple.GroomName)
	e.Couple.BrideName = strings.TrimSpace(e.Couple.BrideName)
	if err := validateStruct(&e.Couple); err != nil {
		return err
	}
	if err := validDrinks("drinks.alcoholic", e.Drinks.Alcoholic); err != nil {
		return err
	}
	return validDrinks("drinks.non_alcoholic", e.Drinks.NonAlcoholic)
}

func validDrinks(field string, drinks []string) error {
	for i, d := range drinks {
		if !utf8.ValidString(d) {
			return Validationf("%s[%d] is not valid UTF-8", field, i)
		}
	}
	return nil
}

// WeddingEventRepository defines storage operations for wedding events (flat rows).
type WeddingEventRepository interface {
	// Create inserts the row and assigns ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, row *WeddingEventRow) error
	// Update overwrites every editable column of row.ID and refreshes UpdatedAt. Returns ErrNotFound when absent.
	Update(ctx context.Context, row *WeddingEventRow) error
	GetByID(ctx context.Context, id string) (*WeddingEventRow, error)
	// GetLatest returns the most recently updated event, or ErrNotFound when none exists.
	GetLatest(ctx context.Context) (*WeddingEventRow, error)
}

// WeddingService is the wedding-event half of the persistence gateway.
type WeddingService interface {
	GetWeddingEvent(ctx context.Context, id string) (*WeddingEvent, error)
	GetLatestWeddingEvent(ctx context.Context) (*WeddingEvent, error)
	// SaveWeddingEvent creates the event when it has no ID, otherwise updates it in place.
	// On success the event carries the persisted ID and timestamps.
	SaveWeddingEvent(ctx context.Context, event *WeddingEvent) error
}
