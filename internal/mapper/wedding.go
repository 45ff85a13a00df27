// Package mapper converts between persisted rows and the nested domain shapes used by the editor.
// All functions are pure and total.
package mapper

import "weddingplanner/internal/domain"

// WeddingEventToDomain reshapes a flat row into the nested event.
func WeddingEventToDomain(row domain.WeddingEventRow) domain.WeddingEvent {
	return domain.WeddingEvent{
		ID: row.ID,
		Couple: domain.Couple{
			GroomName: row.GroomName,
			BrideName: row.BrideName,
			PhotoURL:  row.PhotoURL,
		},
		Date: domain.WeddingDate{
			Day:       row.DateDay,
			Month:     row.DateMonth,
			Year:      row.DateYear,
			DayOfWeek: row.DateDayOfWeek,
			Time:      row.DateTime,
		},
		Ceremony: domain.Venue{
			Time:    row.CeremonyTime,
			Name:    row.CeremonyVenue,
			Address: row.CeremonyAddress,
		},
		Reception: domain.Venue{
			Time:    row.ReceptionTime,
			Name:    row.ReceptionVenue,
			Address: row.ReceptionAddress,
		},
		Texts: domain.WeddingTexts{
			Welcome: domain.WelcomeTexts{
				Title:    row.WelcomeTitle,
				Subtitle: row.WelcomeSubtitle,
				Message:  row.WelcomeMessage,
			},
			Invitation: domain.InvitationTexts{
				Title:   row.InvitationTitle,
				Message: row.InvitationMessage,
				Closing: row.InvitationClosing,
			},
			Program: domain.ProgramTexts{
				Title:       row.ProgramTitle,
				Description: row.ProgramDescription,
			},
			Guestbook: domain.GuestbookTexts{
				Title:       row.GuestbookTitle,
				Description: row.GuestbookDescription,
				Placeholder: row.GuestbookPlaceholder,
			},
			Preferences: domain.PreferencesTexts{
				Title:             row.PreferencesTitle,
				Description:       row.PreferencesDescription,
				AlcoholicLabel:    row.PreferencesAlcoholicLabel,
				NonAlcoholicLabel: row.PreferencesNonAlcoholicLabel,
			},
			Cancellation: domain.CancellationTexts{
				Title:        row.CancellationTitle,
				Message:      row.CancellationMessage,
				ConfirmLabel: row.CancellationConfirmLabel,
			},
		},
		Drinks: domain.DrinkMenu{
			Alcoholic:    DecodeDrinkList(row.AlcoholicDrinks),
			NonAlcoholic: DecodeDrinkList(row.NonAlcoholicDrinks),
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

// WeddingEventToRow flattens the event into its persisted row. It is the left inverse of
// WeddingEventToDomain. ID and timestamps are copied through; the repository owns their values.
func WeddingEventToRow(e domain.WeddingEvent) domain.WeddingEventRow {
	t := e.Texts
	return domain.WeddingEventRow{
		ID:        e.ID,
		GroomName: e.Couple.GroomName,
		BrideName: e.Couple.BrideName,
		PhotoURL:  e.Couple.PhotoURL,

		DateDay:       e.Date.Day,
		DateMonth:     e.Date.Month,
		DateYear:      e.Date.Year,
		DateDayOfWeek: e.Date.DayOfWeek,
		DateTime:      e.Date.Time,

		CeremonyTime:     e.Ceremony.Time,
		CeremonyVenue:    e.Ceremony.Name,
		CeremonyAddress:  e.Ceremony.Address,
		ReceptionTime:    e.Reception.Time,
		ReceptionVenue:   e.Reception.Name,
		ReceptionAddress: e.Reception.Address,

		WelcomeTitle:    t.Welcome.Title,
		WelcomeSubtitle: t.Welcome.Subtitle,
		WelcomeMessage:  t.Welcome.Message,

		InvitationTitle:   t.Invitation.Title,
		InvitationMessage: t.Invitation.Message,
		InvitationClosing: t.Invitation.Closing,

		ProgramTitle:       t.Program.Title,
		ProgramDescription: t.Program.Description,

		GuestbookTitle:       t.Guestbook.Title,
		GuestbookDescription: t.Guestbook.Description,
		GuestbookPlaceholder: t.Guestbook.Placeholder,

		PreferencesTitle:             t.Preferences.Title,
		PreferencesDescription:       t.Preferences.Description,
		PreferencesAlcoholicLabel:    t.Preferences.AlcoholicLabel,
		PreferencesNonAlcoholicLabel: t.Preferences.NonAlcoholicLabel,

		CancellationTitle:        t.Cancellation.Title,
		CancellationMessage:      t.Cancellation.Message,
		CancellationConfirmLabel: t.Cancellation.ConfirmLabel,

		AlcoholicDrinks:    EncodeDrinkList(e.Drinks.Alcoholic),
		NonAlcoholicDrinks: EncodeDrinkList(e.Drinks.NonAlcoholic),

		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
