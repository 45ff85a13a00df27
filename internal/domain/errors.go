package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error kinds returned by the gateway and lifecycle operations. Callers match them with errors.Is;
// every error returned by a service wraps exactly one of these when it is not a programming error.
var (
	// ErrValidation: a required field is missing/empty or a value is outside its closed set. Never reaches the store.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound: update/read target does not resolve to an existing record.
	ErrNotFound = errors.New("not found")
	// ErrReference: the foreign-key parent (wedding for a guest, guest for a message/preference) does not exist.
	ErrReference = errors.New("referenced record does not exist")
	// ErrTransientStore: the persistence transport failed (timeout, connectivity). Safe to retry.
	ErrTransientStore = errors.New("store temporarily unavailable")
	// ErrForbidden: the caller may not act on the target (e.g. invitation token for another guest).
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidToken: an invitation token is malformed, badly signed or expired.
	ErrInvalidToken = errors.New("invalid invitation token")
)

// Validationf returns an error wrapping ErrValidation with a formatted detail message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the validate tags on v and converts failures into an ErrValidation
// listing the offending fields by their json names.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	name := jsonFieldNames[fe.Field()]
	if name == "" {
		name = strings.ToLower(fe.Field())
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email"
	case "uuid":
		return name + " must be a UUID"
	case "oneof":
		return name + " must be one of " + fe.Param()
	default:
		return name + " is invalid"
	}
}

// jsonFieldNames maps struct field names used with validate tags to their wire names.
var jsonFieldNames = map[string]string{
	"ID":        "id",
	"WeddingID": "wedding_id",
	"Name":      "name",
	"Table":     "table_number",
	"Email":     "email",
	"Status":    "rsvp_status",
	"GroomName": "groom_name",
	"BrideName": "bride_name",
	"GuestID":   "guest_id",
	"Message":   "message",
}
