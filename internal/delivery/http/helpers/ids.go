package helpers

import (
	"net/http"

	"github.com/google/uuid"
)

// PathID returns the named path value when it is a UUID. Otherwise it writes a 400 and returns false.
func PathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := r.PathValue(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid "+name)
		return "", false
	}
	return id.String(), true
}
