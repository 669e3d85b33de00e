// Package fitness holds the helpers shared by the user scoped fitness resources.
package fitness

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fitadapt/internal/auth"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// DateLayout is the calendar date format used for every DATE column.
const DateLayout = "2006-01-02"

var ErrNotFound = errors.New("not found")

// Today formats now as a calendar date in now's location.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// UserID returns the verified user put in the request context by the auth middleware.
func UserID(r *http.Request) (uuid.UUID, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}

// PathID parses the {id} route variable.
func PathID(r *http.Request) (uuid.UUID, error) {
	raw, ok := mux.Vars(r)["id"]
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id [%s]", raw)
	}
	return id, nil
}

// DecodeJSON checks the content type and decodes the request body into v.
func DecodeJSON(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return errors.New("invalid content type")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("unmarshal json body: %w", err)
	}
	return nil
}
