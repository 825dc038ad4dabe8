package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/settleup/settleup/internal/api/dto"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an error envelope with the given status code.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, dto.NewAPIError(code, message))
}

// DecodeJSON decodes the request body into dst, rejecting unknown
// fields.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// errValidation marks boundary validation failures so handlers can map
// them to 400 responses.
var errValidation = errors.New("validation")

func validationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errValidation, fmt.Sprintf(format, args...))
}

// validateContributors enforces the data-entry contract the settlement
// engine itself does not check: non-empty names, case-insensitively
// unique names, and non-negative amounts. When requireTwo is set, fewer
// than two contributors is also rejected.
func validateContributors(contributors []dto.ContributorRequest, requireTwo bool) error {
	if requireTwo && len(contributors) < 2 {
		return validationErrorf("at least two contributors are required")
	}

	seen := make(map[string]bool, len(contributors))
	for _, c := range contributors {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return validationErrorf("contributor name must not be empty")
		}
		key := strings.ToLower(name)
		if seen[key] {
			return validationErrorf("duplicate contributor name %q", c.Name)
		}
		seen[key] = true

		if c.AmountPaid < 0 {
			return validationErrorf("amount paid for %q must not be negative", c.Name)
		}
	}
	return nil
}
