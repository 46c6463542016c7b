package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Listing defaults shared by all collection endpoints.
const (
	defaultLimit = 20
	maxLimit     = 100
)

var slugRE = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// validate checks request bodies. The custom "slug" rule matches the
// catalog slug format.
var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRE.MatchString(fl.Field().String())
	})
	return v
}()

// ErrorResponse is the generic error body.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// listParams extracts search/limit/offset query parameters with defaults.
func listParams(r *http.Request) (search string, limit, offset int) {
	q := r.URL.Query()
	search = q.Get("search")

	limit = defaultLimit
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return search, limit, offset
}

// pathID parses a numeric chi URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
