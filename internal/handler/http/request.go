package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/rostering-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/geofence"
)

// decodeJSON reads the request body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, geofence.ErrInvalidCoordinate) {
			response.ValidationError(w, map[string]string{"coordinates": err.Error()})
			return false
		}
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// optionalQuery returns the query parameter or nil when it is absent.
func optionalQuery(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

// pagination reads page and limit; malformed values fall back to the defaults.
func pagination(r *http.Request) (page, limit int) {
	page, limit = 1, 20
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}
	return page, limit
}
