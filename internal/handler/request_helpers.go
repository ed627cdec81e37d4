package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eon-online/eon-server/internal/middleware"
)

// callerID extracts the authenticated player ID from the request context.
// Writes a 401 response and returns false when the identity header was
// missing or malformed.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := middleware.PlayerID(r.Context())
	if id == middleware.EmptyPlayerID {
		respondError(w, http.StatusUnauthorized, ErrMsgMissingIdentity)
		return "", false
	}
	return id, true
}

// pathID parses a numeric path parameter. Writes a 400 response and returns
// false when the parameter is missing or not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return 0, false
	}
	return id, true
}
