package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ecodeli-delivery/internal/apperr"
	"ecodeli-delivery/internal/auth"
)

func caller(r *http.Request) (int64, error) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		return 0, apperr.ErrUnauthorized
	}
	return id.CourierID, nil
}

// actingAs resolves a courier id supplied by the client against the caller.
// A nil claim means "myself".
func actingAs(r *http.Request, claimed *int64) (int64, error) {
	self, err := caller(r)
	if err != nil {
		return 0, err
	}
	if claimed == nil {
		return self, nil
	}
	if *claimed != self {
		return 0, fmt.Errorf("cannot act as courier %d: %w", *claimed, apperr.ErrForbidden)
	}
	return self, nil
}

// userFromQuery reads ?userId= and checks it against the caller.
func userFromQuery(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("userId"))
	if raw == "" {
		return actingAs(r, nil)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("userId must be a positive integer: %w", apperr.ErrInvalidInput)
	}
	return actingAs(r, &id)
}
