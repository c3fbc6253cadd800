package controllers

import (
	"errors"
	"net/http"

	"github.com/yeremiapane/restaurant-pos/store"
)

// storeErrorStatus maps the store's error taxonomy onto HTTP status codes.
func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
