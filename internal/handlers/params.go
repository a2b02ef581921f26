package handlers

import (
	"strconv"

	"github.com/BruksfildServices01/restaurant-api/internal/httperr"
)

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, httperr.ErrBadRequest("invalid_id")
	}
	return uint(id), nil
}

// parseOptionalUint aceita vazio como "sem filtro".
func parseOptionalUint(raw string) (uint, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, httperr.ErrBadRequest("invalid_filter")
	}
	return uint(v), nil
}
