package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/adapters/middleware"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/domain"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto status codes. Validation failures and
// domain rejections are 4xx; everything else collapses into the one generic
// failure path.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrCommentRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrNoEditInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, services.ErrEquipmentNotFound),
		errors.Is(err, services.ErrComplaintNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "request failed", http.StatusInternalServerError)
	}
}

// userFromContext rebuilds the caller from the claims the auth middleware
// stashed on the context.
func userFromContext(ctx context.Context) domain.User {
	user := domain.User{}
	if v, ok := ctx.Value(middleware.UserIDKey).(string); ok {
		user.ID = v
	}
	if v, ok := ctx.Value(middleware.UserNameKey).(string); ok {
		user.Name = v
	}
	if v, ok := ctx.Value(middleware.UserEmailKey).(string); ok {
		user.Email = v
	}
	if v, ok := ctx.Value(middleware.RoleKey).(string); ok {
		user.Role = domain.Role(v)
	}
	return user
}
