package handlers

import (
	"context"
	"net/http"
	"strconv"

	"challengeHub/internal/models"

	"github.com/gorilla/mux"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
)

// WithCaller stores the authenticated identity on ctx.
func WithCaller(ctx context.Context, caller models.Caller) context.Context {
	ctx = context.WithValue(ctx, userIDKey, caller.UserID)
	return context.WithValue(ctx, roleKey, caller.Role)
}

func CallerFromContext(ctx context.Context) (models.Caller, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok || userID <= 0 {
		return models.Caller{}, false
	}
	role, _ := ctx.Value(roleKey).(string)

	return models.Caller{UserID: userID, Role: role}, true
}

// requireCaller writes 401 when the request carries no identity.
func requireCaller(w http.ResponseWriter, r *http.Request) (models.Caller, bool) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
	}
	return caller, ok
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, "Invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return value
}
