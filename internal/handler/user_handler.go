package handlers

import "net/http"

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	user, err := h.AuthService.CurrentUser(r.Context(), caller.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Current user retrieved successfully",
		"user":    user,
	}, http.StatusOK)
}
