package handlers

import (
	"encoding/json"
	"net/http"

	"challengeHub/internal/models"
)

type AuthResponse struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	accessToken, err := h.AuthService.GenerateAccessToken(user)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, AuthResponse{
		Message:     "User registered successfully",
		AccessToken: accessToken,
		User:        user,
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, accessToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, AuthResponse{
		Message:     "Login successful",
		AccessToken: accessToken,
		User:        user,
	}, http.StatusOK)
}
