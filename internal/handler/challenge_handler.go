package handlers

import (
	"encoding/json"
	"net/http"

	"challengeHub/internal/models"
)

func (h *Handlers) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	challenge, err := h.ChallengeService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":   "Challenge created successfully",
		"challenge": challenge,
	}, http.StatusCreated)
}

func (h *Handlers) GetChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.ChallengeService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":    "Challenges retrieved successfully",
		"challenges": challenges,
	}, http.StatusOK)
}

func (h *Handlers) GetChallenge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	challenge, err := h.ChallengeService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":   "Challenge retrieved successfully",
		"challenge": challenge,
	}, http.StatusOK)
}

func (h *Handlers) UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	challenge, err := h.ChallengeService.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":   "Challenge updated successfully",
		"challenge": challenge,
	}, http.StatusOK)
}

func (h *Handlers) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.ChallengeService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Challenge deleted successfully"}, http.StatusOK)
}
