package handlers

import (
	"encoding/json"
	"net/http"

	"challengeHub/internal/models"
)

// CreateEntry joins the caller to a challenge. Admins may enroll another user through user_id.
func (h *Handlers) CreateEntry(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req models.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	userID := caller.UserID
	if req.UserID != 0 && req.UserID != caller.UserID {
		if !caller.IsAdmin() {
			WriteError(w, "Only admins can enroll other users", http.StatusForbidden)
			return
		}
		userID = req.UserID
	}

	entry, err := h.EntryService.Create(r.Context(), req.ChallengeID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Joined challenge successfully",
		"entry":   entry,
	}, http.StatusCreated)
}

func (h *Handlers) GetEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.EntryService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Challenge entries retrieved successfully",
		"entries": entries,
	}, http.StatusOK)
}

func (h *Handlers) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.EntryService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Challenge entry retrieved successfully",
		"entry":   entry,
	}, http.StatusOK)
}

func (h *Handlers) GetEntriesByChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID, ok := pathID(w, r, "challenge_id")
	if !ok {
		return
	}

	entries, err := h.EntryService.ListByChallenge(r.Context(), challengeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Challenge entries retrieved successfully",
		"entries": entries,
	}, http.StatusOK)
}

func (h *Handlers) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	entry, err := h.EntryService.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Challenge entry updated successfully",
		"entry":   entry,
	}, http.StatusOK)
}

// DeleteEntry lets a participant leave a challenge; admins may remove any entry.
func (h *Handlers) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if !caller.IsAdmin() {
		entry, err := h.EntryService.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if entry.UserID != caller.UserID {
			WriteError(w, "You can only leave your own challenge entries", http.StatusForbidden)
			return
		}
	}

	if err := h.EntryService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Challenge entry deleted successfully"}, http.StatusOK)
}
