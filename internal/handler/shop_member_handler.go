package handlers

import (
	"encoding/json"
	"net/http"

	"challengeHub/internal/models"
)

func (h *Handlers) CreateShopMember(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req models.CreateShopMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	member, err := h.ShopMemberService.Create(r.Context(), caller.UserID, req.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Shop member added successfully",
		"member":  member,
	}, http.StatusCreated)
}

func (h *Handlers) GetMyShopMembers(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	members, err := h.ShopMemberService.ListMine(r.Context(), caller.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Shop members retrieved successfully",
		"members": members,
	}, http.StatusOK)
}

func (h *Handlers) ActivateShopMember(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	member, err := h.ShopMemberService.ActivateSelf(r.Context(), caller.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Membership activated successfully",
		"member":  member,
	}, http.StatusOK)
}

func (h *Handlers) DeleteShopMember(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	if err := h.ShopMemberService.Delete(r.Context(), caller.UserID, userID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Shop member removed successfully"}, http.StatusOK)
}
