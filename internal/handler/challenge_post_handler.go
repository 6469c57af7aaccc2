package handlers

import (
	"encoding/json"
	"net/http"

	"challengeHub/internal/models"
)

func (h *Handlers) CreateChallengePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req models.CreateChallengePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	post, err := h.ChallengePostService.Create(r.Context(), caller.UserID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":        "Challenge post created successfully",
		"challenge_post": post,
	}, http.StatusCreated)
}

func (h *Handlers) GetChallengePosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.ChallengePostService.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeChallengePosts(w, posts)
}

func (h *Handlers) GetChallengePostsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	posts, err := h.ChallengePostService.GetByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeChallengePosts(w, posts)
}

func (h *Handlers) GetChallengePostsByChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID, ok := pathID(w, r, "challenge_id")
	if !ok {
		return
	}

	posts, err := h.ChallengePostService.GetByChallenge(r.Context(), challengeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeChallengePosts(w, posts)
}

func writeChallengePosts(w http.ResponseWriter, posts []models.ChallengePostView) {
	writeSuccess(w, map[string]interface{}{
		"message":         "Challenge posts retrieved successfully",
		"challenge_posts": posts,
	}, http.StatusOK)
}

func (h *Handlers) GetChallengePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	post, err := h.ChallengePostService.GetByID(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":        "Challenge post retrieved successfully",
		"challenge_post": post,
	}, http.StatusOK)
}

func (h *Handlers) UpdateChallengePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	var req models.UpdateChallengePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	post, err := h.ChallengePostService.Update(r.Context(), postID, caller, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":        "Challenge post updated successfully",
		"challenge_post": post,
	}, http.StatusOK)
}

func (h *Handlers) DeleteChallengePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	summary, err := h.ChallengePostService.SoftDelete(r.Context(), postID, caller)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":      "Challenge post deleted successfully",
		"deleted_post": summary,
	}, http.StatusOK)
}
