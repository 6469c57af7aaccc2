package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"challengeHub/internal/models"
	"challengeHub/internal/service"
)

func (h *Handlers) LikeChallengePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	totalLikes, err := h.EngagementService.Like(r.Context(), postID, caller.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":     "Post liked successfully",
		"post_id":     postID,
		"total_likes": totalLikes,
	}, http.StatusOK)
}

func (h *Handlers) UnlikeChallengePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	totalLikes, err := h.EngagementService.Unlike(r.Context(), postID, caller.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":     "Post unliked successfully",
		"post_id":     postID,
		"total_likes": totalLikes,
	}, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	comment, totalComments, err := h.EngagementService.AddComment(r.Context(), postID, caller.UserID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":        "Comment added successfully",
		"comment":        comment,
		"total_comments": totalComments,
	}, http.StatusCreated)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "post_id")
	if !ok {
		return
	}

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", service.DefaultCommentLimit)

	comments, err := h.EngagementService.ListComments(r.Context(), postID, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":    "Comments retrieved successfully",
		"comments":   comments.Comments,
		"pagination": comments.Pagination,
	}, http.StatusOK)
}

func (h *Handlers) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	challengeID, _ := strconv.ParseInt(r.URL.Query().Get("challenge_id"), 10, 64)

	leaderboard, err := h.EngagementService.Leaderboard(r.Context(), challengeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":         "Leaderboard retrieved successfully",
		"challenge_id":    leaderboard.ChallengeID,
		"challenge_title": leaderboard.ChallengeTitle,
		"total_posts":     leaderboard.TotalPosts,
		"leaderboard":     leaderboard.Entries,
	}, http.StatusOK)
}
