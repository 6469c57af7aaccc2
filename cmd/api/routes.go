package main

import (
	"net/http"

	handlers "challengeHub/internal/handler"
	"challengeHub/internal/middleware"
	"challengeHub/internal/models"

	"github.com/gorilla/mux"
)

func newRouter(h *handlers.Handlers) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(handlers.HomeHandler)

	adminOnly := middleware.RoleMiddleware(models.RoleAdmin)

	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet).Name("home")
	router.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet).Name("health")

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost).Name("register")
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost).Name("login")
	api.HandleFunc("/me", h.GetCurrentUser).Methods(http.MethodGet).Name("me")

	// challenges
	api.Handle("/challenges", adminOnly(http.HandlerFunc(h.CreateChallenge))).Methods(http.MethodPost).Name("createChallenge")
	api.HandleFunc("/challenges", h.GetChallenges).Methods(http.MethodGet).Name("listChallenges")
	api.HandleFunc("/challenges/{id:[0-9]+}", h.GetChallenge).Methods(http.MethodGet).Name("getChallenge")
	api.Handle("/challenges/{id:[0-9]+}", adminOnly(http.HandlerFunc(h.UpdateChallenge))).Methods(http.MethodPut).Name("updateChallenge")
	api.Handle("/challenges/{id:[0-9]+}", adminOnly(http.HandlerFunc(h.DeleteChallenge))).Methods(http.MethodDelete).Name("deleteChallenge")

	// entries
	api.HandleFunc("/challenge-entries", h.CreateEntry).Methods(http.MethodPost).Name("createEntry")
	api.HandleFunc("/challenge-entries", h.GetEntries).Methods(http.MethodGet).Name("listEntries")
	api.HandleFunc("/challenge-entries/challenge/{challenge_id:[0-9]+}", h.GetEntriesByChallenge).Methods(http.MethodGet).Name("listEntriesByChallenge")
	api.HandleFunc("/challenge-entries/{id:[0-9]+}", h.GetEntry).Methods(http.MethodGet).Name("getEntry")
	api.Handle("/challenge-entries/{id:[0-9]+}", adminOnly(http.HandlerFunc(h.UpdateEntry))).Methods(http.MethodPut).Name("updateEntry")
	api.HandleFunc("/challenge-entries/{id:[0-9]+}", h.DeleteEntry).Methods(http.MethodDelete).Name("deleteEntry")

	// challenge posts; fixed segments go before {post_id}
	api.HandleFunc("/challenge-posts", h.CreateChallengePost).Methods(http.MethodPost).Name("createPost")
	api.HandleFunc("/challenge-posts", h.GetChallengePosts).Methods(http.MethodGet).Name("listPosts")
	api.HandleFunc("/challenge-posts/media", h.UploadMedia).Methods(http.MethodPost).Name("uploadMedia")
	api.HandleFunc("/challenge-posts/leaderboard", h.GetLeaderboard).Methods(http.MethodGet).Name("leaderboard")
	api.HandleFunc("/challenge-posts/user/{user_id:[0-9]+}", h.GetChallengePostsByUser).Methods(http.MethodGet).Name("listPostsByUser")
	api.HandleFunc("/challenge-posts/challenge/{challenge_id:[0-9]+}", h.GetChallengePostsByChallenge).Methods(http.MethodGet).Name("listPostsByChallenge")
	api.HandleFunc("/challenge-posts/{post_id:[0-9]+}", h.GetChallengePost).Methods(http.MethodGet).Name("getPost")
	api.HandleFunc("/challenge-posts/{post_id:[0-9]+}", h.UpdateChallengePost).Methods(http.MethodPut).Name("updatePost")
	api.HandleFunc("/challenge-posts/{post_id:[0-9]+}", h.DeleteChallengePost).Methods(http.MethodDelete).Name("deletePost")
	api.HandleFunc("/challenge-posts/{post_id:[0-9]+}/like", h.LikeChallengePost).Methods(http.MethodPost).Name("likePost")
	api.HandleFunc("/challenge-posts/{post_id:[0-9]+}/like", h.UnlikeChallengePost).Methods(http.MethodDelete).Name("unlikePost")
	api.HandleFunc("/challenge-posts/{post_id:[0-9]+}/comments", h.AddComment).Methods(http.MethodPost).Name("addComment")
	api.HandleFunc("/challenge-posts/{post_id:[0-9]+}/comments", h.GetComments).Methods(http.MethodGet).Name("listComments")

	// shop members
	api.HandleFunc("/shop-members", h.CreateShopMember).Methods(http.MethodPost).Name("createShopMember")
	api.HandleFunc("/shop-members/mine", h.GetMyShopMembers).Methods(http.MethodGet).Name("listShopMembers")
	api.HandleFunc("/shop-members/activate", h.ActivateShopMember).Methods(http.MethodPut).Name("activateShopMember")
	api.HandleFunc("/shop-members/{user_id:[0-9]+}", h.DeleteShopMember).Methods(http.MethodDelete).Name("deleteShopMember")

	return router
}
