package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	handlers "challengeHub/internal/handler"
	"challengeHub/internal/models"
	"challengeHub/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Middleware func(http.Handler) http.Handler

var publicPaths = map[string]bool{
	"/":                  true,
	"/health":            true,
	"/api/auth/register": true,
	"/api/auth/login":    true,
}

// AuthMiddleware verifies the bearer token and puts the caller identity in the request context.
func AuthMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handlers.WriteError(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				handlers.WriteError(w, "Invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(parts[1])
			if err != nil {
				handlers.WriteError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := handlers.WithCaller(r.Context(), models.Caller{UserID: claims.UserID, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RoleMiddleware(allowedRoles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := handlers.CallerFromContext(r.Context())
			if !ok {
				handlers.WriteError(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			for _, role := range allowedRoles {
				if caller.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			handlers.WriteError(w, "Access denied", http.StatusForbidden)
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware writes one access log line per request, tagged with the chi request id.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Printf("[%s] %s %s %d %dB %s",
			chimiddleware.GetReqID(r.Context()),
			r.Method,
			r.URL.RequestURI(),
			ww.Status(),
			ww.BytesWritten(),
			time.Since(start))
	})
}

// Chain wraps h so that the last middleware is the outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
