package handler

import (
	"net/http"

	"github.com/bkaddour/authd/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, cookieSecure, exposeErrors bool) {
	authHandler := NewAuthHandler(auth, cookieSecure, exposeErrors)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))
}
