package adapthttp

import (
	"net/http"

	"taskhub/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	cred       *app.CredentialService
	tasks      *app.TaskService
	tokens     *app.TokenService
	oidcConfig OIDCConfig
}

// New creates a Server wired to the given application services.
func New(cred *app.CredentialService, tasks *app.TaskService, tokens *app.TokenService, oidcConfig OIDCConfig) *Server {
	return &Server{cred: cred, tasks: tasks, tokens: tokens, oidcConfig: oidcConfig}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	root := http.NewServeMux()
	root.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	// Registration and login establish identity and bypass the gateway.
	root.HandleFunc("POST /register", s.handleRegister)
	root.HandleFunc("POST /login", s.handleLogin)
	root.HandleFunc("GET /auth/sso/login", s.handleSSOLogin)
	root.HandleFunc("GET /auth/sso/callback", s.handleSSOCallback)

	protected := http.NewServeMux()
	protected.HandleFunc("POST /todos", s.handleTaskCreate)
	protected.HandleFunc("GET /todos", s.handleTaskList)
	protected.HandleFunc("PUT /todos/{id}", s.handleTaskUpdate)
	protected.HandleFunc("DELETE /todos/{id}", s.handleTaskDelete)

	root.Handle("/todos", s.authMiddleware(protected))
	root.Handle("/todos/", s.authMiddleware(protected))

	return s.loggingMiddleware(root)
}
