package fakeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/creatorpilot/internal/common"
	"github.com/dmitrijs2005/creatorpilot/internal/logging"
)

type ctxKey struct{}

// Options configure a Server.
type Options struct {
	SecretKey  []byte
	TokenTTL   time.Duration
	RequestLog bool
	Logger     logging.Logger
}

// Server is the fake backend. Handler exposes its routes.
type Server struct {
	store  *store
	secret []byte
	ttl    time.Duration
	log    logging.Logger
	router *chi.Mux

	mu   sync.Mutex
	fail *injectedFailure
}

type injectedFailure struct {
	status  int
	message string
}

func NewServer(opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = time.Hour
	}
	if len(opts.SecretKey) == 0 {
		opts.SecretKey = []byte("creatorpilot-dev-secret")
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop{}
	}

	s := &Server{
		store:  newStore(),
		secret: opts.SecretKey,
		ttl:    opts.TokenTTL,
		log:    opts.Logger.With("module", "fakeapi"),
		router: chi.NewRouter(),
	}
	s.routes(opts.RequestLog)
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// FailNext makes the next /api call answer status with message in both the
// "error" and "message" fields.
func (s *Server) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = &injectedFailure{status: status, message: message}
}

// SetRoles changes a user's stored roles. Tokens issued afterwards carry the
// new flags.
func (s *Server) SetRoles(userID string, isAdmin, isOwner bool) bool {
	return s.store.setRoles(userID, isAdmin, isOwner)
}

func (s *Server) routes(requestLog bool) {
	r := s.router
	if requestLog {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(s.injectFailure)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/register", s.handleRegister)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Post("/generate-chapters", s.handleGenerateChapters)
			r.Post("/generate-titles", s.handleGenerateTitles)
			r.Get("/profile", s.handleGetProfile)
			r.Put("/profile", s.handlePutProfile)
			r.Get("/history", s.handleListHistory)
			r.Delete("/history/{id}", s.handleDeleteHistory)

			r.Group(func(r chi.Router) {
				r.Use(s.requirePrivileged)
				r.Get("/admin/users", s.handleListUsers)
				r.Put("/admin/toggle-admin/{id}", s.handleToggleAdmin)
			})
		})
	})
}

func (s *Server) injectFailure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		f := s.fail
		s.fail = nil
		s.mu.Unlock()

		if f != nil {
			writeJSON(w, f.status, map[string]string{"error": f.message, "message": f.message})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(h, common.BearerPrefix)
		if !ok || token == "" {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := UserIDFromToken(token, s.secret)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		if _, ok := s.store.get(id); !ok {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// requirePrivileged checks the stored account, not the token claims.
func (s *Server) requirePrivileged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, _ := s.store.get(userID(r))
		if !a.isAdmin && !a.isOwner {
			writeMessage(w, http.StatusForbidden, "Access denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
