package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"orbosis/internal/api"
	"orbosis/internal/register"
	"orbosis/internal/session"
	"orbosis/internal/store"
	"orbosis/internal/timer"
	"orbosis/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger   *logrus.Logger
	config   *types.Config
	workflow *register.Workflow
	store    store.ProfileStore
	session  *session.Context
	api      *api.Client

	cookie   *securecookie.SecureCookie
	upgrader websocket.Upgrader
	notifier *notifier

	sessionCancel func()
	watchDone     chan struct{}

	countdownMu sync.Mutex
	countdown   *timer.Countdown

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	apiClient *api.Client,
	profileStore store.ProfileStore,
	sessionCtx *session.Context,
	workflow *register.Workflow,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	if len(blockKey) == 0 {
		blockKey = securecookie.GenerateRandomKey(32)
	}

	s := &Service{
		logger:   logger,
		config:   config,
		workflow: workflow,
		store:    profileStore,
		session:  sessionCtx,
		api:      apiClient,
		cookie:   securecookie.New(hashKey, blockKey),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		notifier: newNotifier(logger),
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(config.CORSOrigins, ","),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	s.server.Handler = corsHandler.Handler(mux)

	s.buildRouter(mux)
	s.watchSession()

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	s.stopCountdown()

	s.sessionCancel()
	<-s.watchDone

	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/api/auth/login", s.handlePostLogin, http.MethodPost)

	r.HandleFunc("/api/donor/register", s.handleRegisterDonor, http.MethodPost)
	r.HandleFunc("/api/volunteer/register", s.handleRegisterVolunteer, http.MethodPost)
	r.HandleFunc("/api/beneficiary/register", s.handleRegisterBeneficiary, http.MethodPost)

	r.HandleFunc("/api/volunteer/all", s.handleListVolunteers, http.MethodGet)

	r.HandleFunc("/api/forms/contact", s.handleContactSubmit, http.MethodPost)
	r.HandleFunc("/api/forms/newsletter", s.handleNewsletterSubmit, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/api/auth/logout", s.handlePostLogout, http.MethodPost)
		r.HandleFunc("/api/profile", s.handleGetProfile, http.MethodGet)
		r.HandleFunc("/api/profile", s.handlePutProfile, http.MethodPut)
		r.HandleFunc("/api/dashboard", s.handleGetDashboard, http.MethodGet)
		r.HandleFunc("/api/volunteer", s.handleCreateVolunteer, http.MethodPost)
		r.HandleFunc("/api/notifications/ws", s.handleNotificationsWS, http.MethodGet)
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// watchSession bridges session changes into the notifications feed so
// connected dashboards re-render on login, registration, and logout.
// Stop cancels the subscription and waits for the goroutine to drain.
func (s *Service) watchSession() {
	ch, cancel := s.session.Subscribe()
	s.sessionCancel = cancel
	s.watchDone = make(chan struct{})

	go func() {
		defer close(s.watchDone)

		for profile := range ch {
			if profile == nil {
				s.stopCountdown()
			}
			s.notifier.broadcast(wsEvent{Type: "session", User: profile})
		}
	}()
}

// startRedirectCountdown drives the post-registration redirect: one tick
// per second pushed to notification subscribers, then a redirect event.
// A fresh submission or a logout cancels the previous countdown so a
// stale timer never fires a navigation.
func (s *Service) startRedirectCountdown() {
	s.countdownMu.Lock()
	defer s.countdownMu.Unlock()

	if s.countdown != nil {
		s.countdown.Stop()
	}

	s.countdown = timer.Start(s.config.RedirectDelaySec,
		func(remaining int) {
			s.notifier.broadcast(wsEvent{Type: "countdown", Remaining: remaining})
		},
		func() {
			s.notifier.broadcast(wsEvent{Type: "redirect", To: "/dashboard"})
		},
	)
}

func (s *Service) stopCountdown() {
	s.countdownMu.Lock()
	defer s.countdownMu.Unlock()

	if s.countdown != nil {
		s.countdown.Stop()
		s.countdown = nil
	}
}
