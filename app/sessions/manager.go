package sessions

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"

	"todo-lists/app/models"
)

type contextKey struct{}

// Manager loads the caller's session before each request and saves it
// afterwards. The cookie carries only a signed session id.
type Manager struct {
	store      Store
	codec      *securecookie.SecureCookie
	cookieName string
	ttl        time.Duration
	logger     *log.Logger
	now        func() time.Time
}

// Options configures a Manager.
type Options struct {
	CookieName string
	// HashKey signs the cookie. A random key is generated when nil, which
	// invalidates every session on restart.
	HashKey []byte
	TTL     time.Duration
}

// NewManager creates a Manager backed by store.
func NewManager(store Store, opts Options, logger *log.Logger) *Manager {
	key := opts.HashKey
	if key == nil {
		logger.Warn("no session secret configured, generating one for this process")
		key = securecookie.GenerateRandomKey(32)
	}
	codec := securecookie.New(key, nil)
	codec.MaxAge(int(opts.TTL.Seconds()))

	return &Manager{
		store:      store,
		codec:      codec,
		cookieName: opts.CookieName,
		ttl:        opts.TTL,
		logger:     logger,
		now:        time.Now,
	}
}

// FromContext returns the session state attached by Middleware.
func FromContext(ctx context.Context) *models.Session {
	state, _ := ctx.Value(contextKey{}).(*models.Session)
	return state
}

// WithState attaches state to ctx.
func WithState(ctx context.Context, state *models.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, state)
}

// load resolves the session id from the request cookie and fetches its
// state. A missing, forged or expired cookie starts a new session.
func (m *Manager) load(r *http.Request) (string, *models.Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err == nil {
		var id string
		if err := m.codec.Decode(m.cookieName, cookie.Value, &id); err == nil {
			state, ok, err := m.store.Load(r.Context(), id)
			if err != nil {
				return "", nil, err
			}
			if ok {
				return id, state, nil
			}
		} else {
			m.logger.Debug("discarding session cookie", "err", err)
		}
	}
	return uuid.New().String(), models.NewSession(), nil
}

func (m *Manager) setCookie(w http.ResponseWriter, id string) error {
	encoded, err := m.codec.Encode(m.cookieName, id)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Middleware attaches the session state to the request context and saves
// it once the handler returns.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, state, err := m.load(r)
		if err != nil {
			m.logger.Error("load session", "err", err)
			http.Error(w, "Session unavailable", http.StatusInternalServerError)
			return
		}
		if err := m.setCookie(w, id); err != nil {
			m.logger.Error("encode session cookie", "err", err)
			http.Error(w, "Session unavailable", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithState(r.Context(), state)))

		if err := m.store.Save(r.Context(), id, state, m.now().Add(m.ttl)); err != nil {
			m.logger.Error("save session", "err", err)
		}
	})
}

// Reap removes expired sessions every interval until ctx is done.
func (m *Manager) Reap(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := m.store.DeleteExpired(ctx, m.now())
			if err != nil {
				m.logger.Error("reap sessions", "err", err)
				continue
			}
			if removed > 0 {
				m.logger.Info("reaped expired sessions", "count", removed)
			}
		}
	}
}
