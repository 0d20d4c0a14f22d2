// Package web maps HTTP routes onto the catalog, media, settings and auth
// components and renders the storefront and admin pages.
package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swastik/internal/auth"
	"swastik/internal/catalog"
	"swastik/internal/media"
	"swastik/internal/metrics"
	"swastik/internal/settings"
	"swastik/internal/views"
)

const sessionName = "swastik_session"

// Deps are the long-lived clients shared by every request.
type Deps struct {
	Products           *catalog.Repository
	Settings           *settings.Service
	Media              *media.Manager
	Gate               *auth.Gate
	Logger             *zap.Logger
	SessionSecret      string
	StaticDir          string
	LoginRatePerMinute int
	// TrustedProxies are the addresses whose X-Forwarded-For is believed
	// when keying login attempts by client IP.
	TrustedProxies []string
	// SecureCookie marks the session cookie HTTPS-only.
	SecureCookie bool
}

type Server struct {
	products     *catalog.Repository
	settings     *settings.Service
	media        *media.Manager
	gate         *auth.Gate
	logger       *zap.Logger
	loginLimiter *loginLimiter
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(d Deps) (*gin.Engine, error) {
	s := &Server{
		products:     d.Products,
		settings:     d.Settings,
		media:        d.Media,
		gate:         d.Gate,
		logger:       d.Logger,
		loginLimiter: newLoginLimiter(d.LoginRatePerMinute),
	}

	tmpl, err := views.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Logger(), gin.Recovery(), metrics.Middleware())
	r.SetHTMLTemplate(tmpl)

	if d.StaticDir != "" {
		r.Static("/static", d.StaticDir)
	}

	store := cookie.NewStore([]byte(d.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((7 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   d.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	s.registerPublic(r)
	s.registerAPI(r)
	s.registerAdmin(r)

	return r, nil
}

func (s *Server) health(c *gin.Context) {
	if err := s.products.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
