package web

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swastik/internal/auth"
	"swastik/internal/models"
)

const (
	sessionLoggedIn = "logged_in"
	sessionUserID   = "user_id"

	loginPath     = "/admin/login"
	dashboardPath = "/admin"
	settingsPath  = "/admin/settings"
)

func (s *Server) registerAdmin(r *gin.Engine) {
	r.GET(loginPath, s.loginPage)
	r.POST(loginPath, s.login)
	r.GET("/admin/logout", s.logout)

	admin := r.Group("/admin", s.requireAdmin())
	admin.GET("", s.dashboard)
	admin.GET("/product/new", s.newProductPage)
	admin.POST("/product/new", s.createProduct)
	admin.GET("/product/edit/:id", s.editProductPage)
	admin.POST("/product/edit/:id", s.updateProduct)
	admin.GET("/product/delete/:id", s.deleteProduct)
	admin.GET("/settings", s.settingsPage)
	admin.POST("/settings", s.saveSettings)
}

// sessionAdmin reads the signed session cookie.
func sessionAdmin(c *gin.Context) (models.Admin, bool) {
	sess := sessions.Default(c)
	loggedIn, _ := sess.Get(sessionLoggedIn).(bool)
	uid, _ := sess.Get(sessionUserID).(string)
	if !loggedIn || uid == "" {
		return models.Admin{}, false
	}
	return models.Admin{UID: uid}, true
}

// requireAdmin short-circuits to the login page without a session and
// otherwise puts the admin into the request context for the handlers.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := sessionAdmin(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), admin))
		c.Next()
	}
}

func (s *Server) loginPage(c *gin.Context) {
	if _, ok := sessionAdmin(c); ok {
		c.Redirect(http.StatusSeeOther, dashboardPath)
		return
	}
	s.render(c, http.StatusOK, "admin_login.tmpl", "Login", nil)
}

type loginRequest struct {
	IDToken string `json:"id_token"`
}

// POST /admin/login {"id_token": "..."}
func (s *Server) login(c *gin.Context) {
	if !s.loginLimiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts"})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing ID token"})
		return
	}

	admin, err := s.gate.Login(c.Request.Context(), req.IDToken)
	if errors.Is(err, auth.ErrMissingToken) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing ID token"})
		return
	}
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessionLoggedIn, true)
	sess.Set(sessionUserID, admin.UID)
	if err := sess.Save(); err != nil {
		s.logger.Error("save session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "uid": admin.UID})
}

func (s *Server) logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	if err := sess.Save(); err != nil {
		s.logger.Warn("clear session", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, loginPath)
}

func (s *Server) dashboard(c *gin.Context) {
	data := ViewData{"Products": []models.Product{}}
	items, err := s.products.ListAll(c.Request.Context())
	if err != nil {
		s.logger.Error("list products", zap.Error(err))
		data["Flashes"] = []Flash{{Category: flashError, Message: "Error loading products: " + err.Error()}}
	} else {
		data["Products"] = items
	}
	s.render(c, http.StatusOK, "dashboard.tmpl", "Dashboard", data)
}

func (s *Server) settingsPage(c *gin.Context) {
	data := ViewData{}
	rec, err := s.settings.Stored(c.Request.Context())
	if err != nil {
		s.logger.Error("load settings", zap.Error(err))
		data["Flashes"] = []Flash{{Category: flashError, Message: "Error loading settings: " + err.Error()}}
	}
	data["Settings"] = rec.Over(models.ShopSettings{})
	s.render(c, http.StatusOK, "settings.tmpl", "Settings", data)
}

// saveSettings merges the submitted fields; fields missing from the form keep
// their stored values.
func (s *Server) saveSettings(c *gin.Context) {
	var patch models.SettingsRecord
	targets := map[string]**string{
		"shop_name": &patch.ShopName,
		"shop_logo": &patch.ShopLogo,
		"phone":     &patch.Phone,
		"email":     &patch.Email,
		"address":   &patch.Address,
		"map_url":   &patch.MapURL,
	}
	for name, target := range targets {
		if v, ok := c.GetPostForm(name); ok {
			*target = &v
		}
	}

	if err := s.settings.Save(c.Request.Context(), patch); err != nil {
		s.logger.Error("save settings", zap.Error(err))
		s.flash(c, flashError, "Error saving settings: "+err.Error())
		c.Redirect(http.StatusSeeOther, settingsPath)
		return
	}
	s.logger.Info("settings updated", zap.String("uid", adminUID(c)))
	s.flash(c, flashSuccess, "Settings Updated Successfully")
	c.Redirect(http.StatusSeeOther, settingsPath)
}
