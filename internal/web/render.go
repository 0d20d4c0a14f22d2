package web

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swastik/internal/auth"
)

type ViewData map[string]any

const (
	flashSuccess = "success"
	flashError   = "error"
)

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

// flash queues a message in the session for the next render.
func (s *Server) flash(c *gin.Context, category, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, category)
	if err := sess.Save(); err != nil {
		s.logger.Warn("save flash", zap.Error(err))
	}
}

func (s *Server) popFlashes(c *gin.Context) []Flash {
	sess := sessions.Default(c)
	var out []Flash
	for _, category := range []string{flashSuccess, flashError} {
		for _, v := range sess.Flashes(category) {
			if msg, ok := v.(string); ok {
				out = append(out, Flash{Category: category, Message: msg})
			}
		}
	}
	if len(out) > 0 {
		if err := sess.Save(); err != nil {
			s.logger.Warn("clear flashes", zap.Error(err))
		}
	}
	return out
}

// render executes a template with the shop settings, pending flashes and the
// current admin injected. Flashes already in data are shown after the queued ones.
func (s *Server) render(c *gin.Context, status int, name, title string, data ViewData) {
	if data == nil {
		data = ViewData{}
	}
	data["Title"] = title
	data["Shop"] = s.settings.Get(c.Request.Context())

	inline, _ := data["Flashes"].([]Flash)
	data["Flashes"] = append(s.popFlashes(c), inline...)

	if admin, ok := auth.PrincipalFrom(c.Request.Context()); ok {
		data["Admin"] = admin.UID
	}
	c.HTML(status, name, data)
}
