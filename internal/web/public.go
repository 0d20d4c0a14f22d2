package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// publicPages are served without server-side data besides the shop settings;
// the catalog is loaded by the page scripts from the JSON API.
var publicPages = []struct {
	path, template, title string
}{
	{"/", "index.tmpl", "Home"},
	{"/category.html", "category.tmpl", "Categories"},
	{"/about.html", "about.tmpl", "About"},
	{"/contact.html", "contact.tmpl", "Contact"},
	{"/search.html", "search.tmpl", "Search"},
	{"/product.html", "product.tmpl", "Product"},
	{"/cart.html", "cart.tmpl", "Cart"},
}

func (s *Server) registerPublic(r *gin.Engine) {
	for _, p := range publicPages {
		r.GET(p.path, s.page(p.template, p.title))
	}
}

func (s *Server) page(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.render(c, http.StatusOK, name, title, nil)
	}
}
