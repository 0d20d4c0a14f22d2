package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swastik/internal/catalog"
)

func (s *Server) registerAPI(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/products", s.apiProducts)
	api.GET("/bestsellers", s.apiBestsellers)
	api.GET("/search", s.apiSearch)
	api.GET("/product/:id", s.apiProduct)
}

// GET /api/products?category=&type=bestsellers
func (s *Server) apiProducts(c *gin.Context) {
	items, err := s.products.Browse(c.Request.Context(), c.Query("category"), c.Query("type"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) apiBestsellers(c *gin.Context) {
	items, err := s.products.ListBestsellers(c.Request.Context(), catalog.BestsellersFetchLimit)
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/search?q=&limit=; a limit that is not a number is ignored.
func (s *Server) apiSearch(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := s.products.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) apiProduct(c *gin.Context) {
	p, err := s.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) apiError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, catalog.ErrNotConnected):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not connected"})
	default:
		s.logger.Error("api request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
