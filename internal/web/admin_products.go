package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"swastik/internal/auth"
	"swastik/internal/catalog"
	"swastik/internal/models"
)

// productForm is the admin product form. Checkboxes are read separately
// because an unchecked box is simply absent.
type productForm struct {
	Name          string `form:"name" binding:"required"`
	Price         string `form:"price"`
	OriginalPrice string `form:"original_price"`
	Category      string `form:"category"`
	Description   string `form:"description"`
	Dimensions    string `form:"dimensions"`
	Material      string `form:"material"`
	ImageURL      string `form:"image_url"`
}

func bindProductForm(c *gin.Context) (productForm, error) {
	var f productForm
	if err := c.ShouldBind(&f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, strings.ToLower(fe.Field()))
			}
			return f, fmt.Errorf("missing %s", strings.Join(missing, ", "))
		}
		return f, err
	}
	return f, nil
}

func (f productForm) fields(c *gin.Context, image string) models.ProductFields {
	_, bestseller := c.GetPostForm("bestseller")
	_, available := c.GetPostForm("available")
	return models.ProductFields{
		Name:          strings.TrimSpace(f.Name),
		Price:         strings.TrimSpace(f.Price),
		OriginalPrice: strings.TrimSpace(f.OriginalPrice),
		Category:      strings.TrimSpace(f.Category),
		Image:         image,
		Description:   strings.TrimSpace(f.Description),
		Dimensions:    strings.TrimSpace(f.Dimensions),
		Material:      strings.TrimSpace(f.Material),
		Bestseller:    bestseller,
		Available:     available,
	}
}

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
	".avif": true, ".heic": true, ".heif": true, ".bmp": true, ".tif": true, ".tiff": true,
}

// imageFile returns the uploaded image_file, or nil when none was chosen.
// A file passes when its extension is a known image type, when it has no
// extension, or when its content sniffs as an image.
func imageFile(c *gin.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("image_file")
	if err != nil || fh.Filename == "" {
		return nil, nil
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" || imageExts[ext] {
		return fh, nil
	}
	ok, err := sniffImage(fh)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("unsupported image format")
	}
	return fh, nil
}

func sniffImage(fh *multipart.FileHeader) (bool, error) {
	f, err := fh.Open()
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.HasPrefix(http.DetectContentType(head[:n]), "image/"), nil
}

func (s *Server) upload(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return s.media.Upload(ctx, f, fh.Filename)
}

func adminUID(c *gin.Context) string {
	admin, _ := auth.PrincipalFrom(c.Request.Context())
	return admin.UID
}

func (s *Server) renderProductForm(c *gin.Context, status int, action string, p *models.Product, editing bool, errMsg string) {
	data := ViewData{"Action": action, "Product": p, "Editing": editing}
	if errMsg != "" {
		data["Flashes"] = []Flash{{Category: flashError, Message: errMsg}}
	}
	title := "New product"
	if editing {
		title = "Edit product"
	}
	s.render(c, status, "product_form.tmpl", title, data)
}

const newProductPath = "/admin/product/new"

func (s *Server) newProductPage(c *gin.Context) {
	s.renderProductForm(c, http.StatusOK, newProductPath, nil, false, "")
}

func (s *Server) createProduct(c *gin.Context) {
	ctx := c.Request.Context()
	fail := func(status int, p *models.Product, err error) {
		s.renderProductForm(c, status, newProductPath, p, false, "Error adding product: "+err.Error())
	}

	form, err := bindProductForm(c)
	if err != nil {
		p := form.fields(c, form.ImageURL).WithID("")
		fail(http.StatusBadRequest, &p, err)
		return
	}

	image := ""
	fh, err := imageFile(c)
	if err != nil {
		p := form.fields(c, form.ImageURL).WithID("")
		fail(http.StatusBadRequest, &p, err)
		return
	}
	if fh != nil {
		if image, err = s.upload(ctx, fh); err != nil {
			s.logger.Error("upload image", zap.Error(err))
			p := form.fields(c, form.ImageURL).WithID("")
			fail(http.StatusBadGateway, &p, err)
			return
		}
	}
	if image == "" {
		image = strings.TrimSpace(form.ImageURL)
	}

	fields := form.fields(c, image)
	id, err := s.products.Create(ctx, fields)
	if err != nil {
		s.logger.Error("create product", zap.Error(err))
		p := fields.WithID("")
		fail(http.StatusInternalServerError, &p, err)
		return
	}

	s.logger.Info("product created", zap.String("id", id), zap.String("uid", adminUID(c)))
	s.flash(c, flashSuccess, "Product Added Successfully")
	c.Redirect(http.StatusSeeOther, dashboardPath)
}

// loadProduct fetches the product named in the path, redirecting to the
// dashboard with a flash when it cannot.
func (s *Server) loadProduct(c *gin.Context) (models.Product, bool) {
	p, err := s.products.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		s.flash(c, flashError, "Product not found")
	case err != nil:
		s.logger.Error("load product", zap.String("id", c.Param("id")), zap.Error(err))
		s.flash(c, flashError, "Error loading product: "+err.Error())
	default:
		return p, true
	}
	c.Redirect(http.StatusSeeOther, dashboardPath)
	return models.Product{}, false
}

func (s *Server) editProductPage(c *gin.Context) {
	p, ok := s.loadProduct(c)
	if !ok {
		return
	}
	s.renderProductForm(c, http.StatusOK, c.Request.URL.Path, &p, true, "")
}

// updateProduct overwrites the product. A new upload releases the old asset
// before uploading; if the upload then fails the old image is already gone.
// A changed image_url without a file replaces the URL and leaves the old
// asset alone since it may not be ours.
func (s *Server) updateProduct(c *gin.Context) {
	ctx := c.Request.Context()
	current, ok := s.loadProduct(c)
	if !ok {
		return
	}
	action := c.Request.URL.Path
	form, err := bindProductForm(c)
	// fail re-renders what the admin typed.
	fail := func(status int, err error) {
		image := current.Image
		if u := strings.TrimSpace(form.ImageURL); u != "" {
			image = u
		}
		p := form.fields(c, image).WithID(current.ID)
		s.renderProductForm(c, status, action, &p, true, "Error updating product: "+err.Error())
	}
	if err != nil {
		fail(http.StatusBadRequest, err)
		return
	}
	fh, err := imageFile(c)
	if err != nil {
		fail(http.StatusBadRequest, err)
		return
	}

	image := current.Image
	if fh != nil {
		s.media.Release(ctx, current.Image)
		if image, err = s.upload(ctx, fh); err != nil {
			s.logger.Error("upload image", zap.String("id", current.ID), zap.Error(err))
			fail(http.StatusBadGateway, err)
			return
		}
	} else if u := strings.TrimSpace(form.ImageURL); u != "" && u != image {
		image = u
	}

	err = s.products.Update(ctx, current.ID, form.fields(c, image))
	if errors.Is(err, catalog.ErrNotFound) {
		s.flash(c, flashError, "Product not found")
		c.Redirect(http.StatusSeeOther, dashboardPath)
		return
	}
	if err != nil {
		s.logger.Error("update product", zap.String("id", current.ID), zap.Error(err))
		fail(http.StatusInternalServerError, err)
		return
	}

	s.logger.Info("product updated", zap.String("id", current.ID), zap.String("uid", adminUID(c)))
	s.flash(c, flashSuccess, "Product Updated Successfully")
	c.Redirect(http.StatusSeeOther, dashboardPath)
}

// deleteProduct releases the product image, then removes the record. A failed
// image delete is logged and does not stop the record delete.
func (s *Server) deleteProduct(c *gin.Context) {
	ctx := c.Request.Context()
	p, ok := s.loadProduct(c)
	if !ok {
		return
	}

	s.media.Release(ctx, p.Image)

	err := s.products.Delete(ctx, p.ID)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		s.flash(c, flashError, "Product not found")
	case err != nil:
		s.logger.Error("delete product", zap.String("id", p.ID), zap.Error(err))
		s.flash(c, flashError, "Error deleting product")
	default:
		s.logger.Info("product deleted", zap.String("id", p.ID), zap.String("uid", adminUID(c)))
		s.flash(c, flashSuccess, "Product and Image Deleted")
	}
	c.Redirect(http.StatusSeeOther, dashboardPath)
}
