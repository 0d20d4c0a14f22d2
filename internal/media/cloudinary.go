package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryHost stores images on Cloudinary. The client is created once and
// shared by all requests.
type CloudinaryHost struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryHost(cloudName, apiKey, apiSecret string) (*CloudinaryHost, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary client: %w", err)
	}
	return &CloudinaryHost{cld: cld}, nil
}

func (h *CloudinaryHost) Upload(ctx context.Context, r io.Reader, filename string) (string, error) {
	res, err := h.cld.Upload.Upload(ctx, r, uploader.UploadParams{})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("upload %s: %s", filename, res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", errors.New("upload " + filename + ": empty url in response")
	}
	return res.SecureURL, nil
}

func (h *CloudinaryHost) Destroy(ctx context.Context, publicID string) error {
	res, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("destroy %s: %s", publicID, res.Error.Message)
	}
	if res.Result != "ok" {
		return fmt.Errorf("destroy %s: %s", publicID, res.Result)
	}
	return nil
}
