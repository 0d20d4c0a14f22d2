package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestExtractIdentifier(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{"versioned upload", "https://res.cloudinary.com/demo/image/upload/v1570979139/sample.jpg", "sample", true},
		{"no extension", "https://res.cloudinary.com/demo/image/upload/sample", "sample", true},
		{"double extension", "https://res.cloudinary.com/demo/image/upload/sofa.final.png", "sofa", true},
		{"bare domain", "https://cloudinary.com/x/y.webp", "y", true},
		{"foreign host", "https://images.unsplash.com/photo-1555041469-a586c61ea9bc.jpg", "", false},
		{"look-alike host", "https://cloudinary.com.evil.example/sample.jpg", "", false},
		{"trailing slash", "https://res.cloudinary.com/demo/image/upload/", "", false},
		{"unparsable", "https://res.cloudinary.com/%zz", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractIdentifier(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)

			again, _ := ExtractIdentifier(tt.url)
			assert.Equal(t, got, again)
		})
	}
}

type recordingHost struct {
	calls      []string
	destroyErr error
}

func (h *recordingHost) Upload(_ context.Context, r io.Reader, filename string) (string, error) {
	b, _ := io.ReadAll(r)
	h.calls = append(h.calls, "upload:"+filename+":"+string(b))
	return "https://res.cloudinary.com/demo/image/upload/v1/new.jpg", nil
}

func (h *recordingHost) Destroy(_ context.Context, id string) error {
	h.calls = append(h.calls, "destroy:"+id)
	return h.destroyErr
}

func TestReleaseIsBestEffort(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	host := &recordingHost{destroyErr: errors.New("503")}
	m := NewManager(host, zap.New(core))

	m.Release(context.Background(), "https://res.cloudinary.com/demo/image/upload/v1/old.jpg")
	m.Release(context.Background(), "https://images.unsplash.com/photo.jpg")
	m.Release(context.Background(), "")

	assert.Equal(t, []string{"destroy:old"}, host.calls)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "old", logs.All()[0].ContextMap()["public_id"])
}

func TestUpload(t *testing.T) {
	host := &recordingHost{}
	m := NewManager(host, zap.NewNop())

	u, err := m.Upload(context.Background(), strings.NewReader("img"), "bed.png")
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/v1/new.jpg", u)
	assert.Equal(t, []string{"upload:bed.png:img"}, host.calls)

	_, err = NewManager(UnconfiguredHost{}, zap.NewNop()).Upload(context.Background(), strings.NewReader(""), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
