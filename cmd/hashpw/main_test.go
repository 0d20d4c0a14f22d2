package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swastik/internal/models"
)

func TestHashFrom(t *testing.T) {
	hash, err := hashFrom(strings.NewReader("s3cret pass\nignored"))
	require.NoError(t, err)
	assert.True(t, models.CheckPassword(hash, "s3cret pass"))

	hash, err = hashFrom(strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.True(t, models.CheckPassword(hash, "no-newline"))

	_, err = hashFrom(strings.NewReader("\n"))
	assert.EqualError(t, err, "empty password")
}
