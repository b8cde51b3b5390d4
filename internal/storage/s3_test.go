package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	key := objectKey("banner.png")
	require.True(t, strings.HasPrefix(key, "events/"))
	require.True(t, strings.HasSuffix(key, ".png"))

	// No extension: key still namespaced, nothing appended.
	bare := objectKey("banner")
	require.True(t, strings.HasPrefix(bare, "events/"))
	require.False(t, strings.Contains(bare, "."))

	require.NotEqual(t, objectKey("banner.png"), objectKey("banner.png"))
}

func TestValidMimeType(t *testing.T) {
	for _, mime := range AllowedMimeTypes() {
		require.True(t, ValidMimeType(mime))
	}
	require.False(t, ValidMimeType("application/pdf"))
	require.False(t, ValidMimeType("text/html"))
	require.False(t, ValidMimeType(""))
}

func TestUploadErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &UploadError{Err: cause}

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "object storage upload failed")
}
