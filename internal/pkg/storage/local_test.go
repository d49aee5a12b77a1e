package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	key, err := s.Save(ctx, strings.NewReader("resume body"), "resumes/cand-1/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "resumes/cand-1/cv.pdf", key)

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := s.Open(ctx, key)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "resume body", string(body))

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key), "deleting twice is not an error")

	_, err = s.Open(ctx, key)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../outside.pdf", "/etc/passwd", ".", "a/../../b"} {
		_, err := s.Save(ctx, strings.NewReader("x"), key)
		assert.ErrorIs(t, err, ErrInvalidPath, key)
	}
}

func TestUploadPolicy(t *testing.T) {
	p := UploadPolicy{MaxSize: 4, AllowedExts: []string{".pdf", ".docx"}}

	ext, err := p.CheckExt("CV.PDF")
	require.NoError(t, err)
	assert.Equal(t, ".pdf", ext)

	_, err = p.CheckExt("cv.exe")
	assert.ErrorIs(t, err, ErrFileExtension)

	_, err = io.ReadAll(p.Limit(strings.NewReader("1234")))
	assert.NoError(t, err)

	_, err = io.ReadAll(p.Limit(strings.NewReader("12345")))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}
