package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"improved resume.docx":   "improved_resume.docx",
		"Jane Doé (final)!.docx": "Jane_Do_final.docx",
		"../../etc/passwd":       "....etcpasswd",
		"cover_letter-2.docx":    "cover_letter-2.docx",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeFilename(in), in)
	}
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "0b6c1f7e/my_cv.docx", ObjectKey("0b6c1f7e", "my cv.docx"))
}

func TestUniqueName(t *testing.T) {
	a := UniqueName("cover_letter.docx")
	b := UniqueName("cover_letter.docx")
	assert.Regexp(t, `^cover_letter-[0-9a-f]{8}\.docx$`, a)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^notes-[0-9a-f]{8}$`, UniqueName("notes"))
}

func TestRetry(t *testing.T) {
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = 500 * time.Millisecond })

	calls := 0
	got, err := retry(context.Background(), 3, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)

	permanent := errors.New("permanent")
	calls = 0
	_, err = retry(context.Background(), 2, func() (int, error) {
		calls++
		return 0, permanent
	})
	assert.True(t, errors.Is(err, permanent))
	assert.Equal(t, 2, calls)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestRetry_StopsWhenCancelled(t *testing.T) {
	retryDelay = time.Hour
	t.Cleanup(func() { retryDelay = 500 * time.Millisecond })

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan error, 1)
	go func() {
		_, err := retry(ctx, 3, func() (int, error) {
			calls++
			return 0, errors.New("unavailable")
		})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Contains(t, err.Error(), "unavailable")
		assert.Equal(t, 1, calls)
	case <-time.After(5 * time.Second):
		t.Fatal("retry kept sleeping after cancellation")
	}
}

func TestDownloadURL_Presigns(t *testing.T) {
	client, err := NewR2(context.Background(), R2Config{
		AccountID: "acct123",
		Bucket:    "cv-files",
		AccessKey: "AKIDEXAMPLE",
		SecretKey: "secret",
	}, zap.NewNop())
	require.NoError(t, err)

	url, err := client.DownloadURL(context.Background(), "user-1/cv.docx")
	require.NoError(t, err)
	assert.Contains(t, url, "acct123.r2.cloudflarestorage.com")
	assert.Contains(t, url, "user-1/cv.docx")
	assert.Contains(t, url, "X-Amz-Expires=3600")
	assert.Contains(t, url, "X-Amz-Signature=")
}
