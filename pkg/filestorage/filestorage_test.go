package filestorage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := map[string]string{
		"chart.png":          "chart.png",
		"my chart (1).png":   "my_chart__1_.png",
		"report-Q1_2024.pdf": "report-Q1_2024.pdf",
		"résumé.pdf":         "r_sum_.pdf",
		"":                   "file",
		"../../etc/passwd":   ".._.._etc_passwd",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeFileName(in), in)
	}
}

func TestObjectPath(t *testing.T) {
	now := time.UnixMilli(1704067200123)
	assert.Equal(t, "stock-images/1704067200123_my_chart.png", ObjectPath("stock-images/", "my chart.png", now))
}

func TestDownloadURL(t *testing.T) {
	got := DownloadURL("", "demo.appspot.com", "stock-images/1_a.png", "tok-1")
	assert.Equal(t, "https://firebasestorage.googleapis.com/v0/b/demo.appspot.com/o/stock-images%2F1_a.png?alt=media&token=tok-1", got)
}

func TestDisabledUploader(t *testing.T) {
	_, err := NewDisabledUploader().Upload(context.Background(), Object{})
	assert.ErrorIs(t, err, ErrDisabled)
}
