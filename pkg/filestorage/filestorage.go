package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"time"
)

// DefaultDownloadBaseURL is the public Firebase Storage download endpoint.
const DefaultDownloadBaseURL = "https://firebasestorage.googleapis.com"

// ErrDisabled is returned by the uploader used when no storage is configured.
var ErrDisabled = errors.New("file storage is not configured")

// Object is a blob to upload.
type Object struct {
	// Prefix is the folder, e.g. "stock-images/".
	Prefix string
	// Name is the original file name. It is sanitized and prefixed with a timestamp.
	Name        string
	ContentType string
	Body        io.Reader
}

// UploadResult describes a stored object.
type UploadResult struct {
	Path string
	URL  string
}

// Uploader stores blobs and hands back a durable download URL.
type Uploader interface {
	Upload(ctx context.Context, obj Object) (*UploadResult, error)
}

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// SanitizeFileName replaces every character outside [a-zA-Z0-9.-] with an underscore.
func SanitizeFileName(name string) string {
	if name == "" {
		return "file"
	}
	return unsafeFileNameChars.ReplaceAllString(name, "_")
}

// ObjectPath builds "<prefix><unix millis>_<sanitized name>".
func ObjectPath(prefix, name string, now time.Time) string {
	return fmt.Sprintf("%s%d_%s", prefix, now.UnixMilli(), SanitizeFileName(name))
}

// DownloadURL builds the token-authorized download URL of an object.
func DownloadURL(baseURL, bucket, path, token string) string {
	if baseURL == "" {
		baseURL = DefaultDownloadBaseURL
	}
	return fmt.Sprintf("%s/v0/b/%s/o/%s?alt=media&token=%s",
		baseURL, bucket, url.PathEscape(path), url.QueryEscape(token))
}

type disabledUploader struct{}

// NewDisabledUploader returns an Uploader that always fails with ErrDisabled.
func NewDisabledUploader() Uploader {
	return disabledUploader{}
}

func (disabledUploader) Upload(context.Context, Object) (*UploadResult, error) {
	return nil, ErrDisabled
}
