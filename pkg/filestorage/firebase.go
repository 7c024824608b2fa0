package filestorage

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang-stock-ideas/pkg/logger"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const downloadTokenMetadataKey = "firebaseStorageDownloadTokens"

// Config holds the Firebase Storage settings.
type Config struct {
	CredentialsFile string
	Bucket          string
	DownloadBaseURL string
}

type firebaseUploader struct {
	bucket     *storage.BucketHandle
	bucketName string
	baseURL    string
	logger     *logger.Logger
	now        func() time.Time
}

// NewFirebaseUploader initializes a Firebase app and returns an Uploader for its storage bucket.
func NewFirebaseUploader(ctx context.Context, cfg Config, log *logger.Logger) (Uploader, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: cfg.Bucket}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting storage client: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("error getting storage bucket: %w", err)
	}

	log.Info("Firebase Storage initialized", logger.StringField("bucket", cfg.Bucket))
	return &firebaseUploader{
		bucket:     bucket,
		bucketName: cfg.Bucket,
		baseURL:    cfg.DownloadBaseURL,
		logger:     log,
		now:        time.Now,
	}, nil
}

// Upload writes the object with a fresh download token and returns its download URL.
func (u *firebaseUploader) Upload(ctx context.Context, obj Object) (*UploadResult, error) {
	path := ObjectPath(obj.Prefix, obj.Name, u.now())
	token := uuid.NewString()

	w := u.bucket.Object(path).NewWriter(ctx)
	w.ContentType = obj.ContentType
	w.Metadata = map[string]string{downloadTokenMetadataKey: token}

	if _, err := io.Copy(w, obj.Body); err != nil {
		_ = w.Close()
		u.logger.ErrorContext(ctx, "Failed to write object", logger.ErrorField(err), logger.StringField("path", path))
		return nil, fmt.Errorf("failed to upload %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		u.logger.ErrorContext(ctx, "Failed to finalize object", logger.ErrorField(err), logger.StringField("path", path))
		return nil, fmt.Errorf("failed to upload %s: %w", path, err)
	}

	u.logger.InfoContext(ctx, "Object uploaded", logger.StringField("path", path))
	return &UploadResult{
		Path: path,
		URL:  DownloadURL(u.baseURL, u.bucketName, path, token),
	}, nil
}
