package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang-stock-ideas/internal/ideas/dto"
	"golang-stock-ideas/pkg/apperror"
	"golang-stock-ideas/pkg/common"
	"golang-stock-ideas/pkg/filestorage"
	"golang-stock-ideas/pkg/logger"
	"golang-stock-ideas/pkg/utils"
)

// AttachmentKind selects which URL field of an idea an upload fills.
type AttachmentKind string

const (
	AttachmentImage  AttachmentKind = "image"
	AttachmentReport AttachmentKind = "report"
)

const (
	MaxImageSize  int64 = 5 << 20
	MaxReportSize int64 = 20 << 20
)

// Attachment is an uploaded file destined for a stock idea.
type Attachment struct {
	Kind        AttachmentKind
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AttachmentService uploads images and research reports and links them to ideas.
type AttachmentService interface {
	Attach(ctx context.Context, id string, att Attachment) (*dto.IdeaResponse, error)
}

// NewAttachmentService creates a new attachment service.
func NewAttachmentService(uploader filestorage.Uploader, lifecycle LifecycleService, logger *logger.Logger) AttachmentService {
	return &attachmentService{
		uploader:  uploader,
		lifecycle: lifecycle,
		logger:    logger,
	}
}

type attachmentService struct {
	uploader  filestorage.Uploader
	lifecycle LifecycleService
	logger    *logger.Logger
}

// Attach validates the file, checks the idea exists and is not archived, uploads the file and stores its URL on the idea.
func (s *attachmentService) Attach(ctx context.Context, id string, att Attachment) (*dto.IdeaResponse, error) {
	prefix, err := validateAttachment(att)
	if err != nil {
		return nil, err
	}

	current, err := s.lifecycle.View(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.State == StateArchived {
		return nil, apperror.ErrArchived
	}

	result, err := s.uploader.Upload(ctx, filestorage.Object{
		Prefix:      prefix,
		Name:        att.FileName,
		ContentType: att.ContentType,
		Body:        io.LimitReader(att.Body, att.Size),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to upload attachment", logger.ErrorField(err), logger.StringField("id", id), logger.StringField("kind", string(att.Kind)))
		return nil, fmt.Errorf("failed to upload %s: %w", att.Kind, err)
	}

	changes := StockIdeaChanges{}
	if att.Kind == AttachmentImage {
		changes.ImageURL = utils.ToPointer(result.URL)
	} else {
		changes.ResearchReportURL = utils.ToPointer(result.URL)
	}

	view, err := s.lifecycle.Amend(ctx, id, changes)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to link attachment", logger.ErrorField(err), logger.StringField("id", id), logger.StringField("path", result.Path))
		return nil, err
	}
	return toIdeaResponse(view), nil
}

func validateAttachment(att Attachment) (string, error) {
	if att.Body == nil || att.Size <= 0 {
		return "", apperror.NewValidation("file", "is empty")
	}
	switch att.Kind {
	case AttachmentImage:
		if !strings.HasPrefix(att.ContentType, "image/") {
			return "", apperror.NewValidation("file", "only image files are allowed")
		}
		if att.Size > MaxImageSize {
			return "", apperror.NewValidation("file", "image must be 5MB or smaller")
		}
		return common.StoragePrefixImages, nil
	case AttachmentReport:
		if att.Size > MaxReportSize {
			return "", apperror.NewValidation("file", "research report must be 20MB or smaller")
		}
		return common.StoragePrefixReports, nil
	default:
		return "", apperror.NewValidation("kind", fmt.Sprintf("unknown attachment kind %q", att.Kind))
	}
}
