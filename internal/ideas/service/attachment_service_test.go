package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"golang-stock-ideas/pkg/apperror"
	"golang-stock-ideas/pkg/common"
	"golang-stock-ideas/pkg/filestorage"
	"golang-stock-ideas/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	objects []filestorage.Object
	bodies  []string
	err     error
}

func (u *fakeUploader) Upload(_ context.Context, obj filestorage.Object) (*filestorage.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	b, _ := io.ReadAll(obj.Body)
	u.objects = append(u.objects, obj)
	u.bodies = append(u.bodies, string(b))
	path := obj.Prefix + filestorage.SanitizeFileName(obj.Name)
	return &filestorage.UploadResult{Path: path, URL: "https://files.example/" + path}, nil
}

func TestAttach_Image(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.createDraft(t)
	uploader := &fakeUploader{}
	svc := NewAttachmentService(uploader, f.lifecycle, logger.NewNop())

	resp, err := svc.Attach(ctx, draft.ID, Attachment{
		Kind:        AttachmentImage,
		FileName:    "chart 1.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("\x89PNG"),
	})
	require.NoError(t, err)

	require.Len(t, uploader.objects, 1)
	assert.Equal(t, common.StoragePrefixImages, uploader.objects[0].Prefix)
	assert.Equal(t, "\x89PNG", uploader.bodies[0])
	require.NotNil(t, resp.ImageURL)
	assert.Equal(t, "https://files.example/stock-images/chart_1.png", *resp.ImageURL)
	assert.Nil(t, resp.ResearchReportURL)
}

func TestAttach_Report(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.createDraft(t)
	svc := NewAttachmentService(&fakeUploader{}, f.lifecycle, logger.NewNop())

	resp, err := svc.Attach(ctx, draft.ID, Attachment{
		Kind:        AttachmentReport,
		FileName:    "q4.pdf",
		ContentType: "application/pdf",
		Size:        3,
		Body:        strings.NewReader("pdf"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ResearchReportURL)
	assert.Equal(t, "https://files.example/research-reports/q4.pdf", *resp.ResearchReportURL)
}

func TestAttach_Validation(t *testing.T) {
	tests := map[string]Attachment{
		"not an image":     {Kind: AttachmentImage, ContentType: "application/pdf", Size: 10, Body: strings.NewReader("x")},
		"image too large":  {Kind: AttachmentImage, ContentType: "image/jpeg", Size: MaxImageSize + 1, Body: strings.NewReader("x")},
		"report too large": {Kind: AttachmentReport, ContentType: "application/pdf", Size: MaxReportSize + 1, Body: strings.NewReader("x")},
		"empty":            {Kind: AttachmentImage, ContentType: "image/png", Size: 0, Body: strings.NewReader("")},
		"unknown kind":     {Kind: "video", ContentType: "video/mp4", Size: 10, Body: strings.NewReader("x")},
	}
	for name, att := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			draft := f.createDraft(t)
			uploader := &fakeUploader{}
			svc := NewAttachmentService(uploader, f.lifecycle, logger.NewNop())

			_, err := svc.Attach(context.Background(), draft.ID, att)
			assert.True(t, apperror.IsValidation(err), err)
			assert.Empty(t, uploader.objects)
		})
	}
}

func TestAttach_UnknownIdeaDoesNotUpload(t *testing.T) {
	f := newFixture(t)
	uploader := &fakeUploader{}
	svc := NewAttachmentService(uploader, f.lifecycle, logger.NewNop())

	_, err := svc.Attach(context.Background(), "missing", Attachment{
		Kind: AttachmentImage, ContentType: "image/png", Size: 1, Body: strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Empty(t, uploader.objects)
}

func TestAttach_ArchivedDoesNotUpload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	draft := f.createDraft(t)
	_, err := f.lifecycle.Archive(ctx, draft.ID, ExitDetails{ExitPrice: 120.5, ExitDate: "2024-01-01", ExitTime: "10:30"})
	require.NoError(t, err)
	updatesBefore := f.repo.updateCount()

	uploader := &fakeUploader{}
	svc := NewAttachmentService(uploader, f.lifecycle, logger.NewNop())

	_, err = svc.Attach(ctx, draft.ID, Attachment{
		Kind: AttachmentImage, ContentType: "image/png", Size: 1, Body: strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, apperror.ErrArchived)
	assert.Empty(t, uploader.objects)
	assert.Equal(t, updatesBefore, f.repo.updateCount())
}

func TestAttach_UploadFailure(t *testing.T) {
	f := newFixture(t)
	draft := f.createDraft(t)
	svc := NewAttachmentService(&fakeUploader{err: errors.New("quota exceeded")}, f.lifecycle, logger.NewNop())

	_, err := svc.Attach(context.Background(), draft.ID, Attachment{
		Kind: AttachmentImage, ContentType: "image/png", Size: 1, Body: strings.NewReader("x"),
	})
	assert.ErrorContains(t, err, "quota exceeded")
	assert.Zero(t, f.repo.updateCount())
}
