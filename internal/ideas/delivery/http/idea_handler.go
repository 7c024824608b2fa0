package http

import (
	"errors"
	"net/http"

	"golang-stock-ideas/internal/ideas/dto"
	"golang-stock-ideas/internal/ideas/service"
	"golang-stock-ideas/pkg/apperror"
	"golang-stock-ideas/pkg/filestorage"
	"golang-stock-ideas/pkg/logger"

	"github.com/labstack/echo/v4"
)

// IdeaHandler handles HTTP requests for stock ideas.
type IdeaHandler struct {
	ideaService       service.IdeaService
	attachmentService service.AttachmentService
	logger            *logger.Logger
}

// NewIdeaHandler creates a new IdeaHandler.
func NewIdeaHandler(ideaService service.IdeaService, attachmentService service.AttachmentService, logger *logger.Logger) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService, attachmentService: attachmentService, logger: logger}
}

// RegisterRoutes registers the idea routes to the Echo group.
func (h *IdeaHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateIdea)
	g.GET("", h.ListIdeas)
	g.GET("/:id", h.GetIdea)
	g.PATCH("/:id", h.UpdateIdea)
	g.DELETE("/:id", h.DeleteIdea)
	g.POST("/:id/publish", h.PublishIdea)
	g.POST("/:id/archive", h.ArchiveIdea)
	g.POST("/:id/attachments/:kind", h.UploadAttachment)
}

// CreateIdea godoc
// @Summary Create a draft stock idea
// @Description Create a new stock idea in the DRAFT state
// @Tags ideas
// @Accept  json
// @Produce  json
// @Param   idea  body    dto.CreateIdeaRequest   true    "Idea to create"
// @Success 201 {object} dto.IdeaResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ideas [post]
func (h *IdeaHandler) CreateIdea(c echo.Context) error {
	var req dto.CreateIdeaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	resp, err := h.ideaService.CreateIdea(c.Request().Context(), &req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// ListIdeas godoc
// @Summary List stock ideas
// @Description List stock ideas, hiding archived ones unless asked for
// @Tags ideas
// @Produce  json
// @Param   includeArchived  query  bool    false  "Include archived ideas"
// @Param   state            query  string  false  "Filter by lifecycle state" Enums(DRAFT,PUBLISHED,AMENDED,ARCHIVED)
// @Param   term             query  string  false  "Filter by term" Enums(short,mid,long)
// @Param   pageSize         query  int     false  "Page size used against the store"
// @Success 200 {array} dto.IdeaResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ideas [get]
func (h *IdeaHandler) ListIdeas(c echo.Context) error {
	var query dto.ListIdeasQuery
	if err := c.Bind(&query); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters"})
	}

	ideas, err := h.ideaService.ListIdeas(c.Request().Context(), &query)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, ideas)
}

// GetIdea godoc
// @Summary Get a stock idea by ID
// @Description Get a single stock idea with its derived state and modified flags
// @Tags ideas
// @Produce  json
// @Param   id  path    string true    "Idea ID"
// @Success 200 {object} dto.IdeaResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ideas/{id} [get]
func (h *IdeaHandler) GetIdea(c echo.Context) error {
	resp, err := h.ideaService.GetIdea(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateIdea godoc
// @Summary Edit a stock idea
// @Description Apply a partial edit. Only changed fields are written to the store.
// @Tags ideas
// @Accept  json
// @Produce  json
// @Param   id    path    string                  true    "Idea ID"
// @Param   idea  body    dto.UpdateIdeaRequest   true    "Fields to change"
// @Success 200 {object} dto.IdeaResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ideas/{id} [patch]
func (h *IdeaHandler) UpdateIdea(c echo.Context) error {
	var req dto.UpdateIdeaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	resp, err := h.ideaService.UpdateIdea(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteIdea godoc
// @Summary Delete a stock idea
// @Description Remove a stock idea from the store. Deleting an unknown id succeeds.
// @Tags ideas
// @Param   id  path    string true    "Idea ID"
// @Success 204 {object} nil
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ideas/{id} [delete]
func (h *IdeaHandler) DeleteIdea(c echo.Context) error {
	if err := h.ideaService.DeleteIdea(c.Request().Context(), c.Param("id")); err != nil {
		return h.errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// PublishIdea godoc
// @Summary Publish a stock idea
// @Description Stamp the publish time and capture the baseline of a draft
// @Tags ideas
// @Produce  json
// @Param   id  path    string true    "Idea ID"
// @Success 200 {object} dto.IdeaResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ideas/{id}/publish [post]
func (h *IdeaHandler) PublishIdea(c echo.Context) error {
	resp, err := h.ideaService.PublishIdea(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ArchiveIdea godoc
// @Summary Archive a stock idea
// @Description Close a stock idea with its exit details
// @Tags ideas
// @Accept  json
// @Produce  json
// @Param   id    path    string                   true    "Idea ID"
// @Param   exit  body    dto.ArchiveIdeaRequest   true    "Exit details"
// @Success 200 {object} dto.IdeaResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ideas/{id}/archive [post]
func (h *IdeaHandler) ArchiveIdea(c echo.Context) error {
	var req dto.ArchiveIdeaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	resp, err := h.ideaService.ArchiveIdea(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// UploadAttachment godoc
// @Summary Attach an image or research report
// @Description Upload a file to storage and store its download URL on the idea
// @Tags ideas
// @Accept  mpfd
// @Produce  json
// @Param   id    path      string true  "Idea ID"
// @Param   kind  path      string true  "Attachment kind" Enums(image,report)
// @Param   file  formData  file   true  "File to upload"
// @Success 200 {object} dto.IdeaResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ideas/{id}/attachments/{kind} [post]
func (h *IdeaHandler) UploadAttachment(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing file", Field: "file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Failed to open uploaded file", logger.ErrorField(err))
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Unreadable file", Field: "file"})
	}
	defer file.Close()

	resp, err := h.attachmentService.Attach(c.Request().Context(), c.Param("id"), service.Attachment{
		Kind:        service.AttachmentKind(c.Param("kind")),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// errorResponse maps a service error to its HTTP status.
func (h *IdeaHandler) errorResponse(c echo.Context, err error) error {
	var validationErr *apperror.ValidationError

	switch {
	case errors.Is(err, apperror.ErrAlreadyPublished), errors.Is(err, apperror.ErrArchived):
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case apperror.IsNotFound(err):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationErr.Reason, Field: validationErr.Field})
	case errors.Is(err, filestorage.ErrDisabled):
		return c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "File storage is not configured"})
	case apperror.IsMapping(err), apperror.IsTransport(err):
		h.logger.ErrorContext(c.Request().Context(), "Document store failure", logger.ErrorField(err))
		return c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	default:
		h.logger.ErrorContext(c.Request().Context(), "Unhandled error", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}
