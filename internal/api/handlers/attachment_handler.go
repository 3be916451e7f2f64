package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linweiyu/bugtrack-go/internal/api/middleware"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/pkg/response"
	"github.com/linweiyu/bugtrack-go/pkg/utils"
)

type AttachmentHandler struct {
	svc *application.AttachmentService
}

func NewAttachmentHandler(svc *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	bugID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid bug id"})
		return
	}
	attachments, err := h.svc.ListForBug(bugID)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, attachments)
}

func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}
	bugID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid bug id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	attachment, err := h.svc.Upload(c.Request.Context(), actor, bugID, file, fileHeader.Size, fileHeader.Filename)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, attachment)
}

func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	bugID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid bug id"})
		return
	}
	attachmentID, err := utils.ParseIDParam(c, "attachment_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid attachment id"})
		return
	}

	attachment, rc, err := h.svc.Open(c.Request.Context(), bugID, attachmentID)
	if err != nil {
		response.Err(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+attachment.Filename+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}
	bugID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid bug id"})
		return
	}
	attachmentID, err := utils.ParseIDParam(c, "attachment_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid attachment id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), actor, bugID, attachmentID); err != nil {
		response.Err(c, err)
		return
	}
	response.Message(c, "attachment deleted")
}
