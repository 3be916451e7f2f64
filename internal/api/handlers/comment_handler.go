package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linweiyu/bugtrack-go/internal/api/middleware"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/internal/domain/bug"
	"github.com/linweiyu/bugtrack-go/pkg/response"
	"github.com/linweiyu/bugtrack-go/pkg/utils"
)

type CommentHandler struct {
	svc *application.CommentService
}

func NewCommentHandler(svc *application.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	bugID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid bug id"})
		return
	}
	comments, err := h.svc.ListForBug(bugID)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, comments)
}

func (h *CommentHandler) AddComment(c *gin.Context) {
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

	var input bug.AddCommentDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.svc.Add(actor, bugID, input.Content)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
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
	commentID, err := utils.ParseIDParam(c, "comment_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid comment id"})
		return
	}

	if err := h.svc.Delete(actor, bugID, commentID); err != nil {
		response.Err(c, err)
		return
	}
	response.Message(c, "comment deleted")
}
