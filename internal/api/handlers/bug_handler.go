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

type BugHandler struct {
	svc *application.BugService
}

func NewBugHandler(svc *application.BugService) *BugHandler {
	return &BugHandler{svc: svc}
}

// ListBugs doubles as search: all filters plus the q parameter are
// optional.
func (h *BugHandler) ListBugs(c *gin.Context) {
	var filter bug.SearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	bugs, err := h.svc.List(filter)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, bugs)
}

func (h *BugHandler) GetBugByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid bug id"})
		return
	}
	b, err := h.svc.Get(id)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, b)
}

func (h *BugHandler) CreateBug(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}

	var input bug.CreateBugDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.svc.Create(actor, input)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, b)
}

func (h *BugHandler) UpdateBug(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid bug id"})
		return
	}

	var input bug.UpdateBugDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.svc.Update(actor, id, input)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, b)
}

func (h *BugHandler) ChangeStatus(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid bug id"})
		return
	}

	var input bug.ChangeStatusDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.svc.ChangeStatus(actor, id, input.Status)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, b)
}

func (h *BugHandler) DeleteBug(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid bug id"})
		return
	}

	if err := h.svc.Delete(actor, id); err != nil {
		response.Err(c, err)
		return
	}
	response.Message(c, "bug deleted")
}

func (h *BugHandler) MyBugs(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}

	reported, assigned, err := h.svc.MyBugs(actor)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, gin.H{"reported": reported, "assigned": assigned})
}
