package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linweiyu/bugtrack-go/internal/api/middleware"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/internal/domain/project"
	"github.com/linweiyu/bugtrack-go/pkg/response"
	"github.com/linweiyu/bugtrack-go/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.List()
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, projects)
}

func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	p, err := h.svc.Get(id)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, p)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}

	var input project.CreateProjectDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.Create(actor, input)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, p)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	var input project.UpdateProjectDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.Update(actor, id, input)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, p)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	if err := h.svc.Delete(actor, id); err != nil {
		response.Err(c, err)
		return
	}
	response.Message(c, "project deleted")
}

func (h *ProjectHandler) ListVersions(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	versions, err := h.svc.ListVersions(id)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, versions)
}

func (h *ProjectHandler) CreateVersion(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	var input project.CreateVersionDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	v, err := h.svc.CreateVersion(actor, id, input)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, v)
}
