package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/pkg/response"
	"github.com/linweiyu/bugtrack-go/pkg/utils"
)

type StatsHandler struct {
	svc *application.StatsService
}

func NewStatsHandler(svc *application.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) ProjectSummary(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	summary, err := h.svc.ProjectSummary(id)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, summary)
}

func (h *StatsHandler) SystemSummary(c *gin.Context) {
	limit := utils.ParseQueryIntDefault(c, "top", 10)
	summary, err := h.svc.SystemSummary(limit)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, summary)
}
