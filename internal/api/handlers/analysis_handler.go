package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linweiyu/bugtrack-go/internal/api/middleware"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/internal/domain/analysis"
	"github.com/linweiyu/bugtrack-go/pkg/response"
	"github.com/linweiyu/bugtrack-go/pkg/utils"
)

type AnalysisHandler struct {
	svc *application.AnalysisService
}

func NewAnalysisHandler(svc *application.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

func (h *AnalysisHandler) Submit(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}

	var input analysis.SubmitDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.svc.Submit(c.Request.Context(), actor, input)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, req)
}

func (h *AnalysisHandler) GetResults(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request id"})
		return
	}

	req, result, err := h.svc.Get(actor, id)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, gin.H{"request": req, "result": result})
}

func (h *AnalysisHandler) History(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}

	limit := utils.ParseQueryIntDefault(c, "limit", 0)
	requests, err := h.svc.History(actor, limit)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, requests)
}
