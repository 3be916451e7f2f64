package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linweiyu/bugtrack-go/internal/api/middleware"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/internal/domain/user"
	"github.com/linweiyu/bugtrack-go/pkg/response"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.svc.Register(input)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, u)
}

func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.svc.Authenticate(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid username or password"})
		return
	}

	token, err := middleware.GenerateToken(u, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to issue token"})
		return
	}

	c.SetCookie("token", token, int((24 * time.Hour).Seconds()), "/", "", false, true)
	response.OK(c, gin.H{"token": token, "user": u})
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	response.Message(c, "logged out")
}

func (h *UserHandler) Profile(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}
	u, err := h.svc.Get(id.UserID)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, u)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
		return
	}

	var input user.UpdateProfileDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.svc.UpdateProfile(id, input)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, u)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.List()
	if err != nil {
		response.Err(c, err)
		return
	}
	response.OK(c, users)
}
