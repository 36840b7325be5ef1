package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lostfound-api/internal/service"
	resp "lostfound-api/internal/transport/http/response"
)

type AuthHandler struct {
	users *service.UserService
	log   *zap.Logger
}

func NewAuthHandler(users *service.UserService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, log: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.users.Register(in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.Created(c, "user created successfully", out)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in service.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.users.Login(in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "login successful", out)
}
