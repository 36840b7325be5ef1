package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lostfound-api/internal/service"
	resp "lostfound-api/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
	log   *zap.Logger
}

func NewUserHandler(users *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// Create is the admin-gated variant of registration.
func (h *UserHandler) Create(c *gin.Context) {
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

func (h *UserHandler) GetByUserName(c *gin.Context) {
	out, err := h.users.GetByUserName(c.Param("userName"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "user found", out)
}

func (h *UserHandler) List(c *gin.Context) {
	page, size := pageQuery(c)
	out, err := h.users.List(page, size)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "users fetched", out)
}

func (h *UserHandler) Edit(c *gin.Context) {
	var in service.UserEditInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.users.Edit(in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "user updated successfully", out)
}

func (h *UserHandler) Patch(c *gin.Context) {
	var in service.UserPatchInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.users.Patch(in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "user updated successfully", out)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Param("id")); err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "user deleted successfully", nil)
}
