package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lostfound-api/internal/service"
	resp "lostfound-api/internal/transport/http/response"
)

type ClaimHandler struct {
	claims *service.ClaimService
	log    *zap.Logger
}

func NewClaimHandler(claims *service.ClaimService, log *zap.Logger) *ClaimHandler {
	return &ClaimHandler{claims: claims, log: log}
}

func (h *ClaimHandler) Create(c *gin.Context) {
	// Claims arrive either as JSON or as a multipart form.
	in := service.ClaimInput{
		UserID:      c.PostForm("userId"),
		ItemID:      c.PostForm("itemId"),
		ClaimReason: c.PostForm("claimReason"),
	}
	if in.UserID == "" && in.ItemID == "" && in.ClaimReason == "" {
		if err := c.ShouldBindJSON(&in); err != nil {
			resp.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	out, err := h.claims.Create(in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.Created(c, "claim created successfully", out)
}

func (h *ClaimHandler) List(c *gin.Context) {
	page, size := pageQuery(c)
	out, err := h.claims.List(page, size)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "claims fetched successfully", out)
}

func (h *ClaimHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("Id")
	}
	if err := h.claims.Delete(id); err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "claim deleted successfully", nil)
}

// SetStatus is the admin moderation endpoint.
func (h *ClaimHandler) SetStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.claims.SetStatus(c.Param("id"), in.Status)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "claim updated successfully", out)
}
