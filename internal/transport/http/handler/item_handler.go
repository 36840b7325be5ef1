package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lostfound-api/internal/service"
	resp "lostfound-api/internal/transport/http/response"
)

type ItemHandler struct {
	items *service.ItemService
	log   *zap.Logger
}

func NewItemHandler(items *service.ItemService, log *zap.Logger) *ItemHandler {
	return &ItemHandler{items: items, log: log}
}

func (h *ItemHandler) Create(c *gin.Context) {
	var in service.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.items.Create(in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.Created(c, "item created successfully", out)
}

func (h *ItemHandler) GetByID(c *gin.Context) {
	out, err := h.items.GetByID(c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "item found", out)
}

func (h *ItemHandler) List(c *gin.Context) {
	page, size := pageQuery(c)
	out, err := h.items.List(page, size)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "items fetched", out)
}

func (h *ItemHandler) Update(c *gin.Context) {
	var in service.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.items.Update(c.Param("id"), in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "item updated successfully", out)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	if err := h.items.Delete(c.Param("id")); err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "item deleted successfully", nil)
}

func (h *ItemHandler) Search(c *gin.Context) {
	out, err := h.items.Search(c.Query("query"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "search successful", out)
}
