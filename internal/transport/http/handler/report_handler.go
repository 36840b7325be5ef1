package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lostfound-api/internal/domain"
	"lostfound-api/internal/service"
	resp "lostfound-api/internal/transport/http/response"
)

type ReportHandler struct {
	reports *service.ReportService
	log     *zap.Logger
}

func NewReportHandler(reports *service.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, log: log}
}

// Create consumes a multipart form: report fields plus the embedded item and
// an optional image file under "item.image".
func (h *ReportHandler) Create(c *gin.Context) {
	in := service.ReportCreateInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Type:        domain.ReportType(c.PostForm("type")),
		UserID:      c.PostForm("userId"),
		Item: service.ItemInput{
			Name:         c.PostForm("item.name"),
			Category:     domain.ItemCategory(c.PostForm("item.category")),
			Description:  c.PostForm("item.description"),
			SerialNumber: c.PostForm("item.serialNumber"),
		},
	}

	if fh, err := c.FormFile("item.image"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			resp.Error(c, http.StatusBadRequest, "cannot read uploaded image")
			return
		}
		defer f.Close()
		in.Image = &service.ImageFile{
			Name:        fh.Filename,
			Reader:      f,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
		}
	}

	out, err := h.reports.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.Created(c, "report created successfully", out)
}

func (h *ReportHandler) GetByID(c *gin.Context) {
	out, err := h.reports.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "report found", out)
}

func (h *ReportHandler) List(c *gin.Context) {
	page, size := pageQuery(c)
	out, err := h.reports.List(page, size)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "reports fetched", out)
}

func (h *ReportHandler) Update(c *gin.Context) {
	var in service.ReportUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.reports.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "report updated successfully", out)
}

func (h *ReportHandler) Delete(c *gin.Context) {
	if err := h.reports.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "report deleted successfully", nil)
}

func (h *ReportHandler) Search(c *gin.Context) {
	out, err := h.reports.Search(c.Query("query"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "search successful", out)
}
