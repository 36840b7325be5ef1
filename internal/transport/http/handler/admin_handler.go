package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lostfound-api/internal/domain"
	"lostfound-api/internal/service"
	resp "lostfound-api/internal/transport/http/response"
)

// AdminHandler serves the back-office: user listing/ban and the claim
// moderation queue. Listing queries go straight to gorm because the filters
// (q, with_deleted) are back-office-only concerns.
type AdminHandler struct {
	db     *gorm.DB
	claims *service.ClaimService
	log    *zap.Logger
}

func NewAdminHandler(db *gorm.DB, claims *service.ClaimService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{db: db, claims: claims, log: log}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var in struct {
		Offset      int    `form:"offset,default=0"`
		Limit       int    `form:"limit,default=20"`
		Q           string `form:"q"`
		WithDeleted bool   `form:"with_deleted"`
	}
	if err := c.ShouldBindQuery(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 20
	}

	q := h.db.WithContext(c).Model(&domain.User{})
	if in.WithDeleted {
		q = q.Unscoped()
	}
	if s := strings.TrimSpace(in.Q); s != "" {
		like := "%" + s + "%"
		q = q.Where("email LIKE ? OR user_name LIKE ? OR first_name LIKE ? OR last_name LIKE ?",
			like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		h.log.Error("count users failed", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	var users []domain.User
	if err := q.Order("created_at DESC").Limit(in.Limit).Offset(in.Offset).Find(&users).Error; err != nil {
		h.log.Error("list users failed", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}

	type row struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		UserName  string    `json:"userName"`
		FirstName string    `json:"firstName"`
		LastName  string    `json:"lastName"`
		CreatedAt time.Time `json:"createdAt"`
	}
	items := make([]row, 0, len(users))
	for _, u := range users {
		items = append(items, row{
			ID: u.ID, Email: u.Email, UserName: u.UserName,
			FirstName: u.FirstName, LastName: u.LastName, CreatedAt: u.CreatedAt,
		})
	}
	resp.OK(c, "users fetched", gin.H{"total": total, "items": items})
}

// BanUser soft-deletes the account.
func (h *AdminHandler) BanUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		resp.Error(c, http.StatusBadRequest, "missing id")
		return
	}
	res := h.db.WithContext(c).Where("id = ?", id).Delete(&domain.User{})
	if res.Error != nil {
		h.log.Error("ban user failed", zap.Error(res.Error))
		resp.Error(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if res.RowsAffected == 0 {
		resp.Error(c, http.StatusNotFound, "user not found")
		return
	}
	resp.OK(c, "user banned", gin.H{"id": id})
}

// ListClaims is the moderation queue, filterable by status.
func (h *AdminHandler) ListClaims(c *gin.Context) {
	page, size := pageQuery(c)
	out, err := h.claims.ListByStatus(c.Query("status"), page, size)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	resp.OK(c, "claims fetched successfully", out)
}
