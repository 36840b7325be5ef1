package service

import (
	"io"
	"time"

	"lostfound-api/internal/domain"
)

// Request shapes bound by the handlers. Responses subset the entities so
// password hashes, lockout state and raw associations never leak.

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
	Roles []string    `json:"roles"`
}

type UserSummary struct {
	ID          string `json:"id"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

func toUserSummary(u *domain.User) UserSummary {
	return UserSummary{
		ID:          u.ID,
		UserName:    u.UserName,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
	}
}

type UserEditInput struct {
	ID          string `json:"id" binding:"required"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// UserPatchInput carries only the fields present in the request body.
type UserPatchInput struct {
	ID          string  `json:"id" binding:"required"`
	UserName    *string `json:"userName"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
}

// ImageFile is the uploaded file stream handed to the image store. The
// reader is scoped to the request and closed by the caller.
type ImageFile struct {
	Name        string
	Reader      io.Reader
	Size        int64
	ContentType string
}

type ItemInput struct {
	Name         string              `json:"name"`
	Category     domain.ItemCategory `json:"category"`
	Description  string              `json:"description"`
	SerialNumber string              `json:"serialNumber"`
	UserID       string              `json:"userId"`
}

type ItemResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Category     domain.ItemCategory `json:"category"`
	Description  string              `json:"description"`
	SerialNumber string              `json:"serialNumber,omitempty"`
	ImageURL     string              `json:"imageUrl,omitempty"`
	Status       string              `json:"status"`
	DateLost     *time.Time          `json:"dateLost,omitempty"`
	DateFound    *time.Time          `json:"dateFound,omitempty"`
}

func toItemResponse(i *domain.Item) *ItemResponse {
	if i == nil {
		return nil
	}
	return &ItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		Description:  i.Description,
		SerialNumber: i.SerialNumber,
		ImageURL:     i.ImageURL,
		Status:       i.Status,
		DateLost:     i.DateLost,
		DateFound:    i.DateFound,
	}
}

type ReportCreateInput struct {
	Title       string
	Description string
	Type        domain.ReportType
	UserID      string
	Item        ItemInput
	Image       *ImageFile // optional
}

type ReportUpdateInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        domain.ReportType `json:"type"`
	UserID      string            `json:"userId"`
}

type ReportResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        domain.ReportType `json:"type"`
	CreatedAt   time.Time         `json:"createdAt"`
	User        *UserSummary      `json:"user,omitempty"`
	Item        *ItemResponse     `json:"item,omitempty"`
}

func toReportResponse(r *domain.Report) *ReportResponse {
	if r == nil {
		return nil
	}
	out := &ReportResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		CreatedAt:   r.CreatedAt,
		Item:        toItemResponse(r.Item),
	}
	if r.User != nil {
		s := toUserSummary(r.User)
		out.User = &s
	}
	return out
}

type ClaimInput struct {
	UserID      string `json:"userId"`
	ItemID      string `json:"itemId"`
	ClaimReason string `json:"claimReason"`
}

type ClaimResponse struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	ItemID      string       `json:"itemId"`
	ItemName    string       `json:"itemName"`
	ClaimReason string       `json:"claimReason"`
	ClaimDate   time.Time    `json:"claimDate"`
	Status      string       `json:"status"`
	User        *UserSummary `json:"user,omitempty"`
}

func toClaimResponse(c *domain.Claim) *ClaimResponse {
	if c == nil {
		return nil
	}
	out := &ClaimResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		ItemID:      c.ItemID,
		ItemName:    c.ItemName,
		ClaimReason: c.ClaimReason,
		ClaimDate:   c.ClaimDate,
		Status:      c.Status,
	}
	if c.User != nil {
		s := toUserSummary(c.User)
		out.User = &s
	}
	return out
}

// PagedResult wraps list payloads.
type PagedResult[T any] struct {
	List  []T   `json:"list"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

func normalizePage(page, size int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return page, size, (page - 1) * size
}
