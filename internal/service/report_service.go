package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"lostfound-api/internal/apperr"
	"lostfound-api/internal/core/cache"
	"lostfound-api/internal/domain"
	"lostfound-api/internal/storage"
	"lostfound-api/pkg/utils"
)

const reportCacheTTL = 5 * time.Minute

type ReportService struct {
	reports domain.ReportRepository
	users   domain.UserRepository
	images  storage.ImageStore
	cache   *cache.Cache // optional, nil disables caching
	log     *zap.Logger
}

func NewReportService(reports domain.ReportRepository, users domain.UserRepository, images storage.ImageStore, c *cache.Cache, log *zap.Logger) *ReportService {
	return &ReportService{reports: reports, users: users, images: images, cache: c, log: log}
}

// Create files a report together with its embedded item. When an image is
// attached it is uploaded first; both inserts then run in one transaction so
// a failure cannot leave an orphaned item. A report without an image is still
// persisted, with an empty image URL.
func (s *ReportService) Create(ctx context.Context, in ReportCreateInput) (*ReportResponse, error) {
	switch {
	case strings.TrimSpace(in.Title) == "",
		strings.TrimSpace(in.Description) == "",
		strings.TrimSpace(in.UserID) == "":
		return nil, apperr.Invalid("title, description and userId are required")
	case strings.TrimSpace(in.Item.Name) == "":
		return nil, apperr.Invalid("item name is required")
	case !in.Type.Valid():
		return nil, apperr.Invalid("type must be lost or found")
	case !in.Item.Category.Valid():
		return nil, apperr.Invalid("unknown item category")
	}

	// The reporting user is resolved before the upload; a bad userId must not
	// leave an orphaned object in the bucket.
	owner, err := s.users.FindByID(in.UserID)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if owner == nil {
		return nil, apperr.NotFound("user not found")
	}

	var imageURL string
	if in.Image != nil {
		url, err := s.images.UploadImage(ctx, in.Image.Name, in.Image.Reader, in.Image.Size, in.Image.ContentType)
		if err != nil || url == "" {
			return nil, apperr.Upstream("image upload failed", err)
		}
		imageURL = url
	}

	status := domain.ItemStatusLost
	now := time.Now()
	item := &domain.Item{
		ID:           utils.NewID(),
		Name:         in.Item.Name,
		Category:     in.Item.Category,
		Description:  in.Item.Description,
		SerialNumber: in.Item.SerialNumber,
		ImageURL:     imageURL,
		UserID:       in.UserID,
	}
	if in.Type == domain.ReportFound {
		status = domain.ItemStatusFound
		item.DateFound = &now
	} else {
		item.DateLost = &now
	}
	item.Status = status

	report := &domain.Report{
		ID:          utils.NewID(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		UserID:      in.UserID,
	}
	if err := s.reports.CreateWithItem(item, report); err != nil {
		return nil, apperr.Internal("create report failed", err)
	}
	s.log.Info("report created",
		zap.String("report_id", report.ID),
		zap.String("item_id", item.ID),
		zap.Bool("has_image", imageURL != ""),
	)
	report.Item = item
	return toReportResponse(report), nil
}

func (s *ReportService) GetByID(ctx context.Context, id string) (*ReportResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Invalid("report id is required")
	}
	load := func(ctx context.Context) (*ReportResponse, error) {
		r, err := s.reports.FindByID(id)
		if err != nil {
			return nil, apperr.Internal("fetch report failed", err)
		}
		return toReportResponse(r), nil
	}

	var out *ReportResponse
	var err error
	if s.cache != nil {
		out, err = cache.GetOrLoadJSON(s.cache, ctx, reportCacheKey(id), reportCacheTTL, load)
	} else {
		out, err = load(ctx)
	}
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, apperr.NotFound("report not found")
	}
	return out, nil
}

func (s *ReportService) List(page, size int) (*PagedResult[ReportResponse], error) {
	page, size, offset := normalizePage(page, size)
	reports, total, err := s.reports.List(offset, size)
	if err != nil {
		return nil, apperr.Internal("list reports failed", err)
	}
	list := make([]ReportResponse, 0, len(reports))
	for i := range reports {
		list = append(list, *toReportResponse(&reports[i]))
	}
	return &PagedResult[ReportResponse]{List: list, Total: total, Page: page, Size: size}, nil
}

func (s *ReportService) Update(ctx context.Context, id string, in ReportUpdateInput) (*ReportResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Invalid("report id is required")
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, apperr.Invalid("title and description are required")
	}
	if !in.Type.Valid() {
		return nil, apperr.Invalid("type must be lost or found")
	}
	r, err := s.reports.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("fetch report failed", err)
	}
	if r == nil {
		return nil, apperr.NotFound("report not found")
	}
	r.Title = in.Title
	r.Description = in.Description
	r.Type = in.Type
	if in.UserID != "" {
		r.UserID = in.UserID
	}
	if err := s.reports.Update(r); err != nil {
		return nil, apperr.Internal("update report failed", err)
	}
	s.invalidate(ctx, id)
	return toReportResponse(r), nil
}

// Delete is idempotent: deleting an unknown id succeeds and changes nothing.
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Invalid("report id is required")
	}
	if err := s.reports.Delete(id); err != nil {
		return apperr.Internal("delete report failed", err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ReportService) Search(keyword string) ([]ReportResponse, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, apperr.Invalid("keyword cannot be empty")
	}
	matched, err := s.reports.Search(keyword)
	if err != nil {
		return nil, apperr.Internal("search reports failed", err)
	}
	if len(matched) == 0 {
		return nil, apperr.NotFound("no reports found matching the search criteria")
	}
	list := make([]ReportResponse, 0, len(matched))
	for i := range matched {
		list = append(list, *toReportResponse(&matched[i]))
	}
	return list, nil
}

func (s *ReportService) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, reportCacheKey(id))
	}
}

func reportCacheKey(id string) string { return "report:" + id }
