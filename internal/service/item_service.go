package service

import (
	"strings"

	"go.uber.org/zap"

	"lostfound-api/internal/apperr"
	"lostfound-api/internal/domain"
	"lostfound-api/pkg/utils"
)

type ItemService struct {
	items domain.ItemRepository
	log   *zap.Logger
}

func NewItemService(items domain.ItemRepository, log *zap.Logger) *ItemService {
	return &ItemService{items: items, log: log}
}

// Create registers an item standalone (outside the report flow).
func (s *ItemService) Create(in ItemInput) (*ItemResponse, error) {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return nil, apperr.Invalid("item name is required")
	case strings.TrimSpace(in.UserID) == "":
		return nil, apperr.Invalid("userId is required")
	case !in.Category.Valid():
		return nil, apperr.Invalid("unknown item category")
	}
	item := &domain.Item{
		ID:           utils.NewID(),
		Name:         in.Name,
		Category:     in.Category,
		Description:  in.Description,
		SerialNumber: in.SerialNumber,
		Status:       domain.ItemStatusLost,
		UserID:       in.UserID,
	}
	if err := s.items.Create(item); err != nil {
		return nil, apperr.Internal("create item failed", err)
	}
	return toItemResponse(item), nil
}

func (s *ItemService) GetByID(id string) (*ItemResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Invalid("item id is required")
	}
	item, err := s.items.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("fetch item failed", err)
	}
	if item == nil {
		return nil, apperr.NotFound("item not found")
	}
	return toItemResponse(item), nil
}

func (s *ItemService) List(page, size int) (*PagedResult[ItemResponse], error) {
	page, size, offset := normalizePage(page, size)
	items, total, err := s.items.List(offset, size)
	if err != nil {
		return nil, apperr.Internal("list items failed", err)
	}
	list := make([]ItemResponse, 0, len(items))
	for i := range items {
		list = append(list, *toItemResponse(&items[i]))
	}
	return &PagedResult[ItemResponse]{List: list, Total: total, Page: page, Size: size}, nil
}

func (s *ItemService) Update(id string, in ItemInput) (*ItemResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Invalid("item id is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Invalid("item name is required")
	}
	if !in.Category.Valid() {
		return nil, apperr.Invalid("unknown item category")
	}
	item, err := s.items.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("fetch item failed", err)
	}
	if item == nil {
		return nil, apperr.NotFound("item not found")
	}
	item.Name = in.Name
	item.Category = in.Category
	item.Description = in.Description
	item.SerialNumber = in.SerialNumber
	if err := s.items.Update(item); err != nil {
		return nil, apperr.Internal("update item failed", err)
	}
	return toItemResponse(item), nil
}

// Delete is idempotent: deleting an unknown id succeeds and changes nothing.
func (s *ItemService) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Invalid("item id is required")
	}
	if err := s.items.Delete(id); err != nil {
		return apperr.Internal("delete item failed", err)
	}
	return nil
}

func (s *ItemService) Search(keyword string) ([]ItemResponse, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, apperr.Invalid("keyword cannot be empty")
	}
	matched, err := s.items.Search(keyword)
	if err != nil {
		return nil, apperr.Internal("search items failed", err)
	}
	if len(matched) == 0 {
		return nil, apperr.NotFound("no items found matching the search criteria")
	}
	list := make([]ItemResponse, 0, len(matched))
	for i := range matched {
		list = append(list, *toItemResponse(&matched[i]))
	}
	return list, nil
}
