package service

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"lostfound-api/internal/apperr"
	"lostfound-api/internal/domain"
	"lostfound-api/pkg/utils"
)

type ClaimService struct {
	claims domain.ClaimRepository
	items  domain.ItemRepository
	log    *zap.Logger
}

func NewClaimService(claims domain.ClaimRepository, items domain.ItemRepository, log *zap.Logger) *ClaimService {
	return &ClaimService{claims: claims, items: items, log: log}
}

func (s *ClaimService) Create(in ClaimInput) (*ClaimResponse, error) {
	switch {
	case strings.TrimSpace(in.UserID) == "":
		return nil, apperr.Invalid("userId is required")
	case strings.TrimSpace(in.ItemID) == "":
		return nil, apperr.Invalid("itemId is required")
	case strings.TrimSpace(in.ClaimReason) == "":
		return nil, apperr.Invalid("claimReason is required")
	}
	item, err := s.items.FindByID(in.ItemID)
	if err != nil {
		return nil, apperr.Internal("fetch item failed", err)
	}
	if item == nil {
		return nil, apperr.NotFound("item not found")
	}

	claim := &domain.Claim{
		ID:          utils.NewID(),
		UserID:      in.UserID,
		ItemID:      in.ItemID,
		ItemName:    item.Name,
		ClaimReason: in.ClaimReason,
		ClaimDate:   time.Now().UTC().Truncate(24 * time.Hour), // submission day
		Status:      domain.ClaimPending,
	}
	if err := s.claims.Create(claim); err != nil {
		return nil, apperr.Internal("create claim failed", err)
	}
	s.log.Info("claim created",
		zap.String("claim_id", claim.ID),
		zap.String("item_id", claim.ItemID),
	)
	return toClaimResponse(claim), nil
}

func (s *ClaimService) List(page, size int) (*PagedResult[ClaimResponse], error) {
	page, size, offset := normalizePage(page, size)
	claims, total, err := s.claims.List(offset, size)
	if err != nil {
		return nil, apperr.Internal("list claims failed", err)
	}
	return s.paged(claims, total, page, size), nil
}

func (s *ClaimService) ListByStatus(status string, page, size int) (*PagedResult[ClaimResponse], error) {
	if status == "" {
		return s.List(page, size)
	}
	page, size, offset := normalizePage(page, size)
	claims, total, err := s.claims.ListByStatus(status, offset, size)
	if err != nil {
		return nil, apperr.Internal("list claims failed", err)
	}
	return s.paged(claims, total, page, size), nil
}

// Delete fails with not-found for an unknown id; claim deletion is the one
// delete that is not idempotent.
func (s *ClaimService) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Invalid("claim id is required")
	}
	ok, err := s.claims.Delete(id)
	if err != nil {
		return apperr.Internal("delete claim failed", err)
	}
	if !ok {
		return apperr.NotFound("claim not found")
	}
	return nil
}

// SetStatus moves a claim to Approved or Rejected. Approving marks the
// claimed item as Claimed.
func (s *ClaimService) SetStatus(id, status string) (*ClaimResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Invalid("claim id is required")
	}
	if status != domain.ClaimApproved && status != domain.ClaimRejected {
		return nil, apperr.Invalid("status must be Approved or Rejected")
	}
	claim, err := s.claims.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("fetch claim failed", err)
	}
	if claim == nil {
		return nil, apperr.NotFound("claim not found")
	}
	// Approval needs the item row; a claim whose item was deleted in the
	// meantime cannot be approved.
	if status == domain.ClaimApproved && claim.Item == nil {
		return nil, apperr.NotFound("claimed item no longer exists")
	}
	if err := s.claims.UpdateStatus(id, status); err != nil {
		return nil, apperr.Internal("update claim failed", err)
	}
	claim.Status = status

	if status == domain.ClaimApproved {
		claim.Item.Status = domain.ItemStatusClaimed
		if err := s.items.Update(claim.Item); err != nil {
			return nil, apperr.Internal("update item failed", err)
		}
	}
	return toClaimResponse(claim), nil
}

func (s *ClaimService) paged(claims []domain.Claim, total int64, page, size int) *PagedResult[ClaimResponse] {
	list := make([]ClaimResponse, 0, len(claims))
	for i := range claims {
		list = append(list, *toClaimResponse(&claims[i]))
	}
	return &PagedResult[ClaimResponse]{List: list, Total: total, Page: page, Size: size}
}
