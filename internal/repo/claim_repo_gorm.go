package repo

import (
	"errors"

	"gorm.io/gorm"

	"lostfound-api/internal/domain"
)

type ClaimRepo struct{ db *gorm.DB }

func NewClaimRepo(db *gorm.DB) *ClaimRepo { return &ClaimRepo{db: db} }

func (r *ClaimRepo) Create(c *domain.Claim) error { return r.db.Create(c).Error }

func (r *ClaimRepo) FindByID(id string) (*domain.Claim, error) {
	var c domain.Claim
	err := r.db.Preload("User").Preload("Item").First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *ClaimRepo) List(offset, limit int) ([]domain.Claim, int64, error) {
	return r.list(r.db.Model(&domain.Claim{}), offset, limit)
}

func (r *ClaimRepo) ListByStatus(status string, offset, limit int) ([]domain.Claim, int64, error) {
	return r.list(r.db.Model(&domain.Claim{}).Where("status = ?", status), offset, limit)
}

func (r *ClaimRepo) list(tx *gorm.DB, offset, limit int) ([]domain.Claim, int64, error) {
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var claims []domain.Claim
	if err := tx.Preload("User").Preload("Item").Offset(offset).Limit(limit).Order("created_at desc").Find(&claims).Error; err != nil {
		return nil, 0, err
	}
	return claims, total, nil
}

func (r *ClaimRepo) UpdateStatus(id, status string) error {
	res := r.db.Model(&domain.Claim{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete reports false for an unknown id; unlike item and report deletes this
// one is not idempotent.
func (r *ClaimRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Claim{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
