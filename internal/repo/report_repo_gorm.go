package repo

import (
	"errors"

	"gorm.io/gorm"

	"lostfound-api/internal/domain"
)

type ReportRepo struct{ db *gorm.DB }

func NewReportRepo(db *gorm.DB) *ReportRepo { return &ReportRepo{db: db} }

func (r *ReportRepo) Create(rep *domain.Report) error { return r.db.Create(rep).Error }

// CreateWithItem inserts the item and the report referencing it in one
// transaction so a failed report insert cannot leave an orphaned item.
func (r *ReportRepo) CreateWithItem(item *domain.Item, rep *domain.Report) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		rep.ItemID = &item.ID
		return tx.Create(rep).Error
	})
}

func (r *ReportRepo) FindByID(id string) (*domain.Report, error) {
	var rep domain.Report
	err := r.db.Preload("User").Preload("Item").First(&rep, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rep, err
}

func (r *ReportRepo) List(offset, limit int) ([]domain.Report, int64, error) {
	tx := r.db.Model(&domain.Report{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var reports []domain.Report
	if err := tx.Preload("User").Preload("Item").Offset(offset).Limit(limit).Order("created_at desc").Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func (r *ReportRepo) Update(rep *domain.Report) error { return r.db.Save(rep).Error }

// Delete completes without error when the id does not exist.
func (r *ReportRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Report{}).Error
}

func (r *ReportRepo) Search(keyword string) ([]domain.Report, error) {
	var reports []domain.Report
	err := r.db.
		Joins("JOIN items ON items.id = reports.item_id").
		Where("items.name = ? OR items.description LIKE ?", keyword, "%"+keyword+"%").
		Preload("User").Preload("Item").
		Order("reports.created_at desc").
		Find(&reports).Error
	return reports, err
}
