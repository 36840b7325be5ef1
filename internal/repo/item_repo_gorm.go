package repo

import (
	"errors"

	"gorm.io/gorm"

	"lostfound-api/internal/domain"
)

type ItemRepo struct{ db *gorm.DB }

func NewItemRepo(db *gorm.DB) *ItemRepo { return &ItemRepo{db: db} }

func (r *ItemRepo) Create(i *domain.Item) error { return r.db.Create(i).Error }

func (r *ItemRepo) FindByID(id string) (*domain.Item, error) {
	var i domain.Item
	err := r.db.Preload("User").First(&i, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &i, err
}

func (r *ItemRepo) List(offset, limit int) ([]domain.Item, int64, error) {
	tx := r.db.Model(&domain.Item{})
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []domain.Item
	if err := tx.Offset(offset).Limit(limit).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *ItemRepo) Update(i *domain.Item) error { return r.db.Save(i).Error }

// Delete completes without error when the id does not exist.
func (r *ItemRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Item{}).Error
}

func (r *ItemRepo) Search(keyword string) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.
		Where("name = ? OR description LIKE ?", keyword, "%"+keyword+"%").
		Order("created_at desc").
		Find(&items).Error
	return items, err
}
