package domain

import "time"

type ItemCategory string

const (
	CategoryElectronics ItemCategory = "electronics"
	CategoryDocuments   ItemCategory = "documents"
	CategoryAccessories ItemCategory = "accessories"
	CategoryClothing    ItemCategory = "clothing"
	CategoryKeys        ItemCategory = "keys"
	CategoryOther       ItemCategory = "other"
)

func (c ItemCategory) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryDocuments, CategoryAccessories,
		CategoryClothing, CategoryKeys, CategoryOther:
		return true
	}
	return false
}

const (
	ItemStatusLost    = "Lost"
	ItemStatusFound   = "Found"
	ItemStatusClaimed = "Claimed"
)

type Item struct {
	ID           string       `gorm:"primaryKey;size:36" json:"id"`
	Name         string       `gorm:"size:128;index" json:"name"`
	Category     ItemCategory `gorm:"size:32" json:"category"`
	Description  string       `gorm:"size:1024" json:"description"`
	SerialNumber string       `gorm:"size:128" json:"serialNumber"`
	DateLost     *time.Time   `json:"dateLost"`
	DateFound    *time.Time   `json:"dateFound"`
	ImageURL     string       `gorm:"size:512" json:"imageUrl"`
	Status       string       `gorm:"size:32" json:"status"`

	UserID string `gorm:"size:36;index" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Item) TableName() string { return "items" }

type ItemRepository interface {
	Create(i *Item) error
	FindByID(id string) (*Item, error)
	List(offset, limit int) ([]Item, int64, error)
	Update(i *Item) error
	// Delete is a no-op (no error) when the id does not exist.
	Delete(id string) error
	// Search matches the exact item name or a description substring.
	Search(keyword string) ([]Item, error)
}
