package domain

import "time"

type ReportType string

const (
	ReportLost  ReportType = "lost"
	ReportFound ReportType = "found"
)

func (t ReportType) Valid() bool { return t == ReportLost || t == ReportFound }

type Report struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Title       string     `gorm:"size:191" json:"title"`
	Description string     `gorm:"size:1024" json:"description"`
	Type        ReportType `gorm:"size:16" json:"type"`

	UserID string `gorm:"size:36;index" json:"userId"`
	User   *User  `gorm:"foreignKey:UserID" json:"-"`

	// Optional link to the registered item this report was filed with.
	ItemID *string `gorm:"size:36;index" json:"itemId"`
	Item   *Item   `gorm:"foreignKey:ItemID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Report) TableName() string { return "reports" }

type ReportRepository interface {
	Create(r *Report) error
	// CreateWithItem inserts the item and the report referencing it in one
	// transaction.
	CreateWithItem(item *Item, r *Report) error
	FindByID(id string) (*Report, error)
	List(offset, limit int) ([]Report, int64, error)
	Update(r *Report) error
	// Delete is a no-op (no error) when the id does not exist.
	Delete(id string) error
	// Search matches reports whose item has the exact keyword as name or
	// contains it in the description.
	Search(keyword string) ([]Report, error)
}
