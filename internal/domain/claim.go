package domain

import "time"

const (
	ClaimPending  = "Pending"
	ClaimApproved = "Approved"
	ClaimRejected = "Rejected"
)

type Claim struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;index" json:"userId"`
	User        *User     `gorm:"foreignKey:UserID" json:"-"`
	ItemID      string    `gorm:"size:36;index" json:"itemId"`
	Item        *Item     `gorm:"foreignKey:ItemID" json:"-"`
	ItemName    string    `gorm:"size:128" json:"itemName"`
	ClaimReason string    `gorm:"size:1024" json:"claimReason"`
	ClaimDate   time.Time `json:"claimDate"`
	Status      string    `gorm:"size:32" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Claim) TableName() string { return "claims" }

type ClaimRepository interface {
	Create(c *Claim) error
	FindByID(id string) (*Claim, error)
	List(offset, limit int) ([]Claim, int64, error)
	ListByStatus(status string, offset, limit int) ([]Claim, int64, error)
	UpdateStatus(id, status string) error
	// Delete reports false when the id does not exist.
	Delete(id string) (bool, error)
}
