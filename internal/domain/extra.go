package domain

import "time"

// Complaint and Notification are carried in the schema for forward
// compatibility; nothing serves them yet.

type Complaint struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;index" json:"userId"`
	User        *User     `gorm:"foreignKey:UserID" json:"-"`
	ReportID    string    `gorm:"size:36;index" json:"reportId"`
	Report      *Report   `gorm:"foreignKey:ReportID" json:"-"`
	Description string    `gorm:"size:1024" json:"description"`
	Status      string    `gorm:"size:32" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Complaint) TableName() string { return "complaints" }

type Notification struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	Message   string    `gorm:"size:512" json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Notification) TableName() string { return "notifications" }

// All lists every model for automigration.
func All() []any {
	return []any{
		&User{}, &Role{}, &Item{}, &Report{}, &Claim{},
		&Complaint{}, &Notification{},
	}
}
