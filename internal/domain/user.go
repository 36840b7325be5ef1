package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Email        string `gorm:"uniqueIndex;size:191" json:"email"`
	UserName     string `gorm:"uniqueIndex;size:64" json:"userName"`
	FirstName    string `gorm:"size:64" json:"firstName"`
	LastName     string `gorm:"size:64" json:"lastName"`
	PhoneNumber  string `gorm:"size:32" json:"phoneNumber"`
	PasswordHash string `gorm:"size:191" json:"-"`

	// Lockout bookkeeping, maintained by the identity store.
	FailedLoginCount int        `json:"-"`
	LockoutUntil     *time.Time `json:"-"`

	Roles []Role `gorm:"many2many:user_roles" json:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// RoleNames flattens the association for token claims and responses.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

type Role struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:32" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Role) TableName() string { return "roles" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByUserName(userName string) (*User, error)
	List(offset, limit int) ([]User, int64, error)
	Update(u *User) error
	UpdateFields(id string, fields map[string]any) error
	SoftDelete(id string) error
	HardDelete(id string) error
}
