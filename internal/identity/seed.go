package identity

import (
	"lostfound-api/internal/domain"
	"lostfound-api/pkg/utils"
)

// Seed ensures the default roles exist and bootstraps the first admin
// account. Safe to run on every startup.
func (s *Store) Seed(adminEmail, adminPassword string) error {
	for _, name := range []string{domain.RoleAdmin, domain.RoleUser} {
		if _, err := s.EnsureRole(name); err != nil {
			return err
		}
	}
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	existing, err := s.users.FindByEmail(adminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	admin := &domain.User{
		ID:           utils.NewID(),
		Email:        adminEmail,
		UserName:     "admin",
		FirstName:    "Admin",
		PasswordHash: hash,
	}
	if err := s.users.Create(admin); err != nil {
		return err
	}
	return s.AssignRole(admin, domain.RoleAdmin)
}
