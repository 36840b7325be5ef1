package identity

import (
	"strings"
	"time"
	"unicode"

	"gorm.io/gorm"

	"lostfound-api/internal/apperr"
	"lostfound-api/internal/domain"
	"lostfound-api/pkg/utils"
)

const (
	minPasswordLen    = 8
	maxFailedAttempts = 5
	lockoutWindow     = 5 * time.Minute
)

// Store is the credential and role manager backing registration and login.
type Store struct {
	db    *gorm.DB
	users domain.UserRepository
}

func NewStore(db *gorm.DB, users domain.UserRepository) *Store {
	return &Store{db: db, users: users}
}

// ValidatePassword returns every policy violation, not just the first one.
func ValidatePassword(pw string) []string {
	var reasons []string
	if len(pw) < minPasswordLen {
		reasons = append(reasons, "password must be at least 8 characters")
	}
	var hasDigit, hasUpper, hasLower bool
	for _, r := range pw {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasDigit {
		reasons = append(reasons, "password must contain a digit")
	}
	if !hasUpper {
		reasons = append(reasons, "password must contain an uppercase letter")
	}
	if !hasLower {
		reasons = append(reasons, "password must contain a lowercase letter")
	}
	return reasons
}

// Register creates the user and assigns the default role. When role
// assignment fails the just-created user is removed again, best effort.
func (s *Store) Register(email, firstName, lastName, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperr.Invalid("email is required")
	}
	if reasons := ValidatePassword(password); len(reasons) > 0 {
		return nil, apperr.Invalid(strings.Join(reasons, "; "))
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if existing != nil {
		return nil, apperr.Invalid("email already registered")
	}

	userName := strings.ToLower(strings.TrimSpace(firstName) + strings.TrimSpace(lastName))
	if userName == "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			userName = email[:at]
		} else {
			userName = "user"
		}
	}
	if taken, err := s.users.FindByUserName(userName); err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	} else if taken != nil {
		userName += utils.NewID()[:6]
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal("hash password failed", err)
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		UserName:     userName,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
	}
	if err := s.users.Create(u); err != nil {
		return nil, apperr.Internal("create user failed", err)
	}

	if err := s.AssignRole(u, domain.RoleUser); err != nil {
		_ = s.users.HardDelete(u.ID) // compensating delete, not transactional
		return nil, apperr.Internal("assign default role failed", err)
	}
	return u, nil
}

// VerifyCredentials checks email/password and maintains the lockout counter:
// five consecutive failures lock the account for five minutes.
func (s *Store) VerifyCredentials(email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	now := time.Now()
	if u.LockoutUntil != nil && u.LockoutUntil.After(now) {
		return nil, apperr.Unauthorized("account locked, try again later")
	}

	if !utils.CheckPassword(password, u.PasswordHash) {
		fields := map[string]any{"failed_login_count": u.FailedLoginCount + 1}
		if u.FailedLoginCount+1 >= maxFailedAttempts {
			until := now.Add(lockoutWindow)
			fields["lockout_until"] = &until
			fields["failed_login_count"] = 0
		}
		if err := s.users.UpdateFields(u.ID, fields); err != nil {
			return nil, apperr.Internal("update lockout state failed", err)
		}
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if u.FailedLoginCount > 0 || u.LockoutUntil != nil {
		if err := s.users.UpdateFields(u.ID, map[string]any{
			"failed_login_count": 0,
			"lockout_until":      nil,
		}); err != nil {
			return nil, apperr.Internal("reset lockout state failed", err)
		}
	}
	return u, nil
}

// EnsureRole creates the role when missing.
func (s *Store) EnsureRole(name string) (*domain.Role, error) {
	var role domain.Role
	err := s.db.Where("name = ?", name).
		Attrs(domain.Role{ID: utils.NewID()}).
		FirstOrCreate(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *Store) AssignRole(u *domain.User, name string) error {
	role, err := s.EnsureRole(name)
	if err != nil {
		return err
	}
	if err := s.db.Model(u).Association("Roles").Append(role); err != nil {
		return err
	}
	u.Roles = append(u.Roles, *role)
	return nil
}
