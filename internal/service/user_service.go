package service

import (
	"strings"

	"go.uber.org/zap"

	"lostfound-api/internal/apperr"
	"lostfound-api/internal/core/auth"
	"lostfound-api/internal/domain"
	"lostfound-api/internal/identity"
)

type UserService struct {
	store *identity.Store
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewUserService(store *identity.Store, users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *UserService {
	return &UserService{store: store, users: users, jwter: jwter, log: log}
}

func (s *UserService) Register(in RegisterInput) (*UserSummary, error) {
	u, err := s.store.Register(in.Email, in.FirstName, in.LastName, in.Password)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("user_id", u.ID))
	out := toUserSummary(u)
	return &out, nil
}

func (s *UserService) Login(in LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, apperr.Invalid("email and password are required")
	}
	u, err := s.store.VerifyCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := s.jwter.Issue(u.ID, u.UserName, u.Email, u.RoleNames())
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	return &LoginResult{Token: token, User: toUserSummary(u), Roles: u.RoleNames()}, nil
}

func (s *UserService) GetByUserName(userName string) (*UserSummary, error) {
	if strings.TrimSpace(userName) == "" {
		return nil, apperr.Invalid("userName is required")
	}
	u, err := s.users.FindByUserName(userName)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	out := toUserSummary(u)
	return &out, nil
}

func (s *UserService) List(page, size int) (*PagedResult[UserSummary], error) {
	page, size, offset := normalizePage(page, size)
	users, total, err := s.users.List(offset, size)
	if err != nil {
		return nil, apperr.Internal("list users failed", err)
	}
	list := make([]UserSummary, 0, len(users))
	for i := range users {
		list = append(list, toUserSummary(&users[i]))
	}
	return &PagedResult[UserSummary]{List: list, Total: total, Page: page, Size: size}, nil
}

// Edit replaces the mutable profile fields wholesale (PUT semantics).
// UserName is a unique column, so a blank one is rejected rather than written.
func (s *UserService) Edit(in UserEditInput) (*UserSummary, error) {
	if strings.TrimSpace(in.UserName) == "" {
		return nil, apperr.Invalid("userName is required")
	}
	u, err := s.users.FindByID(in.ID)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	u.UserName = in.UserName
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.PhoneNumber = in.PhoneNumber
	if err := s.users.Update(u); err != nil {
		return nil, apperr.Internal("update user failed", err)
	}
	out := toUserSummary(u)
	return &out, nil
}

// Patch updates only the fields present in the request (PATCH semantics).
func (s *UserService) Patch(in UserPatchInput) (*UserSummary, error) {
	u, err := s.users.FindByID(in.ID)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	fields := map[string]any{}
	if in.UserName != nil {
		fields["user_name"] = *in.UserName
	}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["last_name"] = *in.LastName
	}
	if in.PhoneNumber != nil {
		fields["phone_number"] = *in.PhoneNumber
	}
	if len(fields) == 0 {
		return nil, apperr.Invalid("no fields to update")
	}
	if err := s.users.UpdateFields(in.ID, fields); err != nil {
		return nil, apperr.Internal("update user failed", err)
	}
	return s.getSummaryByID(in.ID)
}

func (s *UserService) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Invalid("user id is required")
	}
	u, err := s.users.FindByID(id)
	if err != nil {
		return apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		return apperr.NotFound("user not found")
	}
	if err := s.users.SoftDelete(id); err != nil {
		return apperr.Internal("delete user failed", err)
	}
	return nil
}

func (s *UserService) getSummaryByID(id string) (*UserSummary, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	out := toUserSummary(u)
	return &out, nil
}
