package services

import (
	"errors"
	"strings"

	"github.com/YibestBelay/shegaCafe/entity"
	"github.com/YibestBelay/shegaCafe/pkg/apperr"
	"github.com/YibestBelay/shegaCafe/pkg/authz"
	"github.com/YibestBelay/shegaCafe/repository"

	"gorm.io/gorm"
)

// UserService is the admin-only user management surface.
type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(actorRole string) ([]entity.User, error) {
	if !authz.Allowed(actorRole, authz.ActionListUsers) {
		return nil, apperr.Unauthorized("Admin only")
	}
	users, err := s.repo.List()
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	return users, nil
}

type SaveUserIn struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// AddOrUpdate updates the user by id when given, otherwise upserts by
// email. Mirrors the admin role-management form.
func (s *UserService) AddOrUpdate(actorRole string, in *SaveUserIn) (*entity.User, error) {
	if !authz.Allowed(actorRole, authz.ActionManageUsers) {
		return nil, apperr.Unauthorized("Admin only")
	}
	if in.Role == "" || (in.UserID == 0 && in.Email == "") {
		return nil, apperr.Validation("missing userId/email or role")
	}

	role := entity.NormalizeRole(in.Role)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if in.UserID != 0 {
		updates := map[string]any{"role": role}
		if in.Name != "" {
			updates["name"] = in.Name
		}
		if err := s.repo.Update(in.UserID, updates); err != nil {
			return nil, apperr.Upstream(err)
		}
		return s.fetch(in.UserID)
	}

	existing, err := s.repo.FindByEmail(email)
	if err == nil {
		updates := map[string]any{"role": role}
		if in.Name != "" {
			updates["name"] = in.Name
		}
		if err := s.repo.Update(existing.ID, updates); err != nil {
			return nil, apperr.Upstream(err)
		}
		return s.fetch(existing.ID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Upstream(err)
	}

	user := &entity.User{Name: in.Name, Email: email, Role: role}
	if err := s.repo.Create(user); err != nil {
		return nil, apperr.Upstream(err)
	}
	return user, nil
}

// Delete refuses to remove the acting admin's own account.
func (s *UserService) Delete(actorRole string, actorID, userID uint) error {
	if !authz.Allowed(actorRole, authz.ActionManageUsers) {
		return apperr.Unauthorized("Admin only")
	}
	if userID == 0 {
		return apperr.Validation("missing userId")
	}
	if actorID == userID {
		return apperr.Validation("you cannot delete your own account")
	}

	if _, err := s.repo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return apperr.Upstream(err)
	}
	if err := s.repo.Delete(userID); err != nil {
		return apperr.Upstream(err)
	}
	return nil
}

func (s *UserService) fetch(id uint) (*entity.User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Upstream(err)
	}
	return u, nil
}
