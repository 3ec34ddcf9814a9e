package services

import (
	"errors"
	"strings"
	"time"

	"github.com/YibestBelay/shegaCafe/entity"
	"github.com/YibestBelay/shegaCafe/pkg/apperr"
	"github.com/YibestBelay/shegaCafe/repository"
	"github.com/YibestBelay/shegaCafe/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles register/login and token issuance.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *AuthService) Register(name, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	if count > 0 {
		return nil, apperr.Conflict("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Upstream(err)
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     entity.RoleCustomer,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Upstream(err)
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Upstream(err)
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Upstream(err)
	}
	return user, nil
}

// UpsertByEmail covers first-login of externally authenticated users: an
// unknown email becomes a customer, a known one is returned as-is.
func (s *AuthService) UpsertByEmail(name, email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperr.Validation("email is required")
	}

	user, err := s.userRepo.FindByEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Upstream(err)
	}

	user = &entity.User{Name: strings.TrimSpace(name), Email: email, Role: entity.RoleCustomer}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Upstream(err)
	}
	return user, nil
}

// ExternalLogin completes an external-provider sign-in: the email is
// upserted and a session token issued for the resulting user.
func (s *AuthService) ExternalLogin(name, email string) (string, *entity.User, error) {
	user, err := s.UpsertByEmail(name, email)
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Upstream(err)
	}
	return token, user, nil
}
