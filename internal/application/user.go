package application

import (
	"errors"

	"github.com/linweiyu/bugtrack-go/internal/domain/user"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
	"github.com/linweiyu/bugtrack-go/pkg/identity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errInvalidCredentials = apperr.Permission("invalid username or password")

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input user.RegisterDTO) (*user.User, error) {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err == nil {
		return nil, apperr.Validation("username %q is already taken", input.Username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Storage(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	u := &user.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		Role:     user.RoleDeveloper,
	}
	if err := s.Repos.User.SaveUser(u); err != nil {
		return nil, apperr.Storage(err)
	}
	return u, nil
}

// Authenticate verifies the credentials and returns the stored user.
// Token issuance lives in the API middleware.
func (s *UserService) Authenticate(username, password string) (*user.User, error) {
	u, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	return &u, nil
}

func (s *UserService) Get(id uint) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return nil, lookupErr(err, "user", id)
	}
	return &u, nil
}

func (s *UserService) UpdateProfile(actor identity.Identity, input user.UpdateProfileDTO) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(actor.UserID)
	if err != nil {
		return nil, lookupErr(err, "user", actor.UserID)
	}

	if input.FirstName != nil {
		u.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		u.LastName = *input.LastName
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	if input.Phone != nil {
		u.Phone = *input.Phone
	}

	if err := s.Repos.User.SaveUser(&u); err != nil {
		return nil, apperr.Storage(err)
	}
	return &u, nil
}

func (s *UserService) List() ([]user.User, error) {
	users, err := s.Repos.User.ListUsers()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return users, nil
}
