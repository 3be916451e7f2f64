package application_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/internal/domain/user"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/internal/repository/mock"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserMocks(t *testing.T) (*application.UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{User: mockUser}
	return application.NewUserService(repos), mockUser
}

func TestUserServiceRegister(t *testing.T) {
	svc, mockUser := setupUserMocks(t)

	t.Run("success hashes the password", func(t *testing.T) {
		mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
		mockUser.EXPECT().SaveUser(gomock.Any()).Do(func(u *user.User) {
			u.ID = 1
		}).Return(nil)

		u, err := svc.Register(user.RegisterDTO{Username: "alice", Password: "123456"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != 1 {
			t.Fatalf("expected ID 1, got %d", u.ID)
		}
		if u.Password == "123456" {
			t.Fatal("password stored in plain text")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("123456")); err != nil {
			t.Fatalf("stored hash does not match password: %v", err)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{ID: 1, Username: "alice"}, nil)

		_, err := svc.Register(user.RegisterDTO{Username: "alice", Password: "123456"})
		if !apperr.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	svc, mockUser := setupUserMocks(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	stored := user.User{ID: 1, Username: "alice", Password: string(hashed)}

	t.Run("valid credentials", func(t *testing.T) {
		mockUser.EXPECT().GetUserByUsername("alice").Return(stored, nil)

		u, err := svc.Authenticate("alice", "123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != 1 {
			t.Fatalf("expected ID 1, got %d", u.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUser.EXPECT().GetUserByUsername("alice").Return(stored, nil)

		if _, err := svc.Authenticate("alice", "wrong"); !apperr.IsPermission(err) {
			t.Fatalf("expected permission error, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUser.EXPECT().GetUserByUsername("bob").Return(user.User{}, gorm.ErrRecordNotFound)

		if _, err := svc.Authenticate("bob", "123456"); !apperr.IsPermission(err) {
			t.Fatalf("expected permission error, got %v", err)
		}
	})
}
