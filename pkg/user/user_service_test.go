package user

import (
	"context"
	"testing"

	"github.com/lavanyassgit/Medicine-AI/domain"
	"github.com/lavanyassgit/Medicine-AI/entities"
	"github.com/lavanyassgit/Medicine-AI/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func TestRegisterLoginMe(t *testing.T) {
	tokens := jwt.NewJWTService("secret")
	svc := NewUserService(&fakeUserRepository{users: map[string]*entities.User{}}, tokens)
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.RegisterRequest{Name: "Asha", Email: " Asha@Example.com ", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", registered.Email)
	assert.Equal(t, domain.RoleUser, registered.Role)

	_, err = svc.Register(ctx, domain.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "another1"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "asha@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	login, err := svc.Login(ctx, domain.LoginRequest{Email: "asha@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	id, _, err := tokens.GetUserIDByToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, id)

	me, err := svc.Me(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Asha", me.Name)

	_, err = svc.Me(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
