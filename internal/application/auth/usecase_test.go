package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pinturas-api/internal/application/auth"
	"github.com/jhoicas/pinturas-api/internal/application/dto"
	"github.com/jhoicas/pinturas-api/internal/domain"
	"github.com/jhoicas/pinturas-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/pinturas-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "pinturas-api-test"
)

// fakeUserRepo implementación en memoria del puerto UserRepository, con la
// misma semántica que el adaptador de PostgreSQL: username único y
// (nil, nil) cuando el usuario no existe.
type fakeUserRepo struct {
	users  []*entity.User
	nextID int64
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrUsernameAlreadyExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(f.users), nil
}

func newTestUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	return uc, repo
}

func TestHashVerifyPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash, "el hash nunca debe ser el texto plano")

	assert.True(t, auth.VerifyPassword("admin123", hash))
	assert.False(t, auth.VerifyPassword("otro-password", hash))
}

func TestHashPassword_SaltEmbebida(t *testing.T) {
	h1, err := auth.HashPassword("mismo")
	require.NoError(t, err)
	h2, err := auth.HashPassword("mismo")
	require.NoError(t, err)

	// Sal distinta en cada hash, ambos verificables sin almacenar la sal aparte
	assert.NotEqual(t, h1, h2)
	assert.True(t, auth.VerifyPassword("mismo", h1))
	assert.True(t, auth.VerifyPassword("mismo", h2))
}

func TestCreateUser_YLogin(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	created, err := uc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "alice", Password: "pw", Role: "staff",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "staff", created.Role)
	assert.NotZero(t, created.ID)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "alice", out.User.Username)

	// El token lleva el rol para la autorización sin consultar la DB
	_, username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	assert.Equal(t, "staff", role)
}

func TestCreateUser_UsernameDuplicado(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	_, err := uc.CreateUser(ctx, dto.CreateUserRequest{Username: "alice", Password: "pw", Role: "staff"})
	require.NoError(t, err)

	_, err = uc.CreateUser(ctx, dto.CreateUserRequest{Username: "alice", Password: "pw2", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)

	// La primera alice conserva su rol
	u, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "staff", u.Role)
}

func TestCreateUser_RolInvalido(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "bob", Password: "pw", Role: "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Usuario inexistente y password incorrecto devuelven el mismo error: el
// caller no puede enumerar usernames por la respuesta.
func TestLogin_NoDistingueUsuarioDePassword(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.CreateUser(ctx, dto.CreateUserRequest{Username: "alice", Password: "pw", Role: "staff"})
	require.NoError(t, err)

	_, errUnknown := uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "pw"})
	_, errWrongPw := uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "mal"})

	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.ErrorIs(t, errWrongPw, domain.ErrUnauthorized)
	assert.Equal(t, errUnknown, errWrongPw)
}
