package usecase

import (
	"context"
	"testing"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserUseCaseForTest() (*MockUserRepository, UserUseCase) {
	userRepo := new(MockUserRepository)
	uc := NewUserUseCase(userRepo, jwt.NewService("test-secret"), logger.New())
	return userRepo, uc
}

func TestRegister_Success(t *testing.T) {
	userRepo, uc := newUserUseCaseForTest()

	userRepo.On("GetByEmail", mock.Anything, "jo@example.com").Return(nil, persistent.ErrNotFound)
	userRepo.On("GetByUsername", mock.Anything, "jo").Return(nil, persistent.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = "user-1"
		}).
		Return(nil)

	user, token, err := uc.Register(context.Background(), "Jo Doe", "jo@example.com", "jo", "hunter22")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, entity.RoleViewer, user.Role)
	assert.Empty(t, user.Password)
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo, uc := newUserUseCaseForTest()

	userRepo.On("GetByEmail", mock.Anything, "jo@example.com").
		Return(&entity.User{ID: "user-1", Email: "jo@example.com"}, nil)

	_, _, err := uc.Register(context.Background(), "Jo Doe", "jo@example.com", "jo", "hunter22")

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "User with same username or email already exists", appErr.Message)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_BlankField(t *testing.T) {
	userRepo, uc := newUserUseCaseForTest()

	_, _, err := uc.Register(context.Background(), "Jo Doe", "jo@example.com", "  ", "hunter22")

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "All fields are required", appErr.Message)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateRaceCaughtByIndex(t *testing.T) {
	userRepo, uc := newUserUseCaseForTest()

	userRepo.On("GetByEmail", mock.Anything, "jo@example.com").Return(nil, persistent.ErrNotFound)
	userRepo.On("GetByUsername", mock.Anything, "jo").Return(nil, persistent.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Return(persistent.ErrDuplicate)

	_, _, err := uc.Register(context.Background(), "Jo Doe", "jo@example.com", "jo", "hunter22")

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
}

func TestLogin_Success(t *testing.T) {
	userRepo, uc := newUserUseCaseForTest()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.On("GetByEmail", mock.Anything, "jo@example.com").Return(&entity.User{
		ID:       "user-1",
		Email:    "jo@example.com",
		Password: string(hash),
		Role:     entity.RoleViewer,
	}, nil)

	user, token, err := uc.Login(context.Background(), "jo@example.com", "hunter22")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.Password)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo, uc := newUserUseCaseForTest()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.On("GetByEmail", mock.Anything, "jo@example.com").Return(&entity.User{
		ID:       "user-1",
		Email:    "jo@example.com",
		Password: string(hash),
	}, nil)

	_, _, err = uc.Login(context.Background(), "jo@example.com", "wrong")

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Status)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo, uc := newUserUseCaseForTest()

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, persistent.ErrNotFound)

	_, _, err := uc.Login(context.Background(), "nobody@example.com", "hunter22")

	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.Status)
}
