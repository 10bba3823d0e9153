package usecase

import (
	"context"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type UserUseCase interface {
	Register(ctx context.Context, fullName, email, username, password string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
}

type userUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, log *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     log,
	}
}

func (uc *userUseCase) Register(ctx context.Context, fullName, email, username, password string) (*entity.User, string, error) {
	for _, field := range []string{fullName, email, username, password} {
		if strings.TrimSpace(field) == "" {
			return nil, "", BadRequest("All fields are required")
		}
	}

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", Conflict("User with same username or email already exists")
	}
	if _, err := uc.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, "", Conflict("User with same username or email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", Internal("failed to process registration")
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		FullName: fullName,
		Role:     entity.RoleViewer,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// The unique indexes close the register/register race the
		// find-then-create check above cannot.
		if err == persistent.ErrDuplicate {
			return nil, "", Conflict("User with same username or email already exists")
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", Internal("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", Internal("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *userUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", NewError(401, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", NewError(401, "invalid credentials")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", Internal("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if err == persistent.ErrNotFound {
			return nil, BadRequest("User not found")
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}
