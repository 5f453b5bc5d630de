package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/repository"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/auth"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/logger"
)

// bcryptCost matches the credential scheme the user records were
// written with.
const bcryptCost = 10

type AuthUseCase struct {
	userRepo     repository.UserRepository
	tokenManager *auth.TokenManager
}

func NewAuthUseCase(userRepo repository.UserRepository, tokenManager *auth.TokenManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	UserType string
	Location entity.GeoPoint
	Phone    string

	// Role specific, all optional.
	Bio         string
	CompanyName string
	FarmSize    float64
	FarmType    []string
	Crops       []string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("User with this email already exists", nil)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		UserType:     input.UserType,
		Location:     input.Location,
		Phone:        input.Phone,
		Bio:          input.Bio,
		CompanyName:  input.CompanyName,
		FarmSize:     input.FarmSize,
		FarmType:     input.FarmType,
		Crops:        input.Crops,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokenManager.Generate(user.ID, user.UserType)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Unauthorized("Invalid credentials", nil)
		}
		return nil, err
	}

	ok, err := VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Warn("Failed login attempt for %s", user.Email)
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	token, err := uc.tokenManager.Generate(user.ID, user.UserType)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// ChangePassword verifies the current credential and stores a new hash.
// The hash is rewritten only on this path; profile updates never touch
// it.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := VerifyPassword(user.PasswordHash, current)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Unauthorized("Current password is incorrect", nil)
	}

	hash, err := HashPassword(next)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	return uc.userRepo.Update(ctx, user)
}

// HashPassword renders a plaintext unusable for storage. It never
// returns the input.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", errors.Internal("Failed to hash password", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether candidate matches the stored hash. A
// mismatch is a false return, not an error; errors mean the comparison
// itself failed.
func VerifyPassword(hash, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	return false, errors.Internal("Failed to verify password", err)
}
