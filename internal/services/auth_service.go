package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"fitlife/internal/models/db_models"
	"fitlife/internal/models/request_models"
	"fitlife/internal/models/response_models"
	"fitlife/internal/repositories"
	mem "fitlife/pkg/memcache"
	"fitlife/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	Logout(token string)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*response_models.CurrentUser, error)
}

type AuthService struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	revoked     mem.RevokedTokenStore
	tokenTTL    time.Duration
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	revoked mem.RevokedTokenStore,
	tokenTTL time.Duration,
) AuthServiceInterface {
	return &AuthService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		revoked:     revoked,
		tokenTTL:    tokenTTL,
	}
}

// Register rejects malformed input before touching the database, then creates
// the account together with its empty profile row.
func (a *AuthService) Register(ctx context.Context, request request_models.SignUpRequest) error {
	if err := utils.ValidateSignUp(request.Email, request.Password, request.FullName); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		FullName:     strings.TrimSpace(request.FullName),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	// Every identity owns exactly one profile from the start.
	emptyProfile := &db_models.Profile{
		UserID:   newAccount.ID,
		FullName: newAccount.FullName,
	}
	if err := a.profileRepo.Upsert(ctx, emptyProfile); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	if err := utils.ValidateSignIn(request.Email, request.Password); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, a.tokenTTL)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LoginResponse{
		Token: token,
		User: response_models.CurrentUser{
			ID:       account.ID,
			Email:    account.Email,
			FullName: account.FullName,
		},
	}, nil
}

// Logout never fails: the token lands in the revocation store and the session
// is gone from the caller's point of view regardless of anything else.
func (a *AuthService) Logout(token string) {
	if token == "" {
		return
	}
	a.revoked.Revoke(token, a.tokenTTL)
}

func (a *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*response_models.CurrentUser, error) {
	account, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.CurrentUser{
		ID:       account.ID,
		Email:    account.Email,
		FullName: account.FullName,
	}, nil
}
