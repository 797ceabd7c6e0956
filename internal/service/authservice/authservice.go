package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/avolkov/lotomart/internal/domain"
	"github.com/avolkov/lotomart/pkg/auth"
	"github.com/avolkov/lotomart/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

type Service struct {
	accountRepo Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		accountRepo: repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func (s *Service) Register(ctx context.Context, email, password, username string) (*domain.Account, error) {
	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find account: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("account already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	id, err := validate.NewTicketNumber()
	if err != nil {
		zap.L().Error("can't issue account id: ", zap.Error(err))
		return nil, err
	}

	account := &domain.Account{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Balance:      0,
	}
	newAccount, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		zap.L().Error("can't create account: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("account successfully registered", zap.String("email", email))
	return newAccount, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil || account == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(account.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("account successfully authenticated", zap.String("email", email))
	return account, nil
}

func (s *Service) GenerateToken(account *domain.Account) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(account.ID, account.IsAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
