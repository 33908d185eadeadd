package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gotrabandhus/gotrabandhus/application/profile"
	"github.com/gotrabandhus/gotrabandhus/cmd/config"
	"github.com/gotrabandhus/gotrabandhus/constant"
	"github.com/gotrabandhus/gotrabandhus/model"
	redisrepo "github.com/gotrabandhus/gotrabandhus/repository/redis"
	userrepo "github.com/gotrabandhus/gotrabandhus/repository/user"
	"github.com/gotrabandhus/gotrabandhus/thirdparty/rabbitmq"
	cerr "github.com/gotrabandhus/gotrabandhus/utils/errors"
	"github.com/gotrabandhus/gotrabandhus/utils/logger"
	"go.uber.org/zap"
)

type AuthApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

type AuthAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.RedisRepository
	publisher rabbitmq.EventPublisher
}

// NewAuthApp wires the auth application. publisher may be nil when event
// publishing is disabled.
func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.RedisRepository, publisher rabbitmq.EventPublisher) AuthApp {
	return &AuthAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		publisher: publisher,
	}
}

// Register creates an account from the minimal onboarding field set. All
// completion-required fields beyond name/nickname/email/phone start empty,
// so a fresh account always routes to the profile page next.
func (s *AuthAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	email := strings.ToLower(req.Email)

	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, cerr.SetCustomError(constant.ErrEmailExists)
	}

	hashedPassword, err := HashPassword(req.Password, s.config.Auth.BcryptCost)
	if err != nil {
		logger.Error("[Register] err HashPassword", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Nickname:  req.Nickname,
		Email:     email,
		Password:  hashedPassword,
		Phone:     req.Phone,
	}
	userEntity.ProfileCompleted = profile.IsComplete(userEntity)

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		// A concurrent registration with the same email loses the race at the
		// store's uniqueness constraint.
		if errors.Is(err, userrepo.ErrDuplicate) {
			return nil, cerr.SetCustomError(constant.ErrEmailExists)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetUser(ctx, userEntity, s.config.Redis.CacheTTL); err != nil {
		logger.Warn("[Register] err redisRepo.SetUser", zap.String("error", err.Error()))
	}

	token, err := s.generateJWT(userEntity.ID)
	if err != nil {
		logger.Error("[Register] err generateJWT", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishUserRegistered(userEntity.ID, userEntity.Email); err != nil {
			logger.Warn("[Register] err PublishUserRegistered", zap.String("error", err.Error()))
		}
	}

	return &model.AuthResponse{
		User:       userEntity,
		Token:      token,
		RedirectTo: constant.RedirectProfile,
	}, nil
}

// Login verifies credentials and issues a token. An unknown email and a wrong
// password return the same generic rejection so callers cannot enumerate
// accounts.
func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	email := strings.ToLower(req.Email)

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, cerr.SetCustomError(constant.ErrInvalidCredentials)
	}

	if !VerifyPassword(req.Password, user.Password) {
		return nil, cerr.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	redirectTo := constant.RedirectProfile
	if user.ProfileCompleted {
		redirectTo = constant.RedirectDashboard
	}

	return &model.AuthResponse{
		User:       user,
		Token:      token,
		RedirectTo: redirectTo,
	}, nil
}

// ValidateToken resolves a bearer token to the user ID it was issued for.
func (s *AuthAppImpl) ValidateToken(_ context.Context, tokenString string) (uint64, error) {
	return s.parseJWT(tokenString)
}
