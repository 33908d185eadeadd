package profile

import (
	"context"
	"errors"
	"strings"

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

type ProfileApp interface {
	GetProfile(ctx context.Context, userID uint64) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, userID uint64, req *model.ProfileUpdateRequest) (*model.ProfileUpdateResponse, error)
	CheckCompletion(ctx context.Context, userID uint64) (*model.CompletionResponse, error)
	IsProfileComplete(ctx context.Context, userID uint64) (bool, error)
}

type ProfileAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.RedisRepository
	publisher rabbitmq.EventPublisher
}

// NewProfileApp wires the profile application. publisher may be nil when
// event publishing is disabled.
func NewProfileApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.RedisRepository, publisher rabbitmq.EventPublisher) ProfileApp {
	return &ProfileAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		publisher: publisher,
	}
}

// getUser reads through the cache. Updates are write-through, so a cache hit
// carries the same completion flag as the store.
func (s *ProfileAppImpl) getUser(ctx context.Context, userID uint64) (*model.UserEntity, error) {
	cached, err := s.redisRepo.GetUser(ctx, userID)
	if err != nil {
		logger.Warn("[getUser] err redisRepo.GetUser", zap.String("error", err.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if err := s.redisRepo.SetUser(ctx, user, s.config.Redis.CacheTTL); err != nil {
		logger.Warn("[getUser] err redisRepo.SetUser", zap.String("error", err.Error()))
	}
	return user, nil
}

// GetProfile returns the stored profile for an authenticated user. A valid
// token whose user no longer exists is indistinguishable from an invalid one
// to the client, but is logged distinctly here.
func (s *ProfileAppImpl) GetProfile(ctx context.Context, userID uint64) (*model.UserEntity, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		logger.Error("[GetProfile] err getUser", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		logger.Warn("[GetProfile] user not found for authenticated request", zap.Uint64("user_id", userID))
		return nil, cerr.SetCustomError(constant.ErrUnauthorize)
	}
	return user, nil
}

// UpdateProfile merges the supplied subset onto the stored record, recomputes
// the completion flag and persists. Once the profile became complete the
// response carries a dashboard redirect.
func (s *ProfileAppImpl) UpdateProfile(ctx context.Context, userID uint64, req *model.ProfileUpdateRequest) (*model.ProfileUpdateResponse, error) {
	current, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if current == nil {
		logger.Warn("[UpdateProfile] user not found for authenticated request", zap.Uint64("user_id", userID))
		return nil, cerr.SetCustomError(constant.ErrUnauthorize)
	}

	wasComplete := current.ProfileCompleted

	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		if email != current.Email {
			existing, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
			if err != nil {
				logger.Error("[UpdateProfile] err userRepo.Get email", zap.String("error", err.Error()))
				return nil, cerr.SetCustomError(constant.ErrInternal)
			}
			if existing != nil {
				return nil, cerr.SetCustomError(constant.ErrEmailExists)
			}
		}
		req.Email = &email
	}

	applyUpdate(current, req)
	current.ProfileCompleted = IsComplete(current)

	updated, err := s.userRepo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, userrepo.ErrDuplicate) {
			return nil, cerr.SetCustomError(constant.ErrEmailExists)
		}
		logger.Error("[UpdateProfile] err userRepo.Update", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if updated == nil {
		logger.Warn("[UpdateProfile] user vanished during update", zap.Uint64("user_id", userID))
		return nil, cerr.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.SetUser(ctx, updated, s.config.Redis.CacheTTL); err != nil {
		logger.Warn("[UpdateProfile] err redisRepo.SetUser", zap.String("error", err.Error()))
	}

	if !wasComplete && updated.ProfileCompleted && s.publisher != nil {
		if err := s.publisher.PublishProfileCompleted(updated.ID); err != nil {
			logger.Warn("[UpdateProfile] err PublishProfileCompleted", zap.String("error", err.Error()))
		}
	}

	var redirectTo *string
	if updated.ProfileCompleted {
		redirect := constant.RedirectDashboard
		redirectTo = &redirect
	}

	return &model.ProfileUpdateResponse{
		Profile:    updated,
		Message:    "Profile updated successfully",
		RedirectTo: redirectTo,
	}, nil
}

// CheckCompletion reports the stored completion flag together with the
// onboarding redirect when the profile is still incomplete.
func (s *ProfileAppImpl) CheckCompletion(ctx context.Context, userID uint64) (*model.CompletionResponse, error) {
	isComplete, err := s.IsProfileComplete(ctx, userID)
	if err != nil {
		return nil, err
	}

	var redirectTo *string
	if !isComplete {
		redirect := constant.RedirectProfile
		redirectTo = &redirect
	}

	return &model.CompletionResponse{
		IsComplete: isComplete,
		RedirectTo: redirectTo,
	}, nil
}

// IsProfileComplete answers the gate middleware with the freshly stored flag.
func (s *ProfileAppImpl) IsProfileComplete(ctx context.Context, userID uint64) (bool, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		logger.Error("[IsProfileComplete] err getUser", zap.String("error", err.Error()))
		return false, cerr.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		logger.Warn("[IsProfileComplete] user not found for authenticated request", zap.Uint64("user_id", userID))
		return false, cerr.SetCustomError(constant.ErrUnauthorize)
	}
	return user.ProfileCompleted, nil
}

// applyUpdate copies every supplied field onto the entity. Nil pointers leave
// the stored value untouched; a pointer to the empty string clears the field.
func applyUpdate(u *model.UserEntity, req *model.ProfileUpdateRequest) {
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Nickname != nil {
		u.Nickname = *req.Nickname
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Gender != nil {
		u.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		u.DateOfBirth = *req.DateOfBirth
	}
	if req.BirthCity != nil {
		u.BirthCity = *req.BirthCity
	}
	if req.BirthState != nil {
		u.BirthState = *req.BirthState
	}
	if req.BirthCountry != nil {
		u.BirthCountry = *req.BirthCountry
	}
	if req.CurrentCity != nil {
		u.CurrentCity = *req.CurrentCity
	}
	if req.CurrentState != nil {
		u.CurrentState = *req.CurrentState
	}
	if req.CurrentCountry != nil {
		u.CurrentCountry = *req.CurrentCountry
	}
	if req.Gotra != nil {
		u.Gotra = *req.Gotra
	}
	if req.Pravara != nil {
		u.Pravara = *req.Pravara
	}
	if req.Community != nil {
		u.Community = *req.Community
	}
	if req.Occupation != nil {
		u.Occupation = *req.Occupation
	}
	if req.Company != nil {
		u.Company = *req.Company
	}
	if req.Industry != nil {
		u.Industry = *req.Industry
	}
	if req.PrimaryLanguage != nil {
		u.PrimaryLanguage = *req.PrimaryLanguage
	}
	if req.SecondaryLanguage != nil {
		u.SecondaryLanguage = *req.SecondaryLanguage
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.HideEmail != nil {
		u.HideEmail = *req.HideEmail
	}
	if req.HidePhone != nil {
		u.HidePhone = *req.HidePhone
	}
	if req.HideDob != nil {
		u.HideDob = *req.HideDob
	}
}
