package service

import (
	"context"
	"dsa_platform_backend/internal/config"
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/repository"
	"dsa_platform_backend/internal/util"
	"dsa_platform_backend/pkg/monitoring"
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcrypt 只处理前 72 字节，按字节而不是字符计算
const maxPasswordBytes = 72

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type LoginResult struct {
	User  model.UserSummary
	Token string
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// 邮箱不存在时也做一次 bcrypt 比较，避免通过响应时间区分“邮箱不存在”和“密码错误”
func compareDummyHash(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dsa-platform-placeholder"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// UsernameFromEmail 取邮箱 @ 之前的部分作为默认用户名
func UsernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (*model.User, error) {
	if len(password) > maxPasswordBytes {
		return nil, util.ErrPasswordTooLong
	}

	exists, err := s.UserRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		monitoring.AuthEvents.WithLabelValues(monitoring.AuthSignupConflict).Inc()
		return nil, util.ErrEmailRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: UsernameFromEmail(email),
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		// 并发注册同一邮箱时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			monitoring.AuthEvents.WithLabelValues(monitoring.AuthSignupConflict).Inc()
			return nil, util.ErrEmailRegistered
		}
		return nil, err
	}

	monitoring.AuthEvents.WithLabelValues(monitoring.AuthSignup).Inc()
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			compareDummyHash(password)
			monitoring.AuthEvents.WithLabelValues(monitoring.AuthLoginFailure).Inc()
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		monitoring.AuthEvents.WithLabelValues(monitoring.AuthLoginFailure).Inc()
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	monitoring.AuthEvents.WithLabelValues(monitoring.AuthLoginSuccess).Inc()
	return &LoginResult{User: user.Summary(), Token: token}, nil
}
