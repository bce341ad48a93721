package service

import (
	"context"
	"time"

	"uspage/internal/api/config"
	"uspage/internal/api/dto"
	"uspage/internal/model"
	"uspage/internal/pkg/consts"
	"uspage/internal/pkg/redis"
	"uspage/internal/pkg/security"
	"uspage/internal/repository"

	"github.com/jinzhu/copier"
)

type AuthService interface {
	Register(ctx context.Context, dto *dto.RegisterDTO) (*dto.AuthDTO, error)
	Login(ctx context.Context, dto *dto.LoginDTO) (*dto.AuthDTO, error)
	Logout(ctx context.Context, userID uint64) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

func (s *AuthServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.AuthDTO, error) {
	findUser, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return nil, err
	}
	if findUser != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     regDTO.Name,
		Email:    regDTO.Email,
		Password: passwordHash,
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(ctx, user)
}

func (s *AuthServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.AuthDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return nil, err
	}
	// 用户不存在与密码错误返回同一消息，避免枚举账号
	if user == nil {
		return nil, ErrLoginIncorrect
	}
	if err = security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return nil, ErrLoginIncorrect
	}

	return s.issueToken(ctx, user)
}

// issueToken 签发新令牌并登记为当前有效签名，同名旧令牌随之失效
func (s *AuthServiceImpl) issueToken(ctx context.Context, user *model.User) (*dto.AuthDTO, error) {
	token, err := security.GenerateToken(user.ID, consts.AuthTokenName)
	if err != nil {
		return nil, err
	}

	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil, err
	}

	expiration := time.Duration(config.Cfg.JWT.ExpirationHours) * time.Hour
	if err = redis.SetCurrentToken(ctx, user.ID, consts.AuthTokenName, signature, expiration); err != nil {
		return nil, err
	}

	userDTO := dto.UserDTO{}
	if err = copier.Copy(&userDTO, user); err != nil {
		return nil, err
	}

	return &dto.AuthDTO{User: userDTO, Token: token}, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, userID uint64) error {
	return redis.DeleteCurrentToken(ctx, userID, consts.AuthTokenName)
}

func (s *AuthServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}
