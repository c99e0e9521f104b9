package service

import (
	"context"
	"errors"
	"net/http"

	"coopmini/dao"
	"coopmini/models"
	"coopmini/pkg/encrypt"
	"coopmini/pkg/response"
	"coopmini/types"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, opt *types.SignupRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	FindById(ctx context.Context, uid int) (*models.User, error)
	UpdateProfile(ctx context.Context, uid int, opt *types.UpdateProfileRequest) (*models.User, error)
	CreateAdmin(ctx context.Context, email, username, password string) (*models.User, error)
}

type UserService struct {
	UsersRepo *dao.Users
}

func NewUserService(usersRepo *dao.Users) IUserService {
	return &UserService{UsersRepo: usersRepo}
}

// Register 注册用户，邮箱唯一
func (s *UserService) Register(ctx context.Context, opt *types.SignupRequest) (*models.User, error) {
	if s.UsersRepo.IsEmailExist(ctx, opt.Email) {
		return nil, response.BadRequest("Email already exists")
	}

	user := &models.User{
		Email:    opt.Email,
		Username: opt.Username,
		Password: encrypt.HashPassword(opt.Password),
	}

	if err := s.UsersRepo.Create(ctx, user); err != nil {
		// 并发注册时靠唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.BadRequest("Email already exists")
		}
		return nil, err
	}

	return user, nil
}

// Login 登录处理，未知邮箱与密码错误返回同一提示，避免账号枚举
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusUnauthorized, "Email or password is incorrect")
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, response.NewError(http.StatusUnauthorized, "Email or password is incorrect")
	}

	return user, nil
}

func (s *UserService) FindById(ctx context.Context, uid int) (*models.User, error) {
	user, err := s.UsersRepo.FindById(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile 自助修改用户名 / 密码，留空的字段不动
func (s *UserService) UpdateProfile(ctx context.Context, uid int, opt *types.UpdateProfileRequest) (*models.User, error) {
	updates := map[string]any{}
	if opt.Username != "" {
		updates["username"] = opt.Username
	}
	if opt.Password != "" {
		updates["password"] = encrypt.HashPassword(opt.Password)
	}

	if len(updates) > 0 {
		if _, err := s.UsersRepo.UpdateById(ctx, uid, updates); err != nil {
			return nil, err
		}
	}

	return s.FindById(ctx, uid)
}

// CreateAdmin 创建管理员账号，create-admin 子命令使用
func (s *UserService) CreateAdmin(ctx context.Context, email, username, password string) (*models.User, error) {
	if s.UsersRepo.IsEmailExist(ctx, email) {
		return nil, errors.New("email already exists")
	}

	user := &models.User{
		Email:    email,
		Username: username,
		Password: encrypt.HashPassword(password),
		IsAdmin:  true,
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
