package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"minimall/config"
	"minimall/dao"
	"minimall/models"
	"minimall/pkg/encrypt"
	"minimall/pkg/jwt"
	"minimall/types"

	"gorm.io/gorm"
)

// 与老后台一致的输入约束
var (
	userReg = regexp.MustCompile(`^\w{3,16}$`)
	pwdReg  = regexp.MustCompile(`^\w{8,16}$`)
	telReg  = regexp.MustCompile(`^1(30|31|32|33|34|35|36|37|38|39|50|51|52|53|55|56|57|58|59|80|86|87|88|89)\d{8}$`)
)

var (
	ErrUserExists    = errors.New("该用户名已被注册")
	ErrUserNotFound  = errors.New("用户名不存在")
	ErrWrongPassword = errors.New("密码错误")
	ErrBadUsername   = errors.New("用户名必须是3~16位数字或字母")
	ErrBadPassword   = errors.New("密码必须是8~16位数字或字母")
	ErrBadTel        = errors.New("请输入正确的手机号码")
	ErrLowPrivilege  = errors.New("权限不足")
	ErrBadPrivilege  = errors.New("权限必须是1~100的整数")
	ErrBadNickname   = errors.New("昵称必须是1~10位字符")
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	RegisterCustomer(ctx context.Context, req *types.RegisterRequest) (*models.Customer, error)
	RegisterAdmin(ctx context.Context, operatorPrivilege int, req *types.AdminRegisterRequest) (*models.Admin, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error)
}

type AuthService struct {
	Config      *config.Config
	CustomerDAO *dao.Customer
	AdminDAO    *dao.Admin
}

func (s *AuthService) RegisterCustomer(ctx context.Context, req *types.RegisterRequest) (*models.Customer, error) {
	if !userReg.MatchString(req.User) {
		return nil, ErrBadUsername
	}
	if !pwdReg.MatchString(req.Password) {
		return nil, ErrBadPassword
	}
	if !telReg.MatchString(req.Tel) {
		return nil, ErrBadTel
	}
	if req.Name == "" || len([]rune(req.Name)) > 10 {
		return nil, ErrBadNickname
	}
	if s.CustomerDAO.IsIDExist(ctx, req.User) {
		return nil, ErrUserExists
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	customer := &models.Customer{
		ID:   req.User,
		Name: req.Name,
		Tel:  req.Tel,
		Pwd:  hash,
	}
	if err := s.CustomerDAO.Create(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return customer, nil
}

// RegisterAdmin 仅目录管理员（privilege=100）可创建后台账号
func (s *AuthService) RegisterAdmin(ctx context.Context, operatorPrivilege int, req *types.AdminRegisterRequest) (*models.Admin, error) {
	if operatorPrivilege < models.PrivilegeCatalog {
		return nil, ErrLowPrivilege
	}
	if !userReg.MatchString(req.User) {
		return nil, ErrBadUsername
	}
	if !pwdReg.MatchString(req.Password) {
		return nil, ErrBadPassword
	}
	if req.Privilege < 1 || req.Privilege > 100 {
		return nil, ErrBadPrivilege
	}
	if s.AdminDAO.IsIDExist(ctx, req.User) {
		return nil, ErrUserExists
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{
		ID:        req.User,
		Pwd:       hash,
		Privilege: req.Privilege,
	}
	if err := s.AdminDAO.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return admin, nil
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	var (
		kind      string
		privilege int
		hash      string
	)

	if req.IsAdmin {
		admin, err := s.AdminDAO.FindByID(ctx, req.User)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		kind = jwt.KindAdmin
		privilege = admin.Privilege
		hash = admin.Pwd
	} else {
		customer, err := s.CustomerDAO.FindByID(ctx, req.User)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		kind = jwt.KindCustomer
		privilege = customer.Privilege()
		hash = customer.Pwd
	}

	if !encrypt.VerifyPassword(hash, req.Password) {
		return nil, ErrWrongPassword
	}

	expire := time.Duration(s.Config.Jwt.Expire) * time.Second
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), req.User, kind, privilege, expire)
	if err != nil {
		return nil, err
	}
	return &types.TokenResponse{
		AccessToken: token,
		ExpiresIn:   s.Config.Jwt.Expire,
		Kind:        kind,
		Privilege:   privilege,
	}, nil
}
