package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/repository"
)

// UserInput 创建/更新用户；更新时 Password 为空表示不修改
type UserInput struct {
	ID             uint       `json:"id"`
	Identification string     `json:"identificacion" validate:"required,max=50"`
	Name           string     `json:"nombre" validate:"required,max=150"`
	Email          string     `json:"email" validate:"required,email,max=150"`
	Password       string     `json:"password" validate:"omitempty,min=6,max=72"`
	Role           model.Role `json:"perfil" validate:"required,oneof=trabajador supervisor vendedor administrador"`
	CompanyID      *uint      `json:"empresa_id"`
}

type UserService interface {
	List(ctx context.Context, role string, companyID int64) ([]model.UserView, error)
	Create(ctx context.Context, in UserInput) (*model.User, error)
	Update(ctx context.Context, in UserInput) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	cost      int
}

func NewUserService(users repository.UserRepository, companies repository.CompanyRepository) UserService {
	return &userService{users: users, companies: companies, cost: bcrypt.DefaultCost}
}

func (s *userService) List(ctx context.Context, role string, companyID int64) ([]model.UserView, error) {
	var f repository.UserFilter
	if role != "" {
		r := model.Role(role)
		if !r.Valid() {
			return nil, &ValidationError{Msg: "perfil no es válido"}
		}
		f.Role = r
	}
	if companyID > 0 {
		id := uint(companyID)
		f.CompanyID = &id
	}
	res, err := s.users.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []model.UserView{}
	}
	return res, nil
}

func (s *userService) Create(ctx context.Context, in UserInput) (*model.User, error) {
	normalizeUser(&in)
	if in.Password == "" {
		return nil, &ValidationError{Msg: "password es requerido"}
	}
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Identification: in.Identification,
		Name:           in.Name,
		Email:          in.Email,
		Password:       string(hash),
		Role:           in.Role,
		CompanyID:      in.CompanyID,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, mapWriteErr(err)
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, in UserInput) (*model.User, error) {
	if in.ID == 0 {
		return nil, ErrIDRequired
	}
	normalizeUser(&in)
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	fields := map[string]any{
		"identificacion": in.Identification,
		"nombre":         in.Name,
		"email":          in.Email,
		"perfil":         in.Role,
		"empresa_id":     in.CompanyID,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}
	if err := s.users.Update(ctx, in.ID, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, mapWriteErr(err)
	}
	u, err := s.users.Get(ctx, in.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	if err := s.users.Delete(ctx, uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// check 字段校验；trabajador 必须归属一个存在的公司
func (s *userService) check(ctx context.Context, in UserInput) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if in.CompanyID == nil {
		if in.Role == model.RoleWorker {
			return &ValidationError{Msg: "empresa_id es requerido para trabajador"}
		}
		return nil
	}
	if _, err := s.companies.Get(ctx, *in.CompanyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}
	return nil
}

func normalizeUser(in *UserInput) {
	in.Identification = strings.TrimSpace(in.Identification)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.CompanyID != nil && *in.CompanyID == 0 {
		in.CompanyID = nil
	}
}
