package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/repository"
)

// CompanyInput 创建/重命名公司
type CompanyInput struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre" validate:"required,max=150"`
}

type CompanyService interface {
	List(ctx context.Context) ([]model.Company, error)
	Create(ctx context.Context, in CompanyInput) (*model.Company, error)
	Update(ctx context.Context, in CompanyInput) (*model.Company, error)
	Delete(ctx context.Context, id int64) error
}

type companyService struct {
	companies repository.CompanyRepository
}

func NewCompanyService(companies repository.CompanyRepository) CompanyService {
	return &companyService{companies: companies}
}

func (s *companyService) List(ctx context.Context) ([]model.Company, error) {
	res, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []model.Company{}
	}
	return res, nil
}

func (s *companyService) Create(ctx context.Context, in CompanyInput) (*model.Company, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	c := &model.Company{Name: in.Name}
	if err := s.companies.Create(ctx, c); err != nil {
		return nil, mapWriteErr(err)
	}
	return c, nil
}

func (s *companyService) Update(ctx context.Context, in CompanyInput) (*model.Company, error) {
	if in.ID == 0 {
		return nil, ErrIDRequired
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := s.companies.Rename(ctx, in.ID, in.Name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, mapWriteErr(err)
	}
	return s.companies.Get(ctx, in.ID)
}

func (s *companyService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	used, err := s.companies.InUse(ctx, uint(id))
	if err != nil {
		return err
	}
	if used {
		return ErrCompanyInUse
	}
	if err := s.companies.Delete(ctx, uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}
	return nil
}

// mapWriteErr 唯一键冲突 -> ErrDuplicate
func mapWriteErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
