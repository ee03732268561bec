package service

import (
	"context"
	"errors"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/repository"
)

// MenuOptionInput 菜单选项；OptionID 为 0 表示新建
type MenuOptionInput struct {
	OptionID    uint     `json:"opcion_id"`
	Name        string   `json:"nombre" validate:"required,max=150"`
	Description string   `json:"descripcion"`
	Price       *float64 `json:"precio" validate:"omitempty,gte=0"`
}

// MenuInput 创建/更新菜单
type MenuInput struct {
	ID          uint              `json:"id"`
	Name        string            `json:"nombre" validate:"required,max=150"`
	Description string            `json:"descripcion"`
	CompanyID   uint              `json:"empresa_id" validate:"required"`
	Options     []MenuOptionInput `json:"opciones" validate:"required,min=1,dive"`
}

func (in MenuInput) toModel() *model.Menu {
	m := &model.Menu{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		CompanyID:   in.CompanyID,
		Options:     make([]model.MenuOption, len(in.Options)),
	}
	for i, o := range in.Options {
		m.Options[i] = model.MenuOption{
			ID:          o.OptionID,
			MenuID:      in.ID,
			Idx:         i + 1,
			Name:        o.Name,
			Description: o.Description,
			Price:       o.Price,
		}
	}
	return m
}

// MenuService 菜单目录
type MenuService interface {
	// List companyID 为 0 时不过滤；给了 date 时只返回当天发布的菜单
	List(ctx context.Context, companyID int64, date string) ([]model.Menu, error)
	Create(ctx context.Context, in MenuInput) (*model.Menu, error)
	Update(ctx context.Context, in MenuInput) (*model.Menu, error)
	Delete(ctx context.Context, id int64) error
	Copy(ctx context.Context, menuID, targetCompanyID int64) (*model.Menu, error)
	// Publish 返回实际发布的日期
	Publish(ctx context.Context, menuID, companyID int64, date string) (string, error)
	Unpublish(ctx context.Context, companyID int64, date string) (string, error)
}

type menuService struct {
	menus     repository.MenuRepository
	companies repository.CompanyRepository
	cache     *MenuCache
	clock     Clock
}

func NewMenuService(menus repository.MenuRepository, companies repository.CompanyRepository, cache *MenuCache, clock Clock) MenuService {
	return &menuService{menus: menus, companies: companies, cache: cache, clock: clock}
}

func (s *menuService) List(ctx context.Context, companyID int64, date string) ([]model.Menu, error) {
	if companyID < 0 {
		companyID = 0
	}
	if date != "" {
		if companyID == 0 {
			return nil, ErrCompanyIDRequired
		}
		day, err := s.clock.ResolveDate(date)
		if err != nil {
			return nil, err
		}
		date = day
	}

	cached, key, ok := s.cache.Get(ctx, uint(companyID), date)
	if ok {
		return cached, nil
	}

	var (
		menus []model.Menu
		err   error
	)
	switch {
	case date != "":
		menus, err = s.menus.ListPublished(ctx, uint(companyID), date)
	case companyID > 0:
		id := uint(companyID)
		menus, err = s.menus.List(ctx, &id)
	default:
		menus, err = s.menus.List(ctx, nil)
	}
	if err != nil {
		return nil, err
	}
	if menus == nil {
		menus = []model.Menu{}
	}
	s.cache.Set(ctx, key, menus)
	return menus, nil
}

func (s *menuService) Create(ctx context.Context, in MenuInput) (*model.Menu, error) {
	in.ID = 0
	for i := range in.Options {
		in.Options[i].OptionID = 0
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := s.requireCompany(ctx, in.CompanyID); err != nil {
		return nil, err
	}
	m := in.toModel()
	if err := s.menus.Create(ctx, m); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	m.PublishedDates = []string{}
	return m, nil
}

func (s *menuService) Update(ctx context.Context, in MenuInput) (*model.Menu, error) {
	if in.ID == 0 {
		return nil, ErrIDRequired
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := s.requireCompany(ctx, in.CompanyID); err != nil {
		return nil, err
	}
	if err := s.menus.Update(ctx, in.toModel()); err != nil {
		return nil, mapMenuErr(err)
	}
	s.cache.Invalidate(ctx)
	return s.get(ctx, in.ID)
}

func (s *menuService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrIDRequired
	}
	if err := s.menus.Delete(ctx, uint(id)); err != nil {
		return mapMenuErr(err)
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *menuService) Copy(ctx context.Context, menuID, targetCompanyID int64) (*model.Menu, error) {
	if menuID <= 0 {
		return nil, ErrMenuIDRequired
	}
	if targetCompanyID <= 0 {
		return nil, ErrCompanyIDRequired
	}
	if err := s.requireCompany(ctx, uint(targetCompanyID)); err != nil {
		return nil, err
	}
	m, err := s.menus.Copy(ctx, uint(menuID), uint(targetCompanyID))
	if err != nil {
		return nil, mapMenuErr(err)
	}
	s.cache.Invalidate(ctx)
	m.PublishedDates = []string{}
	return m, nil
}

func (s *menuService) Publish(ctx context.Context, menuID, companyID int64, date string) (string, error) {
	if menuID <= 0 {
		return "", ErrMenuIDRequired
	}
	day, err := s.clock.ResolveDate(date)
	if err != nil {
		return "", err
	}
	m, err := s.get(ctx, uint(menuID))
	if err != nil {
		return "", err
	}
	company := m.CompanyID
	if companyID > 0 {
		if uint(companyID) != m.CompanyID {
			return "", ErrCompanyMismatch
		}
		company = uint(companyID)
	}
	if err := s.menus.Publish(ctx, company, day, m.ID); err != nil {
		return "", err
	}
	s.cache.Invalidate(ctx)
	return day, nil
}

func (s *menuService) Unpublish(ctx context.Context, companyID int64, date string) (string, error) {
	if companyID <= 0 {
		return "", ErrCompanyIDRequired
	}
	day, err := s.clock.ResolveDate(date)
	if err != nil {
		return "", err
	}
	if err := s.menus.Unpublish(ctx, uint(companyID), day); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotPublished
		}
		return "", err
	}
	s.cache.Invalidate(ctx)
	return day, nil
}

func (s *menuService) get(ctx context.Context, id uint) (*model.Menu, error) {
	m, err := s.menus.Get(ctx, id)
	if err != nil {
		return nil, mapMenuErr(err)
	}
	if m.PublishedDates == nil {
		m.PublishedDates = []string{}
	}
	return m, nil
}

func (s *menuService) requireCompany(ctx context.Context, id uint) error {
	if _, err := s.companies.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}
	return nil
}

func mapMenuErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrInUse):
		return ErrMenuInUse
	case errors.Is(err, repository.ErrNotFound):
		return ErrMenuNotFound
	}
	return err
}
