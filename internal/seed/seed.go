// Package seed 从 YAML 文件导入公司、用户与菜单
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/service"
	"github.com/d60-Lab/comedor/pkg/logger"
)

type Fixtures struct {
	Companies []CompanyFixture `yaml:"empresas"`
	Users     []UserFixture    `yaml:"usuarios"`
	Menus     []MenuFixture    `yaml:"menus"`
}

type CompanyFixture struct {
	Name string `yaml:"nombre"`
}

type UserFixture struct {
	Identification string `yaml:"identificacion"`
	Name           string `yaml:"nombre"`
	Email          string `yaml:"email"`
	Password       string `yaml:"password"`
	Role           string `yaml:"perfil"`
	Company        string `yaml:"empresa"`
}

type MenuFixture struct {
	Name        string          `yaml:"nombre"`
	Description string          `yaml:"descripcion"`
	Company     string          `yaml:"empresa"`
	Options     []OptionFixture `yaml:"opciones"`
	// 发布日期，YYYY-MM-DD
	Publish []string `yaml:"publicar"`
}

type OptionFixture struct {
	Name        string   `yaml:"nombre"`
	Description string   `yaml:"descripcion"`
	Price       *float64 `yaml:"precio"`
}

// Result 本次新建的数量；已存在的记录跳过
type Result struct {
	Companies    int
	Users        int
	Menus        int
	Publications int
}

func Parse(r io.Reader) (*Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fx, nil
}

func LoadFile(path string) (*Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Loader 通过服务层写入，复用校验与密码哈希
type Loader struct {
	Companies service.CompanyService
	Users     service.UserService
	Menus     service.MenuService
}

func (l *Loader) Apply(ctx context.Context, fx *Fixtures) (*Result, error) {
	res := &Result{}

	companies, err := l.companyIDs(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range fx.Companies {
		if _, ok := companies[c.Name]; ok {
			continue
		}
		created, err := l.Companies.Create(ctx, service.CompanyInput{Name: c.Name})
		if err != nil {
			return nil, fmt.Errorf("empresa %q: %w", c.Name, err)
		}
		companies[created.Name] = created.ID
		res.Companies++
	}

	for _, u := range fx.Users {
		in := service.UserInput{
			Identification: u.Identification,
			Name:           u.Name,
			Email:          u.Email,
			Password:       u.Password,
			Role:           model.Role(u.Role),
		}
		if u.Company != "" {
			id, ok := companies[u.Company]
			if !ok {
				return nil, fmt.Errorf("usuario %q: empresa %q desconocida", u.Email, u.Company)
			}
			in.CompanyID = &id
		}
		if _, err := l.Users.Create(ctx, in); err != nil {
			if errors.Is(err, service.ErrDuplicate) {
				logger.Debug("seed user exists", zap.String("email", u.Email))
				continue
			}
			return nil, fmt.Errorf("usuario %q: %w", u.Email, err)
		}
		res.Users++
	}

	for _, m := range fx.Menus {
		companyID, ok := companies[m.Company]
		if !ok {
			return nil, fmt.Errorf("menú %q: empresa %q desconocida", m.Name, m.Company)
		}
		menuID, created, err := l.ensureMenu(ctx, companyID, m)
		if err != nil {
			return nil, fmt.Errorf("menú %q: %w", m.Name, err)
		}
		if created {
			res.Menus++
		}
		for _, day := range m.Publish {
			if _, err := l.Menus.Publish(ctx, int64(menuID), int64(companyID), day); err != nil {
				return nil, fmt.Errorf("menú %q publicar %s: %w", m.Name, day, err)
			}
			res.Publications++
		}
	}
	return res, nil
}

func (l *Loader) companyIDs(ctx context.Context) (map[string]uint, error) {
	list, err := l.Companies.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(list))
	for _, c := range list {
		ids[c.Name] = c.ID
	}
	return ids, nil
}

// ensureMenu 同公司同名菜单视为已存在
func (l *Loader) ensureMenu(ctx context.Context, companyID uint, m MenuFixture) (uint, bool, error) {
	existing, err := l.Menus.List(ctx, int64(companyID), "")
	if err != nil {
		return 0, false, err
	}
	for _, e := range existing {
		if e.Name == m.Name {
			return e.ID, false, nil
		}
	}

	in := service.MenuInput{Name: m.Name, Description: m.Description, CompanyID: companyID}
	for _, o := range m.Options {
		in.Options = append(in.Options, service.MenuOptionInput{Name: o.Name, Description: o.Description, Price: o.Price})
	}
	created, err := l.Menus.Create(ctx, in)
	if err != nil {
		return 0, false, err
	}
	return created.ID, true, nil
}
