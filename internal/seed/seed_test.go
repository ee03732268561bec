package seed

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/repository"
	"github.com/d60-Lab/comedor/internal/service"
	"github.com/d60-Lab/comedor/internal/testutil"
)

const fixturesYAML = `
empresas:
  - nombre: Constructora Andes
  - nombre: Minera Norte
usuarios:
  - identificacion: "11111111-1"
    nombre: Pedro Pérez
    email: pedro@example.com
    password: secreto1
    perfil: trabajador
    empresa: Constructora Andes
  - identificacion: "99999999-9"
    nombre: Admin
    email: admin@example.com
    password: secreto1
    perfil: administrador
menus:
  - nombre: Menú lunes
    empresa: Minera Norte
    opciones:
      - nombre: Cazuela
        precio: 3900
      - nombre: Ensalada
    publicar: ["2024-06-03"]
`

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("empresas:\n  - name: X\n"))
	assert.Error(t, err)

	fx, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, fx.Companies)
}

func TestApplyIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	companies := repository.NewCompanyRepository(db)
	menus := repository.NewMenuRepository(db)
	clock := service.FixedClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	l := &Loader{
		Companies: service.NewCompanyService(companies),
		Users:     service.NewUserService(repository.NewUserRepository(db), companies),
		Menus:     service.NewMenuService(menus, companies, service.NewMenuCache(nil, 0), clock),
	}

	fx, err := Parse(strings.NewReader(fixturesYAML))
	require.NoError(t, err)
	require.Len(t, fx.Menus, 1)
	require.NotNil(t, fx.Menus[0].Options[0].Price)
	assert.Nil(t, fx.Menus[0].Options[1].Price)

	res, err := l.Apply(context.Background(), fx)
	require.NoError(t, err)
	assert.Equal(t, Result{Companies: 2, Users: 2, Menus: 1, Publications: 1}, *res)

	res, err = l.Apply(context.Background(), fx)
	require.NoError(t, err)
	assert.Equal(t, Result{Publications: 1}, *res)

	var worker model.User
	require.NoError(t, db.Where("email = ?", "pedro@example.com").Take(&worker).Error)
	assert.NotEqual(t, "secreto1", worker.Password)

	var n int64
	require.NoError(t, db.Model(&model.MenuPublication{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestApplyUnknownCompany(t *testing.T) {
	db := testutil.NewDB(t)
	companies := repository.NewCompanyRepository(db)
	l := &Loader{
		Companies: service.NewCompanyService(companies),
		Users:     service.NewUserService(repository.NewUserRepository(db), companies),
	}
	fx := &Fixtures{Users: []UserFixture{{Identification: "1", Name: "X", Email: "x@example.com", Password: "secreto1", Role: "trabajador", Company: "Nadie"}}}

	_, err := l.Apply(context.Background(), fx)
	assert.ErrorContains(t, err, "desconocida")
}
