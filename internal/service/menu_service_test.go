package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/repository"
	"github.com/d60-Lab/comedor/internal/testutil"
)

func newMenuService(t *testing.T, rdb *redis.Client) (MenuService, *testutil.Fixture, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	svc := NewMenuService(
		repository.NewMenuRepository(db),
		repository.NewCompanyRepository(db),
		NewMenuCache(rdb, time.Minute),
		FixedClock(testNow),
	)
	return svc, f, db
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func optionNames(m model.Menu) []string {
	res := make([]string, len(m.Options))
	for i, o := range m.Options {
		res[i] = o.Name
	}
	return res
}

func TestMenuCreateValidates(t *testing.T) {
	svc, f, _ := newMenuService(t, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, MenuInput{CompanyID: f.Company.ID, Options: []MenuOptionInput{{Name: "Sopa"}}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "nombre es requerido")

	_, err = svc.Create(ctx, MenuInput{Name: "Sin opciones", CompanyID: f.Company.ID})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "opciones")

	neg := -1.0
	_, err = svc.Create(ctx, MenuInput{Name: "X", CompanyID: f.Company.ID, Options: []MenuOptionInput{{Name: "Sopa", Price: &neg}}})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Msg, "precio")

	_, err = svc.Create(ctx, MenuInput{Name: "X", CompanyID: 999, Options: []MenuOptionInput{{Name: "Sopa"}}})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestMenuCreateAssignsPositions(t *testing.T) {
	svc, f, _ := newMenuService(t, nil)

	m, err := svc.Create(context.Background(), MenuInput{
		Name:      "Menú semana 2",
		CompanyID: f.Company.ID,
		Options: []MenuOptionInput{
			{Name: "Cazuela", Price: testutil.Price(3900)},
			{Name: "Charquicán"},
		},
	})
	require.NoError(t, err)
	require.Len(t, m.Options, 2)
	assert.Equal(t, 1, m.Options[0].Idx)
	assert.Equal(t, 2, m.Options[1].Idx)
	assert.Nil(t, m.Options[1].Price)
	assert.Equal(t, []string{}, m.PublishedDates)
}

func TestMenuUpdateReplacesOptions(t *testing.T) {
	svc, f, _ := newMenuService(t, nil)
	ctx := context.Background()

	m, err := svc.Update(ctx, MenuInput{
		ID:        f.Menu.ID,
		Name:      "Menú semana 1",
		CompanyID: f.Company.ID,
		Options: []MenuOptionInput{
			{OptionID: f.Menu.Options[1].ID, Name: "Pescado a la plancha", Price: testutil.Price(5500)},
			{Name: "Ensalada César"},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]string{"Pescado a la plancha", "Ensalada César"}, optionNames(*m)))
	assert.Equal(t, f.Menu.Options[1].ID, m.Options[0].ID)

	_, err = svc.Update(ctx, MenuInput{Name: "x", CompanyID: f.Company.ID, Options: []MenuOptionInput{{Name: "a"}}})
	assert.ErrorIs(t, err, ErrIDRequired)

	_, err = svc.Update(ctx, MenuInput{ID: 999, Name: "x", CompanyID: f.Company.ID, Options: []MenuOptionInput{{Name: "a"}}})
	assert.ErrorIs(t, err, ErrMenuNotFound)
}

func TestMenuUpdateKeepsOrderedOptions(t *testing.T) {
	svc, f, db := newMenuService(t, nil)
	ctx := context.Background()
	orders := repository.NewOrderRepository(db)

	_, _, err := orders.Upsert(ctx, f.Worker.ID, f.Menu.Options[0].ID, "2024-06-01")
	require.NoError(t, err)

	_, err = svc.Update(ctx, MenuInput{
		ID:        f.Menu.ID,
		Name:      "Menú semana 1",
		CompanyID: f.Company.ID,
		Options:   []MenuOptionInput{{OptionID: f.Menu.Options[1].ID, Name: "Pescado frito"}},
	})
	assert.ErrorIs(t, err, ErrMenuInUse)
	assert.ErrorIs(t, svc.Delete(ctx, int64(f.Menu.ID)), ErrMenuInUse)

	got, err := svc.List(ctx, int64(f.Company.ID), "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Options, 3)
}

func TestMenuPublishAndList(t *testing.T) {
	svc, f, _ := newMenuService(t, nil)
	ctx := context.Background()

	_, err := svc.List(ctx, 0, "2024-06-01")
	assert.ErrorIs(t, err, ErrCompanyIDRequired)

	menus, err := svc.List(ctx, int64(f.Company.ID), "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, menus)

	day, err := svc.Publish(ctx, int64(f.Menu.ID), 0, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", day)

	menus, err = svc.List(ctx, int64(f.Company.ID), "2024-06-01")
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, f.Menu.ID, menus[0].ID)
	assert.Equal(t, []string{"2024-06-01"}, menus[0].PublishedDates)

	_, err = svc.Publish(ctx, int64(f.Menu.ID), int64(f.Company.ID)+100, "")
	assert.ErrorIs(t, err, ErrCompanyMismatch)
	_, err = svc.Publish(ctx, 999, 0, "")
	assert.ErrorIs(t, err, ErrMenuNotFound)
	_, err = svc.Publish(ctx, 0, 0, "")
	assert.ErrorIs(t, err, ErrMenuIDRequired)

	_, err = svc.Unpublish(ctx, int64(f.Company.ID), "2024-06-01")
	require.NoError(t, err)
	_, err = svc.Unpublish(ctx, int64(f.Company.ID), "2024-06-01")
	assert.ErrorIs(t, err, ErrNotPublished)
}

func TestMenuCopy(t *testing.T) {
	svc, f, db := newMenuService(t, nil)
	ctx := context.Background()

	target := model.Company{Name: "Minera Norte"}
	require.NoError(t, db.Create(&target).Error)

	cp, err := svc.Copy(ctx, int64(f.Menu.ID), int64(target.ID))
	require.NoError(t, err)
	assert.Equal(t, target.ID, cp.CompanyID)
	assert.Equal(t, optionNames(f.Menu), optionNames(*cp))

	_, err = svc.Copy(ctx, int64(f.Menu.ID), 999)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
	_, err = svc.Copy(ctx, 999, int64(target.ID))
	assert.ErrorIs(t, err, ErrMenuNotFound)
	_, err = svc.Copy(ctx, int64(f.Menu.ID), 0)
	assert.ErrorIs(t, err, ErrCompanyIDRequired)
}

func TestMenuListCachedAndInvalidated(t *testing.T) {
	mr, rdb := newRedis(t)
	svc, f, db := newMenuService(t, rdb)
	ctx := context.Background()
	company := int64(f.Company.ID)

	menus, err := svc.List(ctx, company, "")
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.True(t, mr.Exists("menus:v0:empresa:1:fecha:"))

	// 绕过服务直接改库，缓存仍返回旧名字
	require.NoError(t, db.Model(&model.Menu{}).Where("id = ?", f.Menu.ID).Update("nombre", "Cambiado").Error)
	menus, err = svc.List(ctx, company, "")
	require.NoError(t, err)
	assert.Equal(t, "Menú semana 1", menus[0].Name)

	_, err = svc.Create(ctx, MenuInput{Name: "Menú semana 2", CompanyID: f.Company.ID, Options: []MenuOptionInput{{Name: "Cazuela"}}})
	require.NoError(t, err)
	v, err := mr.Get(menuVersionKey)
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	menus, err = svc.List(ctx, company, "")
	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Equal(t, "Cambiado", menus[0].Name)

	ttl := mr.TTL("menus:v1:empresa:1:fecha:")
	assert.Equal(t, time.Minute, ttl)
}

func TestMenuListSurvivesRedisOutage(t *testing.T) {
	mr, rdb := newRedis(t)
	svc, f, _ := newMenuService(t, rdb)
	mr.Close()

	menus, err := svc.List(context.Background(), int64(f.Company.ID), "")
	require.NoError(t, err)
	assert.Len(t, menus, 1)
}

func TestMenuCacheStats(t *testing.T) {
	_, rdb := newRedis(t)
	cache := NewMenuCache(rdb, 0)
	ctx := context.Background()

	_, key, ok := cache.Get(ctx, 1, "")
	assert.False(t, ok)
	assert.Equal(t, "menus:v0:empresa:1:fecha:", key)
	cache.Set(ctx, key, []model.Menu{{ID: 3, Name: "Menú"}})
	got, _, ok := cache.Get(ctx, 1, "")
	require.True(t, ok)
	assert.Equal(t, uint(3), got[0].ID)

	assert.Equal(t, CacheStats{Enabled: true, Hits: 1, Misses: 1}, cache.Stats())
	assert.NoError(t, cache.Ping(ctx))

	var off *MenuCache
	assert.Equal(t, CacheStats{}, off.Stats())
	assert.NoError(t, NewMenuCache(nil, 0).Ping(ctx))
}

// slowMenuRepo 在 List 查库之后、结果写入缓存之前执行 afterList
type slowMenuRepo struct {
	repository.MenuRepository
	afterList func()
}

func (r *slowMenuRepo) List(ctx context.Context, companyID *uint) ([]model.Menu, error) {
	menus, err := r.MenuRepository.List(ctx, companyID)
	if r.afterList != nil {
		fn := r.afterList
		r.afterList = nil
		fn()
	}
	return menus, err
}

func TestMenuListIgnoresResultReadBeforeConcurrentWrite(t *testing.T) {
	_, rdb := newRedis(t)
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := &slowMenuRepo{MenuRepository: repository.NewMenuRepository(db)}
	svc := NewMenuService(repo, repository.NewCompanyRepository(db), NewMenuCache(rdb, time.Minute), FixedClock(testNow))
	ctx := context.Background()

	opts := make([]MenuOptionInput, len(f.Menu.Options))
	for i, o := range f.Menu.Options {
		opts[i] = MenuOptionInput{OptionID: o.ID, Name: o.Name, Description: o.Description, Price: o.Price}
	}
	repo.afterList = func() {
		_, err := svc.Update(ctx, MenuInput{ID: f.Menu.ID, Name: "Renombrado", CompanyID: f.Company.ID, Options: opts})
		require.NoError(t, err)
	}

	menus, err := svc.List(ctx, int64(f.Company.ID), "")
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Menú semana 1", menus[0].Name)

	menus, err = svc.List(ctx, int64(f.Company.ID), "")
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Renombrado", menus[0].Name)
}

func TestMenuUpdateReturnsPublishedDates(t *testing.T) {
	svc, f, _ := newMenuService(t, nil)
	ctx := context.Background()

	_, err := svc.Publish(ctx, int64(f.Menu.ID), 0, "2024-06-01")
	require.NoError(t, err)

	m, err := svc.Update(ctx, MenuInput{
		ID:        f.Menu.ID,
		Name:      "Menú semana 1",
		CompanyID: f.Company.ID,
		Options: []MenuOptionInput{
			{OptionID: f.Menu.Options[0].ID, Name: "Pollo asado"},
			{OptionID: f.Menu.Options[1].ID, Name: "Pescado frito"},
			{OptionID: f.Menu.Options[2].ID, Name: "Vegetariano"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01"}, m.PublishedDates)
}

func TestMenuMovedToOtherCompanyIsUnpublished(t *testing.T) {
	svc, f, db := newMenuService(t, nil)
	ctx := context.Background()

	other := model.Company{Name: "Minera Norte"}
	require.NoError(t, db.Create(&other).Error)
	_, err := svc.Publish(ctx, int64(f.Menu.ID), 0, "2024-06-01")
	require.NoError(t, err)

	m, err := svc.Update(ctx, MenuInput{
		ID:        f.Menu.ID,
		Name:      "Menú semana 1",
		CompanyID: other.ID,
		Options:   []MenuOptionInput{{OptionID: f.Menu.Options[0].ID, Name: "Pollo asado"}, {OptionID: f.Menu.Options[1].ID, Name: "Pescado frito"}, {OptionID: f.Menu.Options[2].ID, Name: "Vegetariano"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, m.PublishedDates)

	menus, err := svc.List(ctx, int64(f.Company.ID), "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, menus)
}
