package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/testutil"
)

func TestMenuPublishOnePerCompanyAndDate(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	second := &model.Menu{Name: "Menú semana 2", CompanyID: f.Company.ID, Options: []model.MenuOption{{Idx: 1, Name: "Cazuela"}}}
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.Publish(ctx, f.Company.ID, day, f.Menu.ID))
	require.NoError(t, repo.Publish(ctx, f.Company.ID, day, second.ID))

	menus, err := repo.ListPublished(ctx, f.Company.ID, day)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, second.ID, menus[0].ID)
	assert.Equal(t, []string{day}, menus[0].PublishedDates)

	require.NoError(t, repo.Unpublish(ctx, f.Company.ID, day))
	assert.ErrorIs(t, repo.Unpublish(ctx, f.Company.ID, day), ErrNotFound)
}

func TestMenuUpdateOptions(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	keep := f.Menu.Options[0]
	keep.Name = "Pollo al horno"
	keep.Price = testutil.Price(4800)
	upd := &model.Menu{
		ID:        f.Menu.ID,
		Name:      "Menú renovado",
		CompanyID: f.Company.ID,
		Options: []model.MenuOption{
			keep,
			{Idx: 2, Name: "Tallarines"},
		},
	}
	require.NoError(t, repo.Update(ctx, upd))

	got, err := repo.Get(ctx, f.Menu.ID)
	require.NoError(t, err)
	assert.Equal(t, "Menú renovado", got.Name)
	require.Len(t, got.Options, 2)
	assert.Equal(t, keep.ID, got.Options[0].ID)
	assert.Equal(t, "Pollo al horno", got.Options[0].Name)
	assert.InDelta(t, 4800, *got.Options[0].Price, 0.001)
	assert.Equal(t, "Tallarines", got.Options[1].Name)
}

func TestMenuDeleteRefusedWhenOrdered(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewMenuRepository(db)
	orders := NewOrderRepository(db)
	ctx := context.Background()

	_, _, err := orders.Upsert(ctx, f.Worker.ID, f.Menu.Options[0].ID, day)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(ctx, f.Menu.ID), ErrInUse)

	require.NoError(t, orders.Delete(ctx, f.Worker.ID, day))
	require.NoError(t, repo.Delete(ctx, f.Menu.ID))
	_, err = repo.Get(ctx, f.Menu.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, f.Menu.ID), ErrNotFound)
}

func TestMenuCopy(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	target := model.Company{Name: "Minera Norte"}
	require.NoError(t, db.Create(&target).Error)

	cp, err := repo.Copy(ctx, f.Menu.ID, target.ID)
	require.NoError(t, err)
	assert.NotEqual(t, f.Menu.ID, cp.ID)
	assert.Equal(t, target.ID, cp.CompanyID)

	got, err := repo.Get(ctx, cp.ID)
	require.NoError(t, err)
	require.Len(t, got.Options, 3)
	for i, o := range got.Options {
		assert.NotEqual(t, f.Menu.Options[i].ID, o.ID)
		assert.Equal(t, f.Menu.Options[i].Name, o.Name)
	}
	assert.Nil(t, got.Options[2].Price)

	_, err = repo.Copy(ctx, 9999, target.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindOption(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewMenuRepository(db)

	ref, err := repo.FindOption(context.Background(), f.Menu.Options[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Pescado frito", ref.Name)
	assert.Equal(t, "Menú semana 1", ref.MenuName)

	_, err = repo.FindOption(context.Background(), 424242)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMenuGetIncludesPublishedDates(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	got, err := repo.Get(ctx, f.Menu.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.PublishedDates)

	require.NoError(t, repo.Publish(ctx, f.Company.ID, "2024-06-02", f.Menu.ID))
	require.NoError(t, repo.Publish(ctx, f.Company.ID, day, f.Menu.ID))

	got, err = repo.Get(ctx, f.Menu.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{day, "2024-06-02"}, got.PublishedDates)
}

func TestMenuUpdateCompanyDropsPublications(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	other := model.Company{Name: "Minera Norte"}
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, repo.Publish(ctx, f.Company.ID, day, f.Menu.ID))

	// 同公司更新保留发布
	same := f.Menu
	same.Name = "Menú renovado"
	require.NoError(t, repo.Update(ctx, &same))
	menus, err := repo.ListPublished(ctx, f.Company.ID, day)
	require.NoError(t, err)
	require.Len(t, menus, 1)

	moved := f.Menu
	moved.CompanyID = other.ID
	require.NoError(t, repo.Update(ctx, &moved))

	menus, err = repo.ListPublished(ctx, f.Company.ID, day)
	require.NoError(t, err)
	assert.Empty(t, menus)

	got, err := repo.Get(ctx, f.Menu.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.CompanyID)
	assert.Equal(t, []string{}, got.PublishedDates)
}

func TestMenuUpdateMissing(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.Seed(t, db)
	repo := NewMenuRepository(db)

	err := repo.Update(context.Background(), &model.Menu{ID: 9999, Name: "x", CompanyID: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}
