package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/comedor/internal/model"
	"github.com/d60-Lab/comedor/internal/testutil"
)

const day = "2024-06-01"

func TestOrderUpsertCreatesThenUpdatesSameRow(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	optA, optB := f.Menu.Options[0].ID, f.Menu.Options[1].ID

	id1, action, err := repo.Upsert(ctx, f.Worker.ID, optA, day)
	require.NoError(t, err)
	assert.Equal(t, model.OrderCreated, action)
	assert.NotZero(t, id1)

	id2, action, err := repo.Upsert(ctx, f.Worker.ID, optB, day)
	require.NoError(t, err)
	assert.Equal(t, model.OrderUpdated, action)
	assert.Equal(t, id1, id2)

	n, err := repo.CountByWorkerDate(ctx, f.Worker.ID, day)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	d, err := repo.FindDetail(ctx, f.Worker.ID, day)
	require.NoError(t, err)
	assert.Equal(t, optB, d.OptionID)
	assert.Equal(t, "Pescado frito", d.OptionName)
	assert.Equal(t, f.Menu.ID, d.MenuID)
	assert.Equal(t, "Menú semana 1", d.MenuName)
	require.NotNil(t, d.Price)
	assert.InDelta(t, 5200, *d.Price, 0.001)
}

func TestOrderUpsertDistinctDates(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	id1, _, err := repo.Upsert(ctx, f.Worker.ID, f.Menu.Options[0].ID, "2024-06-01")
	require.NoError(t, err)
	id2, action, err := repo.Upsert(ctx, f.Worker.ID, f.Menu.Options[0].ID, "2024-06-02")
	require.NoError(t, err)
	assert.Equal(t, model.OrderCreated, action)
	assert.NotEqual(t, id1, id2)
}

func TestOrderFindDetailNullPrice(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	_, _, err := repo.Upsert(ctx, f.Worker.ID, f.Menu.Options[2].ID, day)
	require.NoError(t, err)

	d, err := repo.FindDetail(ctx, f.Worker.ID, day)
	require.NoError(t, err)
	assert.Nil(t, d.Price)
}

func TestOrderFindDetailZeroPriceIsNull(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	opt := f.Menu.Options[0].ID
	require.NoError(t, db.Model(&model.MenuOption{}).Where("id = ?", opt).Update("precio", 0).Error)
	_, _, err := repo.Upsert(ctx, f.Worker.ID, opt, day)
	require.NoError(t, err)

	d, err := repo.FindDetail(ctx, f.Worker.ID, day)
	require.NoError(t, err)
	assert.Nil(t, d.Price)
}

func TestOrderFindDetailMissing(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewOrderRepository(db)

	_, err := repo.FindDetail(context.Background(), f.Worker.ID, day)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderDelete(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	_, _, err := repo.Upsert(ctx, f.Worker.ID, f.Menu.Options[0].ID, day)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, f.Worker.ID, day))
	assert.ErrorIs(t, repo.Delete(ctx, f.Worker.ID, day), ErrNotFound)

	_, err = repo.FindDetail(ctx, f.Worker.ID, day)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderConcurrentUpsertsLeaveOneRow(t *testing.T) {
	const writers = 32
	db := testutil.NewFileDB(t, 8)
	f := testutil.Seed(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	ids := make([]uint, writers)
	errs := make([]error, writers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			opt := f.Menu.Options[i%len(f.Menu.Options)].ID
			ids[i], _, errs[i] = repo.Upsert(ctx, f.Worker.ID, opt, day)
		}(i)
	}
	close(start)
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}
	n, err := repo.CountByWorkerDate(ctx, f.Worker.ID, day)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestOrderListByDate(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	other := model.Company{Name: "Minera Norte"}
	require.NoError(t, db.Create(&other).Error)
	w2 := model.User{Identification: "33", Name: "Ana", Email: "ana@example.com", Password: "x", Role: model.RoleWorker, CompanyID: &other.ID}
	require.NoError(t, db.Create(&w2).Error)

	_, _, err := repo.Upsert(ctx, f.Worker.ID, f.Menu.Options[0].ID, day)
	require.NoError(t, err)
	_, _, err = repo.Upsert(ctx, w2.ID, f.Menu.Options[1].ID, day)
	require.NoError(t, err)
	_, _, err = repo.Upsert(ctx, w2.ID, f.Menu.Options[1].ID, "2024-06-02")
	require.NoError(t, err)

	rows, err := repo.ListByDate(ctx, day, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = repo.ListByDate(ctx, day, &other.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].WorkerName)
	require.NotNil(t, rows[0].CompanyName)
	assert.Equal(t, "Minera Norte", *rows[0].CompanyName)
	assert.Equal(t, "Pescado frito", rows[0].OptionName)
}
