package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/comedor/internal/repository"
	"github.com/d60-Lab/comedor/internal/testutil"
)

func TestCompanyLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	svc := NewCompanyService(repository.NewCompanyRepository(db))
	ctx := context.Background()

	c, err := svc.Create(ctx, CompanyInput{Name: "  Minera Norte "})
	require.NoError(t, err)
	assert.Equal(t, "Minera Norte", c.Name)

	_, err = svc.Create(ctx, CompanyInput{Name: "Minera Norte"})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = svc.Create(ctx, CompanyInput{})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	c, err = svc.Update(ctx, CompanyInput{ID: c.ID, Name: "Minera Sur"})
	require.NoError(t, err)
	assert.Equal(t, "Minera Sur", c.Name)

	_, err = svc.Update(ctx, CompanyInput{ID: 999, Name: "Nada"})
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Constructora Andes", list[0].Name)

	assert.ErrorIs(t, svc.Delete(ctx, int64(f.Company.ID)), ErrCompanyInUse)
	require.NoError(t, svc.Delete(ctx, int64(c.ID)))
	assert.ErrorIs(t, svc.Delete(ctx, int64(c.ID)), ErrCompanyNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 0), ErrIDRequired)
}
