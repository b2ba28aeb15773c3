package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/investment-club/internal/catalog"
)

func TestPlans(t *testing.T) {
	plans := catalog.Plans()
	require.Len(t, plans, 6)

	// Вариант 50 — +50% за 7 дней, вариант 75 — +75% за 20 дней
	for _, p := range plans {
		assert.Equal(t, p.Amount+p.Amount/2, p.Return50.Gain, p.ID)
		assert.Equal(t, p.Amount+p.Amount*3/4, p.Return75.Gain, p.ID)
		assert.Equal(t, 7, p.Return50.Days, p.ID)
		assert.Equal(t, 20, p.Return75.Days, p.ID)
	}
}

func TestPlanByID(t *testing.T) {
	p := catalog.PlanByID("vip3")
	require.NotNil(t, p)
	assert.Equal(t, int64(120000), p.Amount)
	assert.Equal(t, int64(180000), p.Option("50").Gain)
	assert.Equal(t, int64(210000), p.Option("75").Gain)

	assert.Nil(t, catalog.PlanByID("vip6"))
}

func TestPlansIsACopy(t *testing.T) {
	plans := catalog.Plans()
	plans[0].Amount = 1

	fresh := catalog.PlanByID("vip0")
	require.NotNil(t, fresh)
	assert.Equal(t, int64(10000), fresh.Amount)
}

func TestIsKnownBank(t *testing.T) {
	assert.True(t, catalog.IsKnownBank("BAI"))
	assert.True(t, catalog.IsKnownBank("Banco SOL"))
	assert.False(t, catalog.IsKnownBank("bai"))
	assert.False(t, catalog.IsKnownBank(""))
}
