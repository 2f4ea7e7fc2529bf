package catalog

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/drishya/internal/common"
	"github.com/dmitrijs2005/drishya/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPlan(t *testing.T) {
	p, err := FindPlan("basic")
	require.NoError(t, err)
	assert.Equal(t, "Basic", p.Name)
	assert.Equal(t, 15, p.Price)
	assert.Equal(t, 7, p.DeliveryDays)
	assert.Equal(t, models.PlanOneTime, p.Type)

	p, err = FindPlan("starter")
	require.NoError(t, err)
	assert.Equal(t, 100, p.Price)
	assert.Equal(t, "monthly", p.BillingPeriod)

	_, err = FindPlan("gold")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestFindAvatar(t *testing.T) {
	a, err := FindAvatar("3")
	require.NoError(t, err)
	assert.Equal(t, "Elena", a.Name)

	_, err = FindAvatar("99")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestFindPlan_ReturnsCopy(t *testing.T) {
	p, err := FindPlan("basic")
	require.NoError(t, err)
	p.Price = 999

	again, err := FindPlan("basic")
	require.NoError(t, err)
	assert.Equal(t, 15, again.Price)
}
