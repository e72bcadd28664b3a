package order_test

import (
	"errors"
	"testing"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/order"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertWritesOnlySetColumns(t *testing.T) {
	db := testutil.OpenDB(t)

	b := order.NewInsert().
		UserID(3).
		AppTypeID(9).
		Title("Shop").
		Idea("").
		Section(order.SectionMobile).
		Platform(order.PlatformIOS).
		Type(order.TypeIOSApp).
		Status(order.StatusProcessing)

	assert.Equal(t,
		[]string{"user_id", "app_type_id", "title", "idea", "section", "platform", "type", "ios_status"},
		b.Columns())

	id, err := b.Exec(db)
	require.NoError(t, err)
	require.NotZero(t, id)

	var row models.Order
	require.NoError(t, db.First(&row, id).Error)
	assert.Equal(t, uint(3), *row.UserID)
	assert.Equal(t, uint(9), *row.AppTypeID)
	assert.Equal(t, "Shop", *row.Title)
	assert.Nil(t, row.Idea)
	assert.Nil(t, row.Status)
	assert.Nil(t, row.AndroidStatus)
	require.NotNil(t, row.IOSStatus)
	assert.Equal(t, order.StatusProcessing, *row.IOSStatus)
	assert.False(t, row.CreatedAt.IsZero())
}

func TestInsertReturnsDistinctIDs(t *testing.T) {
	db := testutil.OpenDB(t)

	first, err := order.NewInsert().Section(order.SectionWeb).Exec(db)
	require.NoError(t, err)
	second, err := order.NewInsert().Section(order.SectionWeb).Exec(db)
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestInsertEmpty(t *testing.T) {
	db := testutil.OpenDB(t)

	_, err := order.NewInsert().Exec(db)
	assert.True(t, errors.Is(err, order.ErrEmptyInsert))
}

func TestInsertRepeatedSetterKeepsFirstPosition(t *testing.T) {
	b := order.NewInsert().Notes("a").Title("t").Notes("b")
	assert.Equal(t, []string{"notes", "title"}, b.Columns())
}
