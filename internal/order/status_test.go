package order_test

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/order"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusColumn(t *testing.T) {
	tests := []struct {
		section  string
		platform string
		want     string
	}{
		{order.SectionSEO, "", order.ColSEOStatus},
		{order.SectionMobile, order.PlatformIOS, order.ColIOSStatus},
		{order.SectionMobile, order.PlatformAndroid, order.ColAndroidStatus},
		{order.SectionMobile, "", order.ColAndroidStatus},
		{order.SectionMobile, "ios", order.ColAndroidStatus},
		{order.SectionWeb, "", order.ColWebStatus},
		{order.SectionWebLatin, order.PlatformWeb, order.ColWebStatus},
		{"web", "", order.ColStatus},
		{order.SectionSystem, "", order.ColSystemStatus},
		{order.SectionDeveloper, "", order.ColDeveloperStatus},
		{"something else", "iOS", order.ColStatus},
		{"", "", order.ColStatus},
	}

	for _, tt := range tests {
		t.Run(tt.section+"/"+tt.platform, func(t *testing.T) {
			assert.Equal(t, tt.want, order.StatusColumn(tt.section, tt.platform))
		})
	}
}

func TestEffectiveStatusSQLMatchesWritePath(t *testing.T) {
	db := testutil.OpenDB(t)

	cases := []struct {
		section  string
		platform string
	}{
		{order.SectionSEO, order.PlatformSEO},
		{order.SectionMobile, order.PlatformIOS},
		{order.SectionMobile, order.PlatformAndroid},
		{order.SectionWeb, order.PlatformWeb},
		{order.SectionWebLatin, order.PlatformWeb},
		{order.SectionSystem, order.PlatformSystem},
		{order.SectionDeveloper, ""},
		{"unknown", ""},
	}

	expr, args := order.EffectiveStatusSQL("")
	for _, tc := range cases {
		id, err := order.NewInsert().
			Section(tc.section).
			Platform(tc.platform).
			Status("routed").
			Exec(db)
		require.NoError(t, err)

		var got struct{ Effective *string }
		require.NoError(t, db.Model(&models.Order{}).
			Select(expr+" AS effective", args...).
			Where("id = ?", id).
			Scan(&got).Error)
		require.NotNil(t, got.Effective, tc.section)
		assert.Equal(t, "routed", *got.Effective, tc.section)

		var row models.Order
		require.NoError(t, db.First(&row, id).Error)
		assert.Equal(t, "routed", *order.Effective(&row))
	}
}

func TestEffectiveStatusSQLAlias(t *testing.T) {
	expr, args := order.EffectiveStatusSQL("o")
	assert.Contains(t, expr, "o.section = ?")
	assert.Contains(t, expr, "THEN o.ios_status")
	assert.Contains(t, expr, "ELSE o.status END")
	// iOS route binds section and platform; every other route binds section only.
	assert.Len(t, args, 8)
}
