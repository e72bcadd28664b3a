package links_test

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/links"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func planLink(parentID, featureID uint) models.PlanFeature {
	return models.PlanFeature{PlanID: parentID, FeatureID: featureID}
}

func seedFeatures(t *testing.T, db *gorm.DB, names ...string) []uint {
	t.Helper()
	ids := make([]uint, 0, len(names))
	for _, n := range names {
		f := models.Feature{Name: n}
		require.NoError(t, db.Create(&f).Error)
		ids = append(ids, f.ID)
	}
	return ids
}

func featureIDs(fs []models.Feature) []uint {
	ids := make([]uint, 0, len(fs))
	for _, f := range fs {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, links.Unique([]uint{3, 1, 0, 3, 2, 1}))
	assert.Empty(t, links.Unique(nil))
}

func TestReplaceIsFullReplace(t *testing.T) {
	db := testutil.OpenDB(t)
	f := seedFeatures(t, db, "hosting", "ssl", "seo", "support")

	plans := []models.Plan{{Name: "basic", Price: 10, Unit: "month"}, {Name: "pro", Price: 20, Unit: "month"}}
	require.NoError(t, db.Create(&plans).Error)
	basic, pro := plans[0].ID, plans[1].ID

	require.NoError(t, links.Insert(db, basic, []uint{f[0], f[1], f[1]}, planLink))
	require.NoError(t, links.Insert(db, pro, []uint{f[3]}, planLink))

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return links.Replace(tx, links.PlanFeatures, basic, []uint{f[1], f[2]}, planLink)
	}))

	grouped, err := links.Load(db, links.PlanFeatures, []uint{basic, pro})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{f[1], f[2]}, featureIDs(grouped[basic]))
	assert.ElementsMatch(t, []uint{f[3]}, featureIDs(grouped[pro]))

	require.NoError(t, links.Replace(db, links.PlanFeatures, basic, nil, planLink))
	grouped, err = links.Load(db, links.PlanFeatures, []uint{basic})
	require.NoError(t, err)
	assert.Empty(t, grouped[basic])
}

func TestAttachSetsEmptySlices(t *testing.T) {
	db := testutil.OpenDB(t)
	f := seedFeatures(t, db, "a", "b")

	plans := []models.Plan{{Name: "x", Price: 1, Unit: "u"}, {Name: "y", Price: 2, Unit: "u"}}
	require.NoError(t, db.Create(&plans).Error)
	require.NoError(t, links.Insert(db, plans[0].ID, f, planLink))

	require.NoError(t, links.Attach(db, links.PlanFeatures, plans))
	assert.Len(t, plans[0].Features, 2)
	assert.NotNil(t, plans[1].Features)
	assert.Empty(t, plans[1].Features)
}

func TestNamesUsesPlatformColumn(t *testing.T) {
	db := testutil.OpenDB(t)

	ios := models.AppPlatform{Name: "iOS"}
	require.NoError(t, db.Create(&ios).Error)
	require.NoError(t, links.Insert(db, 42, []uint{ios.ID}, func(o, p uint) models.OrderPlatform {
		return models.OrderPlatform{OrderID: o, PlatformID: p}
	}))

	names, err := links.Names(db, links.OrderPlatforms, []uint{42})
	require.NoError(t, err)
	assert.Equal(t, []string{"iOS"}, names[42])
}
