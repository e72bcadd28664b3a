// Package links manages many-to-many link rows between a parent (plan,
// order, ...) and a feature lookup table. Link rows have no identity of
// their own: a parent's set is always replaced wholesale.
package links

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"gorm.io/gorm"
)

// Table describes one link table and the lookup table it points at.
type Table struct {
	Name          string // link table
	ParentColumn  string
	FeatureColumn string
	FeatureTable  string
}

var (
	PlanFeatures         = Table{Name: "plan_features", ParentColumn: "plan_id", FeatureColumn: "feature_id", FeatureTable: models.TableFeatures}
	MobilePlanFeatures   = Table{Name: "mobile_plan_features", ParentColumn: "mobile_plan_id", FeatureColumn: "feature_id", FeatureTable: models.TableMobileFeatures}
	SeoGoalFeatures      = Table{Name: "seo_goal_features", ParentColumn: "seo_goal_id", FeatureColumn: "feature_id", FeatureTable: models.TableSeoFeatures}
	WebTypeFeatures      = Table{Name: "web_type_features", ParentColumn: "web_type_id", FeatureColumn: "feature_id", FeatureTable: models.TableWebFeatures}
	WebDeveloperFeatures = Table{Name: "web_developer_features", ParentColumn: "developer_id", FeatureColumn: "feature_id", FeatureTable: models.TableDeveloperFeatures}
	SystemTypeFeatures   = Table{Name: "system_type_features", ParentColumn: "system_type_id", FeatureColumn: "feature_id", FeatureTable: models.TableDeveloperFeatures}
	OrderFeatures        = Table{Name: "order_features", ParentColumn: "order_id", FeatureColumn: "feature_id", FeatureTable: models.TableWebFeatures}
	OrderMobileFeatures  = Table{Name: "order_mobile_features", ParentColumn: "order_id", FeatureColumn: "feature_id", FeatureTable: models.TableMobileFeatures}
	OrderSystemFeatures  = Table{Name: "order_system_features", ParentColumn: "order_id", FeatureColumn: "feature_id", FeatureTable: models.TableDeveloperFeatures}
	OrderPlatforms       = Table{Name: "order_platforms", ParentColumn: "order_id", FeatureColumn: "platform_id", FeatureTable: models.TableAppPlatforms}
)

// All lists every link table.
var All = []Table{
	PlanFeatures, MobilePlanFeatures, SeoGoalFeatures, WebTypeFeatures, WebDeveloperFeatures,
	SystemTypeFeatures, OrderFeatures, OrderMobileFeatures, OrderSystemFeatures, OrderPlatforms,
}

// DetachFeature removes every link that points at featureID in featureTable.
func DetachFeature(tx *gorm.DB, featureTable string, featureID uint) error {
	for _, t := range All {
		if t.FeatureTable != featureTable {
			continue
		}
		if err := tx.Exec("DELETE FROM "+t.Name+" WHERE "+t.FeatureColumn+" = ?", featureID).Error; err != nil {
			return err
		}
	}
	return nil
}

// Unique drops zero ids and repeats, keeping first-seen order.
func Unique(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Insert adds one link per distinct feature id in a single statement.
// build makes the link row for a (parent, feature) pair.
func Insert[L any](tx *gorm.DB, parentID uint, featureIDs []uint, build func(parentID, featureID uint) L) error {
	ids := Unique(featureIDs)
	if len(ids) == 0 {
		return nil
	}
	rows := make([]L, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, build(parentID, id))
	}
	return tx.Create(&rows).Error
}

// Replace deletes every link of parentID and inserts the new set.
// Callers run it inside a transaction so the parent is never left half-linked.
func Replace[L any](tx *gorm.DB, t Table, parentID uint, featureIDs []uint, build func(parentID, featureID uint) L) error {
	if err := DeleteAll[L](tx, t, parentID); err != nil {
		return err
	}
	return Insert(tx, parentID, featureIDs, build)
}

// DeleteAll removes every link row of parentID.
func DeleteAll[L any](tx *gorm.DB, t Table, parentID uint) error {
	return tx.Where(t.ParentColumn+" = ?", parentID).Delete(new(L)).Error
}

// DeleteParents removes every link row of the given parents in one statement.
func DeleteParents(tx *gorm.DB, t Table, parentIDs []uint) error {
	if len(parentIDs) == 0 {
		return nil
	}
	return tx.Exec("DELETE FROM "+t.Name+" WHERE "+t.ParentColumn+" IN ?", parentIDs).Error
}
