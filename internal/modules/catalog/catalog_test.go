package catalog_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func adminToken(t *testing.T, h *testutil.Harness) string {
	t.Helper()
	return h.Token(t, h.CreateUser(t, "admin@example.com", models.RoleAdmin))
}

func seed[T any](t *testing.T, db *gorm.DB, rows ...T) []T {
	t.Helper()
	require.NoError(t, db.Create(&rows).Error)
	return rows
}

func names(fs []models.Feature) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Name)
	}
	return out
}

func createdID(t *testing.T, h *testutil.Harness, path, key string, body interface{}, token string) uint {
	t.Helper()
	resp := h.Do(t, http.MethodPost, path, body, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out map[string]interface{}
	testutil.Decode(t, resp, &out)
	id, ok := out[key].(float64)
	require.True(t, ok, "response has no %q: %v", key, out)
	return uint(id)
}

func TestPlanLifecycle(t *testing.T) {
	h := testutil.New(t)
	token := adminToken(t, h)
	fs := seed(t, h.DB, models.Feature{Name: "hosting"}, models.Feature{Name: "ssl"}, models.Feature{Name: "support"})

	id := createdID(t, h, "/api/plans", "planId", map[string]interface{}{
		"name": "Starter", "price": 99, "unit": "month", "is_best": "1",
		"features": []uint{fs[0].ID, fs[1].ID, fs[1].ID},
	}, token)

	resp := h.Do(t, http.MethodGet, fmt.Sprintf("/api/plans/%d", id), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var plan models.Plan
	testutil.Decode(t, resp, &plan)
	assert.True(t, plan.IsBest)
	assert.Equal(t, []string{"hosting", "ssl"}, names(plan.Features))

	resp = h.Do(t, http.MethodPut, fmt.Sprintf("/api/plans/%d", id), map[string]interface{}{
		"name": "Starter+", "price": 129, "unit": "month", "features": []uint{fs[2].ID},
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.Do(t, http.MethodGet, "/api/plans", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var plans []models.Plan
	testutil.Decode(t, resp, &plans)
	require.Len(t, plans, 1)
	assert.Equal(t, "Starter+", plans[0].Name)
	assert.Equal(t, []string{"support"}, names(plans[0].Features))

	resp = h.Do(t, http.MethodDelete, fmt.Sprintf("/api/plans/%d", id), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var links int64
	require.NoError(t, h.DB.Model(&models.PlanFeature{}).Where("plan_id = ?", id).Count(&links).Error)
	assert.Zero(t, links)

	resp = h.Do(t, http.MethodDelete, fmt.Sprintf("/api/plans/%d", id), nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlanErrors(t *testing.T) {
	h := testutil.New(t)
	token := adminToken(t, h)

	resp := h.Do(t, http.MethodGet, "/api/plans/999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = h.Do(t, http.MethodGet, "/api/plans/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.Do(t, http.MethodPut, "/api/plans/999", map[string]interface{}{"name": "x", "price": 1, "unit": "m"}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = h.Do(t, http.MethodPost, "/api/plans", map[string]interface{}{"name": "x"}, token)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	msg := testutil.ErrorMessage(t, resp)
	assert.Contains(t, msg, "price")
	assert.Contains(t, msg, "unit")

	var count int64
	require.NoError(t, h.DB.Model(&models.Plan{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCatalogWritesNeedAdmin(t *testing.T) {
	h := testutil.New(t)
	user := h.CreateUser(t, "user@example.com", models.RoleUser)
	body := map[string]interface{}{"name": "x", "price": 1, "unit": "m"}

	resp := h.Do(t, http.MethodPost, "/api/plans", body, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = h.Do(t, http.MethodPost, "/api/plans", body, h.Token(t, user))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = h.Do(t, http.MethodPost, "/api/web-features", map[string]string{"name": "cms"}, h.Token(t, user))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMobilePlansByType(t *testing.T) {
	h := testutil.New(t)
	token := adminToken(t, h)
	mf := seed(t, h.DB, models.MobileFeature{Feature: models.Feature{Name: "push"}}, models.MobileFeature{Feature: models.Feature{Name: "chat"}})

	base := map[string]interface{}{"title": "t", "description": "d", "price": 500, "unit": "project"}
	withType := func(name, typ string, features ...uint) map[string]interface{} {
		body := map[string]interface{}{"name": name, "type": typ, "features": features}
		for k, v := range base {
			body[k] = v
		}
		return body
	}
	createdID(t, h, "/api/mobile-plans", "id", withType("Droid", "android", mf[0].ID), token)
	createdID(t, h, "/api/mobile-plans", "id", withType("Apple", "ios", mf[0].ID, mf[1].ID), token)

	resp := h.Do(t, http.MethodPost, "/api/mobile-plans", withType("Bad", "windows"), token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.Do(t, http.MethodGet, "/api/mobile-plans", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.Do(t, http.MethodGet, "/api/mobile-plans?type=windows", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.Do(t, http.MethodGet, "/api/mobile-plans?type=IOS", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var plans []models.MobilePlan
	testutil.Decode(t, resp, &plans)
	require.Len(t, plans, 1)
	assert.Equal(t, "Apple", plans[0].Name)
	assert.Equal(t, []string{"push", "chat"}, names(plans[0].Features))

	resp = h.Do(t, http.MethodGet, "/api/mobile-features/android", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var android []models.Feature
	testutil.Decode(t, resp, &android)
	assert.Equal(t, []string{"push"}, names(android))
}

func TestMobilePlanUpdateNeedsBudget(t *testing.T) {
	h := testutil.New(t)
	token := adminToken(t, h)
	plan := seed(t, h.DB, models.MobilePlan{Name: "p", Title: "t", Description: "d", Price: 1, Unit: "u", Type: "android"})[0]

	body := map[string]interface{}{"name": "p", "title": "t", "description": "d", "price": 2, "unit": "u", "type": "android"}
	resp := h.Do(t, http.MethodPut, fmt.Sprintf("/api/mobile-plans/%d", plan.ID), body, token)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, testutil.ErrorMessage(t, resp), "budget_id")
}

func TestSeoGoalsOrderedByBudget(t *testing.T) {
	h := testutil.New(t)
	low, high := 1000.0, 5000.0
	budgets := seed(t, h.DB, models.Budget{Label: "high", MinPrice: &high}, models.Budget{Label: "low", MinPrice: &low})
	seed(t, h.DB,
		models.SeoGoal{Name: "Rocket", Unit: "month", BudgetID: &budgets[0].ID},
		models.SeoGoal{Name: "Spark", Unit: "month", BudgetID: &budgets[1].ID},
	)

	resp := h.Do(t, http.MethodGet, "/api/seo-goals", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var goals []models.SeoGoal
	testutil.Decode(t, resp, &goals)
	require.Len(t, goals, 2)
	assert.Equal(t, "Spark", goals[0].Name)
	require.NotNil(t, goals[0].Budget)
	assert.Equal(t, "low", goals[0].Budget.Label)
	assert.NotNil(t, goals[1].Features)
}

func TestSeoGoalBudgetShape(t *testing.T) {
	h := testutil.New(t)
	floor, ceiling := 800.0, 1600.0
	budget := seed(t, h.DB, models.Budget{Label: "starter", MinPrice: &floor, MaxPrice: &ceiling})[0]
	goals := seed(t, h.DB,
		models.SeoGoal{Name: "Linked", Unit: "month", BudgetID: &budget.ID},
		models.SeoGoal{Name: "Loose", Unit: "month"},
	)

	resp := h.Do(t, http.MethodGet, fmt.Sprintf("/api/seo-goals/%d", goals[0].ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var linked map[string]interface{}
	testutil.Decode(t, resp, &linked)
	assert.Equal(t, "starter", linked["budget_label"])
	assert.Equal(t, floor, linked["min_price"])
	assert.Equal(t, map[string]interface{}{
		"id": float64(budget.ID), "label": "starter", "min_price": floor, "max_price": ceiling,
	}, linked["budget"])

	resp = h.Do(t, http.MethodGet, fmt.Sprintf("/api/seo-goals/%d", goals[1].ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loose map[string]interface{}
	testutil.Decode(t, resp, &loose)
	assert.Equal(t, map[string]interface{}{
		"id": nil, "label": nil, "min_price": nil, "max_price": nil,
	}, loose["budget"])
	assert.Nil(t, loose["budget_label"])
}

func TestLookupLifecycle(t *testing.T) {
	h := testutil.New(t)
	token := adminToken(t, h)

	resp := h.Do(t, http.MethodPost, "/api/web-features", map[string]string{"name": "blog"}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var feature models.Feature
	testutil.Decode(t, resp, &feature)
	assert.Equal(t, "blog", feature.Name)
	require.NotZero(t, feature.ID)

	site := seed(t, h.DB, models.SiteType{Name: "Store", Price: 3000, Unit: "project"})[0]
	require.NoError(t, h.DB.Create(&models.WebTypeFeature{WebTypeID: site.ID, FeatureID: feature.ID}).Error)

	resp = h.Do(t, http.MethodPut, fmt.Sprintf("/api/web-features/%d", feature.ID), map[string]string{"name": "news"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.Do(t, http.MethodGet, "/api/web-features", nil, "")
	var list []models.Feature
	testutil.Decode(t, resp, &list)
	assert.Equal(t, []string{"news"}, names(list))

	resp = h.Do(t, http.MethodDelete, fmt.Sprintf("/api/web-features/%d", feature.ID), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var links int64
	require.NoError(t, h.DB.Model(&models.WebTypeFeature{}).Count(&links).Error)
	assert.Zero(t, links)

	resp = h.Do(t, http.MethodDelete, fmt.Sprintf("/api/web-features/%d", feature.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = h.Do(t, http.MethodPost, "/api/web-features", map[string]string{}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSystemTypeFeatures(t *testing.T) {
	h := testutil.New(t)
	token := adminToken(t, h)
	st := seed(t, h.DB, models.SystemType{Name: "ERP"})[0]
	df := seed(t, h.DB,
		models.DeveloperFeature{Feature: models.Feature{Name: "api"}},
		models.DeveloperFeature{Feature: models.Feature{Name: "reports"}},
	)
	path := fmt.Sprintf("/api/system-types/%d/features", st.ID)

	resp := h.Do(t, http.MethodPost, path, map[string]interface{}{"features": []uint{df[0].ID, df[1].ID}}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = h.Do(t, http.MethodPost, path, map[string]interface{}{"features": []uint{df[1].ID}}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.Do(t, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var features []models.Feature
	testutil.Decode(t, resp, &features)
	assert.Equal(t, []string{"reports"}, names(features))
}

func TestBudgets(t *testing.T) {
	h := testutil.New(t)
	token := adminToken(t, h)

	for _, b := range []map[string]interface{}{
		{"label": "30000+", "section": "web", "min_price": 30000},
		{"label": "3000-7000", "section": "web", "min_price": 3000},
		{"label": "basic", "section": "seo", "min_price": 500},
	} {
		createdID(t, h, "/api/budgets", "id", b, token)
	}

	resp := h.Do(t, http.MethodGet, "/api/budgets?section=web", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var web []models.Budget
	testutil.Decode(t, resp, &web)
	require.Len(t, web, 2)
	assert.Equal(t, "3000-7000", web[0].Label)

	resp = h.Do(t, http.MethodGet, "/api/budgets/seo", nil, "")
	var seo []models.Budget
	testutil.Decode(t, resp, &seo)
	require.Len(t, seo, 1)

	resp = h.Do(t, http.MethodPut, "/api/budgets/999", map[string]interface{}{"label": "x"}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = h.Do(t, http.MethodPost, "/api/budgets", map[string]interface{}{"section": "web"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSiteTypeOptions(t *testing.T) {
	h := testutil.New(t)
	seed(t, h.DB,
		models.SiteType{Name: "Store", Price: 9000, Unit: "project"},
		models.SiteType{Name: "Blog", Price: 3000, Unit: "project"},
	)

	resp := h.Do(t, http.MethodGet, "/api/site-types", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []map[string]interface{}
	testutil.Decode(t, resp, &rows)
	require.Len(t, rows, 2)
	assert.Equal(t, "Store", rows[0]["name"])
	assert.Equal(t, "Blog", rows[1]["name"])
	assert.NotContains(t, rows[0], "features")
}
