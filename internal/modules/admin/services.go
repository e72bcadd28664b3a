package admin

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/links"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/order"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/services"
	"gorm.io/gorm"
)

const (
	listLimit = 200

	defaultInvoiceLimit = 10
	maxInvoiceLimit     = 100

	activeWindow = 7 * 24 * time.Hour
	dailyWindow  = 7
)

// Workflow statuses counted by the daily report.
const (
	statusAccepted = "مقبولة"
	statusPaid     = "مدفوعة"
	statusRejected = "مرفوضة"
)

var (
	ErrOrderNotFound = apperr.NotFound("Order not found")
	ErrUserNotFound  = apperr.NotFound("User not found")
	ErrNotFound      = apperr.NotFound("Not found")
	ErrNotSelf       = apperr.Forbidden("Forbidden - You can only access your own data")
	ErrNoFields      = apperr.Validation("No updatable fields")
	ErrNoOrders      = apperr.Validation("No orders provided")
)

// featureTables are read for the feature names of the admin order list.
var featureTables = []links.Table{links.OrderFeatures, links.OrderMobileFeatures, links.OrderSystemFeatures}

// orderLinks are removed together with their order.
var orderLinks = []links.Table{links.OrderFeatures, links.OrderMobileFeatures, links.OrderSystemFeatures, links.OrderPlatforms}

type ReportService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db, now: time.Now}
}

// ListOrders returns the newest orders, optionally narrowed to one section
// (short aliases accepted) and one mobile platform.
func (s *ReportService) ListOrders(section, platform string) ([]OrderListItem, error) {
	q := order.Joined(s.db)
	if section != "" {
		q = q.Where("o.section = ?", order.SectionAlias(section))
	}
	if platform != "" {
		p := order.PlatformAndroid
		if platform == "ios" {
			p = order.PlatformIOS
		}
		q = q.Where("o.platform = ?", p)
	}

	var rows []order.Row
	if err := q.Order("o.id DESC").Limit(listLimit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	features, err := order.FeatureNames(s.db, ids, featureTables...)
	if err != nil {
		return nil, err
	}

	out := make([]OrderListItem, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		names := features[r.ID]
		if names == nil {
			names = []string{}
		}
		out = append(out, OrderListItem{
			ID:           r.ID,
			CreatedAt:    r.CreatedAt,
			SiteTypeID:   r.SiteTypeID,
			SiteTypeName: r.SiteTypeName,
			SEOGoalID:    r.SEOGoalID,
			AppTypeID:    r.AppTypeID,
			AppName:      r.AppName,
			Idea:         r.Idea,
			Details:      r.Details,
			Status:       r.EffectiveStatus,
			Customer:     r.CustomerName,
			Avatar:       r.CustomerAvatar,
			Product:      r.Platform,
			Budget:       r.Budget,
			BudgetID:     r.BudgetID,
			Title:        r.Title,
			Description:  r.Description,
			Audience:     r.Audience,
			Notes:        r.Notes,
			Type:         r.Type,
			Section:      r.Section,
			BudgetLabel:  r.BudgetLabel,
			MinPrice:     r.MinPrice,
			MaxPrice:     r.MaxPrice,
			Revenue:      order.ListRevenue(&r.Order, r.Pricing()),
			Features:     names,
			BudgetObj:    r.BudgetView(),
		})
	}
	return out, nil
}

// SetStatus writes status into the column the status router picks for the order.
func (s *ReportService) SetStatus(id uint, status string) error {
	if status == "" {
		return apperr.MissingFields("status")
	}
	return s.PatchOrder(id, OrderPatch{Status: &status})
}

// PatchOrder applies the given fields. A status goes to the routed column.
func (s *ReportService) PatchOrder(id uint, p OrderPatch) error {
	if p.empty() {
		return ErrNoFields
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var o models.Order
		if err := tx.Select("id", "section", "platform").First(&o, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if p.Status != nil {
			updates[order.StatusColumn(deref(o.Section), deref(o.Platform))] = *p.Status
		}
		if p.Notes != nil {
			updates["notes"] = *p.Notes
		}
		if p.Description != nil {
			updates["description"] = *p.Description
		}
		return tx.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
	})
}

// DeleteOrder removes an order and its link rows.
func (s *ReportService) DeleteOrder(id uint) error {
	n, err := s.deleteOrders([]uint{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// DeleteOrders removes every listed order and returns how many existed.
func (s *ReportService) DeleteOrders(ids []uint) (int64, error) {
	ids = links.Unique(ids)
	if len(ids) == 0 {
		return 0, ErrNoOrders
	}
	return s.deleteOrders(ids)
}

func (s *ReportService) deleteOrders(ids []uint) (int64, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, t := range orderLinks {
			if err := links.DeleteParents(tx, t, ids); err != nil {
				return err
			}
		}
		res := tx.Where("id IN ?", ids).Delete(&models.Order{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

// RevenueChart sums the per-section revenue estimate per day.
func (s *ReportService) RevenueChart() ([]order.DailyPoint, error) {
	var rows []order.Row
	if err := order.Joined(s.db).Scan(&rows).Error; err != nil {
		return nil, err
	}

	priced := make([]order.Priced, 0, len(rows))
	for i := range rows {
		priced = append(priced, order.Priced{Order: &rows[i].Order, Pricing: rows[i].Pricing()})
	}
	return order.DailyRevenue(priced), nil
}

// OrderStats counts every order by effective status.
func (s *ReportService) OrderStats() (OrderStats, error) {
	var rows []order.Row
	if err := order.Joined(s.db).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return order.CountStatuses(rows), nil
}

// DailyStats covers the last seven days, oldest first. Days without orders
// are omitted.
func (s *ReportService) DailyStats() ([]DailyStats, error) {
	now := s.now().UTC()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -dailyWindow)

	var rows []order.Row
	if err := order.Joined(s.db).Where("o.created_at >= ?", since).Scan(&rows).Error; err != nil {
		return nil, err
	}

	byDay := map[string]*DailyStats{}
	for i := range rows {
		day := rows[i].CreatedAt.UTC().Format(time.DateOnly)
		d, ok := byDay[day]
		if !ok {
			d = &DailyStats{OrderDate: day}
			byDay[day] = d
		}
		d.TotalOrders++
		switch deref(rows[i].EffectiveStatus) {
		case order.StatusProcessing:
			d.Processing++
		case statusAccepted:
			d.Accepted++
		case statusPaid:
			d.Paid++
		case statusRejected:
			d.Rejected++
		}
	}

	out := make([]DailyStats, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate < out[j].OrderDate })
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type AccountService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db, now: time.Now}
}

func (s *AccountService) UserStats() (*UserStats, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	activeSince := now.Add(-activeWindow)

	var stats UserStats
	counts := []struct {
		dst   *int64
		scope func(*gorm.DB) *gorm.DB
	}{
		{&stats.TotalUsers, func(db *gorm.DB) *gorm.DB { return db }},
		{&stats.NewRegistrations, func(db *gorm.DB) *gorm.DB { return db.Where("created_at >= ?", today) }},
		{&stats.ActiveUsers, func(db *gorm.DB) *gorm.DB { return db.Where("updated_at >= ?", activeSince) }},
		{&stats.InactiveUsers, func(db *gorm.DB) *gorm.DB { return db.Where("updated_at < ?", activeSince) }},
	}
	for _, c := range counts {
		if err := s.db.Model(&models.User{}).Scopes(c.scope).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}

func (s *AccountService) ListUsers() ([]UserListItem, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Order("id DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]UserListItem, 0, len(users))
	for _, u := range users {
		out = append(out, UserListItem{
			ID:        u.ID,
			FullName:  u.FullName,
			Email:     u.Email,
			Role:      u.Role,
			Avatar:    u.Avatar,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}

func (s *AccountService) DeleteUser(id uint) error {
	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Team lists every account with its online/offline presence.
func (s *AccountService) Team() ([]TeamMember, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]TeamMember, 0, len(users))
	for i := range users {
		u := &users[i]
		out = append(out, TeamMember{
			ID:         u.ID,
			FullName:   u.FullName,
			Avatar:     u.Avatar,
			Email:      u.Email,
			LastOnline: u.LastOnline,
			Status:     u.Presence(now),
		})
	}
	return out, nil
}

// Invoices returns the latest invoices. limit is clamped to a sane range.
func (s *AccountService) Invoices(limit int) ([]InvoiceItem, error) {
	if limit <= 0 {
		limit = defaultInvoiceLimit
	}
	if limit > maxInvoiceLimit {
		limit = maxInvoiceLimit
	}

	var invoices []models.Invoice
	if err := s.db.Order("id DESC").Limit(limit).Find(&invoices).Error; err != nil {
		return nil, err
	}

	out := make([]InvoiceItem, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, InvoiceItem{ID: inv.ID, CustomerName: inv.CustomerName, Total: inv.Total, Paid: inv.Paid})
	}
	return out, nil
}

func (s *AccountService) InvoiceStats() (*InvoiceStats, error) {
	var stats InvoiceStats
	if err := s.db.Model(&models.Invoice{}).Where("paid = ?", true).Count(&stats.Paid).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Invoice{}).Where("paid = ?", false).Count(&stats.Unpaid).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// Profile returns the caller's own admin account.
func (s *AccountService) Profile(callerID, id uint) (*Profile, error) {
	u, err := s.ownAdmin(s.db, callerID, id)
	if err != nil {
		return nil, err
	}
	return &Profile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  strings.TrimSpace(u.FirstName + " " + u.LastName),
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}, nil
}

// UpdateProfile changes the given fields of the caller's admin account and
// recomputes full_name. Empty fields keep their value.
func (s *AccountService) UpdateProfile(callerID, id uint, req ProfileRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		u, err := s.ownAdmin(tx, callerID, id)
		if err != nil {
			return err
		}

		if req.Email != "" && req.Email != u.Email {
			var count int64
			if err := tx.Model(&models.User{}).Where("email = ? AND id <> ?", req.Email, id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return services.ErrEmailTaken
			}
			u.Email = req.Email
		}
		if req.FirstName != "" {
			u.FirstName = req.FirstName
		}
		if req.LastName != "" {
			u.LastName = req.LastName
		}
		if req.Avatar != "" {
			u.Avatar = req.Avatar
		}

		return tx.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"full_name":  strings.TrimSpace(u.FirstName + " " + u.LastName),
			"email":      u.Email,
			"avatar":     u.Avatar,
		}).Error
	})
}

func (s *AccountService) ChangePassword(callerID, id uint, newPassword string) error {
	if newPassword == "" {
		return apperr.MissingFields("new_password")
	}
	if _, err := s.ownAdmin(s.db, callerID, id); err != nil {
		return err
	}

	hash, err := services.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.db.Model(&models.User{}).Where("id = ?", id).Update("password", hash).Error
}

// ownAdmin loads row id when it is the caller's and has the admin role.
func (s *AccountService) ownAdmin(db *gorm.DB, callerID, id uint) (*models.User, error) {
	if callerID != id {
		return nil, ErrNotSelf
	}

	var u models.User
	if err := db.Where("id = ? AND role = ?", id, models.RoleAdmin).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
