package order

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"gorm.io/gorm"
)

var ErrEmptyInsert = errors.New("order insert: no columns set")

// Insert builds a single INSERT into orders. Each setter names one column,
// so the set of writable columns is fixed at compile time. Empty strings and
// zero ids are written as NULL.
type Insert struct {
	row     models.Order
	columns []string
	status  *string
}

func NewInsert() *Insert {
	return &Insert{}
}

func (b *Insert) mark(col string) {
	for _, c := range b.columns {
		if c == col {
			return
		}
	}
	b.columns = append(b.columns, col)
}

func (b *Insert) text(dst **string, col, v string) *Insert {
	*dst = nullable(v)
	b.mark(col)
	return b
}

func (b *Insert) ref(dst **uint, col string, v uint) *Insert {
	if v == 0 {
		*dst = nil
	} else {
		*dst = &v
	}
	b.mark(col)
	return b
}

func (b *Insert) UserID(v uint) *Insert       { return b.ref(&b.row.UserID, "user_id", v) }
func (b *Insert) BudgetID(v uint) *Insert     { return b.ref(&b.row.BudgetID, "budget_id", v) }
func (b *Insert) SiteTypeID(v uint) *Insert   { return b.ref(&b.row.SiteTypeID, "site_type_id", v) }
func (b *Insert) AppTypeID(v uint) *Insert    { return b.ref(&b.row.AppTypeID, "app_type_id", v) }
func (b *Insert) SEOGoalID(v uint) *Insert    { return b.ref(&b.row.SEOGoalID, "seo_goal_id", v) }
func (b *Insert) SystemTypeID(v uint) *Insert { return b.ref(&b.row.SystemTypeID, "system_type_id", v) }

func (b *Insert) Title(v string) *Insert       { return b.text(&b.row.Title, "title", v) }
func (b *Insert) AppName(v string) *Insert     { return b.text(&b.row.AppName, "app_name", v) }
func (b *Insert) Description(v string) *Insert { return b.text(&b.row.Description, "description", v) }
func (b *Insert) Idea(v string) *Insert        { return b.text(&b.row.Idea, "idea", v) }
func (b *Insert) Notes(v string) *Insert       { return b.text(&b.row.Notes, "notes", v) }
func (b *Insert) Audience(v string) *Insert    { return b.text(&b.row.Audience, "audience", v) }
func (b *Insert) Details(v string) *Insert     { return b.text(&b.row.Details, "details", v) }
func (b *Insert) Site(v string) *Insert        { return b.text(&b.row.Site, "site", v) }
func (b *Insert) Budget(v string) *Insert      { return b.text(&b.row.Budget, "budget", v) }
func (b *Insert) Type(v string) *Insert        { return b.text(&b.row.Type, "type", v) }
func (b *Insert) Section(v string) *Insert     { return b.text(&b.row.Section, "section", v) }
func (b *Insert) Platform(v string) *Insert    { return b.text(&b.row.Platform, "platform", v) }

// Status sets the initial status. Exec stores it in the column the status
// router picks for this order's section and platform.
func (b *Insert) Status(v string) *Insert {
	b.status = &v
	return b
}

// Columns lists the columns Exec will write, in the order they were set.
func (b *Insert) Columns() []string {
	cols := append([]string(nil), b.columns...)
	if b.status != nil {
		col := StatusColumn(deref(b.row.Section), deref(b.row.Platform))
		found := false
		for _, c := range cols {
			if c == col {
				found = true
				break
			}
		}
		if !found {
			cols = append(cols, col)
		}
	}
	return cols
}

// Exec inserts the row and returns its id. Errors are returned unchanged.
func (b *Insert) Exec(tx *gorm.DB) (uint, error) {
	cols := b.Columns()
	if len(cols) == 0 {
		return 0, ErrEmptyInsert
	}
	if b.status != nil {
		*statusField(&b.row, StatusColumn(deref(b.row.Section), deref(b.row.Platform))) = b.status
	}

	row := b.row
	if err := tx.Select(append(cols, "created_at", "updated_at")).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
