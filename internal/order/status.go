package order

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
)

// Status columns on the orders table.
const (
	ColStatus          = "status"
	ColWebStatus       = "web_status"
	ColIOSStatus       = "ios_status"
	ColAndroidStatus   = "android_status"
	ColSEOStatus       = "seo_status"
	ColSystemStatus    = "system_status"
	ColDeveloperStatus = "developer_status"
)

type statusRoute struct {
	section  string
	platform string // empty matches any platform
	column   string
}

// statusRoutes is evaluated top to bottom; the first match wins. Both the
// write path and the CASE projection are derived from it.
var statusRoutes = []statusRoute{
	{section: SectionSEO, column: ColSEOStatus},
	{section: SectionMobile, platform: PlatformIOS, column: ColIOSStatus},
	{section: SectionMobile, column: ColAndroidStatus},
	{section: SectionWeb, column: ColWebStatus},
	{section: SectionWebLatin, column: ColWebStatus},
	{section: SectionSystem, column: ColSystemStatus},
	{section: SectionDeveloper, column: ColDeveloperStatus},
}

// StatusColumn resolves the authoritative status column for an order.
// Matching is exact and case-sensitive; anything unknown uses "status".
func StatusColumn(section, platform string) string {
	for _, r := range statusRoutes {
		if r.section != section {
			continue
		}
		if r.platform == "" || r.platform == platform {
			return r.column
		}
	}
	return ColStatus
}

// EffectiveStatusSQL renders the CASE expression that selects the
// authoritative status for each row. alias qualifies the columns when the
// orders table is joined ("o" yields o.section, o.seo_status, ...). Section
// and platform literals are bound as parameters, returned in order.
func EffectiveStatusSQL(alias string) (string, []interface{}) {
	col := func(name string) string {
		if alias == "" {
			return name
		}
		return alias + "." + name
	}

	var b strings.Builder
	args := make([]interface{}, 0, len(statusRoutes)*2)
	b.WriteString("CASE")
	for _, r := range statusRoutes {
		b.WriteString(" WHEN ")
		b.WriteString(col("section"))
		b.WriteString(" = ?")
		args = append(args, r.section)
		if r.platform != "" {
			b.WriteString(" AND ")
			b.WriteString(col("platform"))
			b.WriteString(" = ?")
			args = append(args, r.platform)
		}
		b.WriteString(" THEN ")
		b.WriteString(col(r.column))
	}
	b.WriteString(" ELSE ")
	b.WriteString(col(ColStatus))
	b.WriteString(" END")
	return b.String(), args
}

// Effective returns the authoritative status of a loaded order.
func Effective(o *models.Order) *string {
	return *statusField(o, StatusColumn(deref(o.Section), deref(o.Platform)))
}

func statusField(o *models.Order, column string) **string {
	switch column {
	case ColWebStatus:
		return &o.WebStatus
	case ColIOSStatus:
		return &o.IOSStatus
	case ColAndroidStatus:
		return &o.AndroidStatus
	case ColSEOStatus:
		return &o.SEOStatus
	case ColSystemStatus:
		return &o.SystemStatus
	case ColDeveloperStatus:
		return &o.DeveloperStatus
	default:
		return &o.Status
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
