package order

// Section values stored in orders.section.
const (
	SectionSEO       = "SEO & تسويق رقمي"
	SectionMobile    = "تطبيقات الجوال"
	SectionWeb       = "برمجة مواقع"
	SectionWebLatin  = "Web"
	SectionSystem    = "تطوير الأنظمة"
	SectionDeveloper = "خدمات المطورين"
)

// Platform and type values written by the creation endpoints.
const (
	PlatformIOS     = "iOS"
	PlatformAndroid = "Android"
	PlatformWeb     = "Web"
	PlatformSEO     = "تهيئة المواقع (SEO)"
	PlatformSystem  = "خدمة التطوير"

	TypeIOSApp     = "iOS App"
	TypeAndroidApp = "Android App"
	TypeSEORocket  = "SEO Rocket"
	TypeWeb        = "Web"
)

// Initial status values.
const (
	StatusProcessing = "قيد المعالجة"
	StatusPending    = "pending"
)

// Statuses counted by the per-user stats endpoint.
var TrackedStatuses = []string{"pending", "accepted", "paid", "rejected", "blocked", "refunded"}

// SectionAlias expands the short section names accepted by admin filters.
// Unknown values pass through unchanged.
func SectionAlias(s string) string {
	switch s {
	case "seo":
		return SectionSEO
	case "mobile":
		return SectionMobile
	case "web":
		return SectionWebLatin
	case "system":
		return SectionSystem
	case "developer":
		return SectionDeveloper
	}
	return s
}
