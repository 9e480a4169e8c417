package schema

import (
	"strings"
	"unicode"
)

// Data categories the extraction pipeline can classify a document or request
// into. These values appear verbatim in the model's JSON output contract.
const (
	CategoryBusiness = "Business Information"
	CategoryPersonal = "Personal Information"
	CategoryBank     = "Bank Information"
	CategoryContact  = "Company Contact"
	CategoryMenu     = "Food Menu"
	CategoryUnknown  = "Unknown"
)

// Page keys the dashboard shell routes on.
const (
	PageBusinessInfo   = "business-info"
	PagePersonalInfo   = "personal-info"
	PageBankInfo       = "bank-info"
	PageCompanyContact = "company-contact"
	PageFoodMenu       = "food-menu"
)

var categoryPages = map[string]string{
	CategoryBusiness:        PageBusinessInfo,
	CategoryPersonal:        PagePersonalInfo,
	CategoryBank:            PageBankInfo,
	CategoryContact:         PageCompanyContact,
	CategoryMenu:            PageFoodMenu,
	"Bank Statement":        PageBankInfo,
	"Personal ID":           PagePersonalInfo,
	"Business Registration": PageBusinessInfo,
}

var pageDisplayNames = map[string]string{
	PageBusinessInfo:   CategoryBusiness,
	PagePersonalInfo:   CategoryPersonal,
	PageBankInfo:       CategoryBank,
	PageCompanyContact: CategoryContact,
	PageFoodMenu:       CategoryMenu,
}

// CategoryToPage maps an extraction category to the settings page that owns
// its fields. Unrecognized categories intentionally fall back to the business
// information page instead of failing; a misclassified document still lands
// the user somewhere they can review it.
func CategoryToPage(category string) string {
	if page, ok := categoryPages[category]; ok {
		return page
	}
	return PageBusinessInfo
}

// PageDisplayName returns the human title of a page key, falling back to
// Business Information for unknown keys (same policy as CategoryToPage).
func PageDisplayName(pageKey string) string {
	if name, ok := pageDisplayNames[pageKey]; ok {
		return name
	}
	return CategoryBusiness
}

// Per-category field whitelists. Extracted keys outside these sets never
// produce a change.
var categoryFields = map[string][]string{
	CategoryBusiness: {
		"businessName", "outletName", "outletAddress", "outletType",
		"outletCategory", "ssmNumber", "openTime", "closeTime",
		"deliveryRadius", "serviceType",
	},
	CategoryPersonal: {
		"ownerName", "ownerId", "dob", "nationality",
		"ownerEmail", "ownerPhone", "ownerPosition",
	},
	CategoryBank: {
		"bankName", "bankAccount", "accountHolder", "accountType",
	},
	CategoryContact: {
		"companyEmail", "companyPhone", "supportContact",
	},
}

// FieldsFor returns the editable field keys of a category, or nil for
// categories without a fixed field set (Food Menu, Unknown).
func FieldsFor(category string) []string {
	return categoryFields[category]
}

// FieldLabel derives a display label from a camelCase field key:
// "businessName" -> "Business Name", "ssmNumber" -> "Ssm Number".
func FieldLabel(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
