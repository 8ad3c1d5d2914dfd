// Package schedule parses MBS schedule exports (XML or CSV) into items.
// Tag and column names vary across dataset vintages, so both parsers match
// against alias lists rather than fixed names.
package schedule

import (
	"strings"

	"github.com/gyeh/mbsfacts/internal/model"
	"github.com/gyeh/mbsfacts/internal/normalize"
)

// Canonical fields and the source tag/column names that map to them, primary
// name first. Matching is case-insensitive.
var fieldAliases = []struct {
	field   string
	aliases []string
}{
	{"item_num", []string{"ItemNum", "ItemNumber", "Item", "Number"}},
	{"category", []string{"Category"}},
	{"group_code", []string{"Group", "GroupCode"}},
	{"schedule_fee", []string{"ScheduleFee", "Fee", "Schedule_Fee"}},
	{"description", []string{"Description", "ItemDescriptor", "ItemDescription", "ItemText"}},
	{"derived_fee", []string{"DerivedFee"}},
	{"start_date", []string{"ItemStartDate", "StartDate", "EffectiveFrom"}},
	{"end_date", []string{"ItemEndDate", "EndDate", "EffectiveTo"}},
	{"provider_type", []string{"ProviderType", "Provider", "ProviderClass"}},
	{"emsn_description", []string{"EMSNDescription"}},
}

var itemNumAliases = fieldAliases[0].aliases

// itemFromFields builds an Item from raw field values keyed by canonical
// field name. Returns ok=false when the item number is missing or malformed.
func itemFromFields(fields map[string]string) (model.Item, bool) {
	num := normalize.ItemNum(fields["item_num"])
	if num == "" {
		return model.Item{}, false
	}
	it := model.Item{
		ItemNum:          num,
		Category:         normalize.OptStr(fields["category"]),
		GroupCode:        normalize.OptStr(fields["group_code"]),
		ScheduleFeeCents: normalize.FeeToCents(fields["schedule_fee"]),
		Description:      normalize.OptStr(fields["description"]),
		DerivedFee:       normalize.OptStr(fields["derived_fee"]),
		ProviderType:     normalize.OptStr(fields["provider_type"]),
		EMSNDescription:  normalize.OptStr(fields["emsn_description"]),
	}
	it.StartDate = normalizeDate(fields["start_date"])
	it.EndDate = normalizeDate(fields["end_date"])
	return it, true
}

// normalizeDate prefers the ISO rendering, falling back to the raw text when
// the format is unrecognized.
func normalizeDate(s string) *string {
	if iso := normalize.ParseDate(s); iso != nil {
		return iso
	}
	return normalize.OptStr(s)
}

func matchesAlias(name string, aliases []string) bool {
	for _, a := range aliases {
		if strings.EqualFold(name, a) {
			return true
		}
	}
	return false
}
