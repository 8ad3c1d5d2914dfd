package model

// Item is one parsed MBS schedule entry. Item numbers are kept as strings so
// source formatting (including leading zeros) survives the round trip.
type Item struct {
	ItemNum          string
	Category         *string
	GroupCode        *string
	ScheduleFeeCents *int64
	Description      *string
	DerivedFee       *string
	StartDate        *string
	EndDate          *string
	ProviderType     *string
	EMSNDescription  *string
}

// DescriptionText returns the description, or "" when absent.
func (it *Item) DescriptionText() string {
	if it.Description == nil {
		return ""
	}
	return *it.Description
}

// DerivedFeeText returns the derived-fee text, or "" when absent.
func (it *Item) DerivedFeeText() string {
	if it.DerivedFee == nil {
		return ""
	}
	return *it.DerivedFee
}

// ItemColumns returns the COPY column order for mbs.items.
func ItemColumns() []string {
	return []string{
		"item_num", "category", "group_code", "schedule_fee_cents",
		"description", "derived_fee", "start_date", "end_date",
		"provider_type", "emsn_description",
	}
}

// CopyValues returns the item's values in COPY column order.
func (it *Item) CopyValues() []any {
	return []any{
		it.ItemNum, it.Category, it.GroupCode, it.ScheduleFeeCents,
		it.Description, it.DerivedFee, it.StartDate, it.EndDate,
		it.ProviderType, it.EMSNDescription,
	}
}
