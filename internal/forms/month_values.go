package forms

import (
	"github.com/fluxo-app/backend/internal/models"
	"github.com/fluxo-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthValue is the planned amount for a single month, edited in cents
// so the form never deals with fractional input.
type MonthValue struct {
	Month types.Month
	Cents int64
}

// MonthValues is the per-month value grid of a budget entry form. It
// holds exactly one slot per month of the budget period.
type MonthValues struct {
	Values []MonthValue
}

// NewMonthValues returns a grid with one zero slot per month of the
// inclusive range from start to end.
func NewMonthValues(start, end types.Month) *MonthValues {
	values := &MonthValues{}
	for _, month := range types.MonthsBetween(start, end) {
		values.Values = append(values.Values, MonthValue{Month: month})
	}

	return values
}

// ApplyDefaultToAll overwrites every slot with the same amount.
func (v *MonthValues) ApplyDefaultToAll(cents int64) {
	for i := range v.Values {
		v.Values[i].Cents = cents
	}
}

// Set updates the slot for a month. It reports whether the month has a
// slot in the grid.
func (v *MonthValues) Set(month types.Month, cents int64) bool {
	for i := range v.Values {
		if v.Values[i].Month.Equal(month) {
			v.Values[i].Cents = cents
			return true
		}
	}

	return false
}

// Total returns the sum of all slots in currency units.
func (v MonthValues) Total() decimal.Decimal {
	var cents int64
	for _, value := range v.Values {
		cents += value.Cents
	}

	return decimal.New(cents, -2)
}

// Average returns the mean slot amount in currency units, zero when the
// grid has no slots.
func (v MonthValues) Average() decimal.Decimal {
	if len(v.Values) == 0 {
		return decimal.Zero
	}

	return v.Total().Div(decimal.NewFromInt(int64(len(v.Values)))).Round(2)
}

// Payload converts the grid into the values sent to the backend. Slots
// with an amount of zero or less are dropped.
func (v MonthValues) Payload() []models.BudgetEntryValue {
	var values []models.BudgetEntryValue
	for _, value := range v.Values {
		if value.Cents <= 0 {
			continue
		}

		values = append(values, models.BudgetEntryValue{
			Month:  value.Month,
			Amount: decimal.New(value.Cents, -2),
		})
	}

	return values
}
