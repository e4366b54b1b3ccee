package report

import (
	"sort"

	"github.com/cofipei/chart-api/internal/constants"
	"github.com/cofipei/chart-api/internal/types/api/requests"
	"github.com/cofipei/chart-api/internal/types/business"
	"github.com/shopspring/decimal"
)

// Summary is the aggregated view of a ledger over a date range.
type Summary struct {
	Expenses      business.CategoryValues
	Revenues      business.CategoryValues
	TotalExpenses decimal.Decimal
	TotalRevenues decimal.Decimal
}

// Aggregate keeps the entries dated within [start, end], splits them into
// expenses and revenues and sums each group per category. Categories come out
// sorted. An inverted range yields an empty summary.
func Aggregate(entries []requests.LedgerEntry, start, end business.Date) Summary {
	expenses := newCategoryTotals()
	revenues := newCategoryTotals()

	for _, entry := range entries {
		if entry.Date == nil || entry.Amount == nil || !entry.Date.Within(start, end) {
			continue
		}
		switch entry.Type {
		case constants.EntryTypeExpense:
			expenses.add(entry.Category, *entry.Amount)
		case constants.EntryTypeRevenue:
			revenues.add(entry.Category, *entry.Amount)
		}
	}

	return Summary{
		Expenses:      expenses.values(),
		Revenues:      revenues.values(),
		TotalExpenses: expenses.total,
		TotalRevenues: revenues.total,
	}
}

type categoryTotals struct {
	sums  map[string]decimal.Decimal
	total decimal.Decimal
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{sums: make(map[string]decimal.Decimal), total: decimal.Zero}
}

func (ct *categoryTotals) add(category string, amount float64) {
	d := decimal.NewFromFloat(amount)
	ct.sums[category] = ct.sums[category].Add(d)
	ct.total = ct.total.Add(d)
}

func (ct *categoryTotals) values() business.CategoryValues {
	categories := make([]string, 0, len(ct.sums))
	for category := range ct.sums {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	out := make(business.CategoryValues, 0, len(categories))
	for _, category := range categories {
		out = append(out, business.CategoryValue{
			Label: category,
			Value: ct.sums[category].InexactFloat64(),
		})
	}
	return out
}
