package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"paisa/internal/models"
)

// Totals holds the summed amounts for a transaction list.
// Net is always exactly Income minus Expense.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// Sum computes income, expense, and net totals.
func Sum(txns []models.Transaction) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txns {
		switch t.TransactionType {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Totals{Income: income, Expense: expense, Net: income.Sub(expense)}
}

// SortMode selects the ordering of a category breakdown.
type SortMode string

const (
	SortAmountDesc SortMode = "amount_desc"
	SortAmountAsc  SortMode = "amount_asc"
	SortName       SortMode = "name"
	SortCountDesc  SortMode = "count_desc"
)

// CategoryBreakdown is one category's share of the expense total.
type CategoryBreakdown struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// Breakdown groups expense transactions by category name and computes
// each group's summed amount, count, and percentage of total expense.
// Percentage is 0 when total expense is 0. Ties keep first-seen order.
func Breakdown(txns []models.Transaction, mode SortMode) []CategoryBreakdown {
	index := make(map[string]int)
	groups := make([]CategoryBreakdown, 0)
	total := decimal.Zero

	for _, t := range txns {
		if t.TransactionType != models.TransactionTypeExpense {
			continue
		}
		i, ok := index[t.CategoryName]
		if !ok {
			i = len(groups)
			index[t.CategoryName] = i
			groups = append(groups, CategoryBreakdown{Category: t.CategoryName})
		}
		groups[i].Amount = groups[i].Amount.Add(t.Amount)
		groups[i].Count++
		total = total.Add(t.Amount)
	}

	if total.IsPositive() {
		hundred := decimal.NewFromInt(100)
		for i := range groups {
			groups[i].Percentage, _ = groups[i].Amount.Mul(hundred).Div(total).Float64()
		}
	}

	switch mode {
	case SortAmountAsc:
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Amount.LessThan(groups[j].Amount)
		})
	case SortName:
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Category < groups[j].Category
		})
	case SortCountDesc:
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Count > groups[j].Count
		})
	default:
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Amount.GreaterThan(groups[j].Amount)
		})
	}
	return groups
}

// DayBucket is one calendar day of summed expense amounts.
type DayBucket struct {
	Date   models.Date     `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DailySeries produces exactly `days` buckets ending today, oldest
// first, zero-filled so the series is gap-free for plotting. Expense
// amounts are accumulated into the bucket for their date.
func DailySeries(txns []models.Transaction, days int, now time.Time) []DayBucket {
	if days <= 0 {
		return []DayBucket{}
	}
	today := models.DateOf(now)
	start := today.AddDate(0, 0, -(days - 1))

	buckets := make([]DayBucket, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		d := models.DateOf(start.AddDate(0, 0, i))
		buckets[i] = DayBucket{Date: d, Amount: decimal.Zero}
		index[d.String()] = i
	}

	for _, t := range txns {
		if t.TransactionType != models.TransactionTypeExpense {
			continue
		}
		if i, ok := index[t.TransactionDate.String()]; ok {
			buckets[i].Amount = buckets[i].Amount.Add(t.Amount)
		}
	}
	return buckets
}

// MonthBucket is one calendar month of income and expense sums.
type MonthBucket struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlySeries groups transactions by calendar month, summing income
// and expense separately. Only months containing at least one
// transaction appear, sorted chronologically ascending.
func MonthlySeries(txns []models.Transaction) []MonthBucket {
	index := make(map[string]int)
	buckets := make([]MonthBucket, 0)

	for _, t := range txns {
		key := t.TransactionDate.Format("2006-01")
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, MonthBucket{
				Year:    t.TransactionDate.Year(),
				Month:   t.TransactionDate.Month(),
				Label:   t.TransactionDate.Format("Jan 2006"),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			})
		}
		switch t.TransactionType {
		case models.TransactionTypeIncome:
			buckets[i].Income = buckets[i].Income.Add(t.Amount)
		case models.TransactionTypeExpense:
			buckets[i].Expense = buckets[i].Expense.Add(t.Amount)
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}

// CategorySummary holds per-category totals over a window, covering
// both income and expense transactions.
type CategorySummary struct {
	Category  string          `json:"category"`
	Total     decimal.Decimal `json:"total_amount"`
	Count     int             `json:"transaction_count"`
	AvgAmount decimal.Decimal `json:"avg_amount"`
}

// Summarize groups all transactions by category name and computes
// total, count, and average amount per category, first-seen order.
func Summarize(txns []models.Transaction) []CategorySummary {
	index := make(map[string]int)
	out := make([]CategorySummary, 0)

	for _, t := range txns {
		i, ok := index[t.CategoryName]
		if !ok {
			i = len(out)
			index[t.CategoryName] = i
			out = append(out, CategorySummary{Category: t.CategoryName})
		}
		out[i].Total = out[i].Total.Add(t.Amount)
		out[i].Count++
	}

	for i := range out {
		out[i].AvgAmount = out[i].Total.Div(decimal.NewFromInt(int64(out[i].Count))).Round(2)
	}
	return out
}
