package revenue

import (
	"sort"
	"strings"
	"time"

	"boxoffice/entities"
)

const DefaultPageSize = 10

// Filter narrows the payment set. Zero-value fields are ignored; the
// set fields combine with AND.
type Filter struct {
	Status   entities.PaymentStatus
	Method   string // substring match
	DateFrom *time.Time
	DateTo   *time.Time // both bounds inclusive
}

func (f Filter) matches(p entities.EnrichedPayment) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Method != "" && !strings.Contains(p.Method, f.Method) {
		return false
	}
	if f.DateFrom != nil && p.PaidAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && p.PaidAt.After(*f.DateTo) {
		return false
	}
	return true
}

// Windows are the now-relative revenue sums over the filtered set, in
// integer minor units. They are recomputed against the supplied "now"
// on every call, never cached.
type Windows struct {
	Total     int64 `json:"total"`
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"this_week"`
	ThisMonth int64 `json:"this_month"`
}

type PagedView struct {
	Items      []entities.EnrichedPayment `json:"items"`
	Page       int                        `json:"page"`
	PageSize   int                        `json:"page_size"`
	TotalPages int                        `json:"total_pages"`
	TotalCount int                        `json:"total_count"`
	Windows    Windows                    `json:"windows"`
}

// Filtered returns the payments passing the filter, ordered by payment
// date descending. Ties break on transaction id so repeated calls with
// identical input produce identical order.
func Filtered(payments []entities.EnrichedPayment, f Filter) []entities.EnrichedPayment {
	filtered := make([]entities.EnrichedPayment, 0, len(payments))
	for _, p := range payments {
		if f.matches(p) {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].PaidAt.Equal(filtered[j].PaidAt) {
			return filtered[i].PaidAt.After(filtered[j].PaidAt)
		}
		return filtered[i].TransactionID < filtered[j].TransactionID
	})

	return filtered
}

// View filters, sorts, sums the revenue windows and slices one page.
// The requested page is clamped to [1, totalPages] ([1, 1] when the
// filtered set is empty).
func View(payments []entities.EnrichedPayment, f Filter, page, pageSize int, now time.Time) PagedView {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := Filtered(payments, f)

	view := PagedView{
		PageSize:   pageSize,
		TotalCount: len(filtered),
		Windows:    windows(filtered, now),
	}

	view.TotalPages = (len(filtered) + pageSize - 1) / pageSize
	if view.TotalPages < 1 {
		view.TotalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > view.TotalPages {
		page = view.TotalPages
	}
	view.Page = page

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	view.Items = filtered[start:end]

	return view
}

func windows(filtered []entities.EnrichedPayment, now time.Time) Windows {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// the week starts on Sunday, boundary inclusive
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var w Windows
	for _, p := range filtered {
		w.Total += p.Amount
		if !p.PaidAt.Before(startOfDay) {
			w.Today += p.Amount
		}
		if !p.PaidAt.Before(startOfWeek) {
			w.ThisWeek += p.Amount
		}
		if !p.PaidAt.Before(startOfMonth) {
			w.ThisMonth += p.Amount
		}
	}

	return w
}
