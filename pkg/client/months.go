package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FormatMonth formats the month of the time in the YYYY-MM format the
// backend expects in query parameters.
func FormatMonth(t time.Time) string {
	return t.Format("2006-01")
}

// ExpandMonths returns the ordered list of months from start to end,
// both inclusive. Year boundaries are crossed, so 2024-11 to 2025-02
// yields November and December 2024 followed by January and February
// 2025.
func ExpandMonths(start, end time.Time) []time.Time {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	var months []time.Time
	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		months = append(months, month)
	}

	return months
}

// EntriesByMonths fetches the entries of all months passed in parallel
// and maps them by month in YYYY-MM format. Every month is cached under
// its own key, so fetching a month again after removing it from the set
// is served from the cache.
func (s *BudgetsService) EntriesByMonths(ctx context.Context, id uuid.UUID, months []time.Time) (map[string][]BudgetEntry, error) {
	var mu sync.Mutex
	result := make(map[string][]BudgetEntry, len(months))

	g, ctx := errgroup.WithContext(ctx)
	for _, month := range months {
		key := FormatMonth(month)

		g.Go(func() error {
			entries, err := s.Entries(ctx, id, BudgetEntryListOptions{Month: key})
			if err != nil {
				return err
			}

			mu.Lock()
			result[key] = entries
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
