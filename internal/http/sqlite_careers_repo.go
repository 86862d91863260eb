package httpapi

import (
	"github.com/pathwise/career-fit-engine/internal/domain"
	"github.com/pathwise/career-fit-engine/internal/storage"
)

// SQLiteCareersRepo serves catalog reads from the SQLite store.
type SQLiteCareersRepo struct {
	Store *storage.CareerStore
}

func (r *SQLiteCareersRepo) List(p ListParams) ([]CareerSummary, int) {
	if r == nil || r.Store == nil {
		return nil, 0
	}

	var (
		careers []domain.CareerProfile
		total   int
		err     error
	)
	if p.Search == "" && p.Sort == "" {
		careers, total, err = r.Store.ListCareers(p.Limit, p.Offset)
	} else {
		careers, total, err = r.Store.ListCareersFiltered(p.Limit, p.Offset, p.Search, p.Sort)
	}
	if err != nil {
		// The browse contract has no error channel; an unreadable store
		// degrades to an empty listing.
		return nil, 0
	}

	out := make([]CareerSummary, 0, len(careers))
	for _, c := range careers {
		out = append(out, summarize(c))
	}
	return out, total
}

func (r *SQLiteCareersRepo) Get(title string) (domain.CareerProfile, bool) {
	if r == nil || r.Store == nil {
		return domain.CareerProfile{}, false
	}
	c, ok, err := r.Store.GetCareer(title)
	if err != nil {
		return domain.CareerProfile{}, false
	}
	return c, ok
}
