package domain

const (
	DefaultPageItems = 50
	MaxPageItems     = 500
)

// PetitionListQuery pages through petitions. Index is zero based and the
// zero State matches every state.
type PetitionListQuery struct {
	State PetitionState
	Index int
	Items int
}

func (q PetitionListQuery) Normalize() PetitionListQuery {
	if q.Index < 0 {
		q.Index = 0
	}
	if q.Items <= 0 {
		q.Items = DefaultPageItems
	}
	if q.Items > MaxPageItems {
		q.Items = MaxPageItems
	}

	return q
}

func (q PetitionListQuery) Offset() int {
	normalized := q.Normalize()
	return normalized.Index * normalized.Items
}

type PetitionPage struct {
	Petitions []Petition
	Index     int
	PerPage   int
	Total     int
}

func (p PetitionPage) Pages() int {
	if p.PerPage <= 0 || p.Total <= 0 {
		return 0
	}

	return (p.Total + p.PerPage - 1) / p.PerPage
}

func (p PetitionPage) HasNext() bool {
	return p.Index+1 < p.Pages()
}

func (p PetitionPage) HasPrevious() bool {
	return p.Index > 0
}
