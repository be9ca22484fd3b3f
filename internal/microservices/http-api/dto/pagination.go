package dto

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Pagination is bound from ?page=&limit= query parameters.
type Pagination struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize falls back to defaults for missing values and caps the limit at MaxLimit.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	switch {
	case p.Limit < 1:
		p.Limit = DefaultLimit
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
	return p
}

// Offset is the number of rows to skip for the normalized page.
func (p Pagination) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}
