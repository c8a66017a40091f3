package pagination

import "gorm.io/gorm"

// DefaultLimit caps list responses when the client does not ask for a
// specific page size.
const DefaultLimit = 100

// MaxLimit is the hard ceiling on a single list response.
const MaxLimit = 1000

// ListRequest holds limit/offset parameters parsed from query strings.
type ListRequest struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// Defaults fills in the default limit when none is provided.
func (p *ListRequest) Defaults() {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Scope returns a GORM scope that applies OFFSET and LIMIT for the request.
func Scope(req ListRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset).Limit(req.Limit)
	}
}
