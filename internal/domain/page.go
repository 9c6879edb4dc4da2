package domain

const (
	// DefaultPageLimit is applied when the client does not pass a limit.
	DefaultPageLimit = 100
	// MaxPageLimit caps a single page regardless of the requested limit.
	MaxPageLimit = 500
)

// Page holds skip/limit pagination parameters shared by all list endpoints.
type Page struct {
	Skip  int
	Limit int
}

// Normalize returns a copy with defaults applied and values clamped.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
