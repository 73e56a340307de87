package domain

// PaginateProperties slices the filtered list into the requested 1-based
// page. totalPages is ceil(len(items)/pageSize), 0 for an empty input.
// A page beyond totalPages yields an empty slice, never an error.
func PaginateProperties(items []Property, pageSize, page int) (slice []Property, totalPages int) {
	if pageSize <= 0 {
		return []Property{}, 0
	}
	totalPages = (len(items) + pageSize - 1) / pageSize

	if page < 1 {
		return []Property{}, totalPages
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []Property{}, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

// ListingSession owns the page state of one discovery session: the active
// criteria, the current 1-based page and a monotonically increasing fetch
// token. Replacing the criteria resets the page to 1 and invalidates any
// fetch still in flight, so a slow superseded fetch can never overwrite a
// fresh one. A session belongs to a single logical caller; it is not safe
// for concurrent use.
//
// The HTTP API is stateless and takes the page from the query string on
// every request, so it never constructs a session. ListingSession exists for
// embedding callers that keep a discovery session alive across fetches and
// need the reset and staleness rules enforced in one place.
type ListingSession struct {
	Criteria    FilterCriteria
	CurrentPage int

	latestToken uint64
}

func NewListingSession() *ListingSession {
	return &ListingSession{CurrentPage: 1}
}

// SetCriteria replaces the active filter set, resets the page to 1 and
// returns the token that must accompany the resulting fetch.
func (s *ListingSession) SetCriteria(c FilterCriteria) uint64 {
	s.Criteria = c
	s.CurrentPage = 1
	s.latestToken++
	return s.latestToken
}

// SetPage moves to the requested page without touching the criteria.
// Pages below 1 are ignored.
func (s *ListingSession) SetPage(page int) {
	if page >= 1 {
		s.CurrentPage = page
	}
}

// Accept reports whether results fetched under the given token are still
// the latest the session asked for.
func (s *ListingSession) Accept(token uint64) bool {
	return token == s.latestToken
}
