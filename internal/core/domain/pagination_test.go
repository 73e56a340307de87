package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProperties(n int) []Property {
	items := make([]Property, n)
	for i := range items {
		items[i].Title = fmt.Sprintf("Listing %d", i)
	}
	return items
}

func TestPaginatePropertiesSlicesPages(t *testing.T) {
	items := makeProperties(125)

	slice, totalPages := PaginateProperties(items, 12, 1)
	require.Equal(t, 11, totalPages)
	require.Len(t, slice, 12)
	assert.Equal(t, "Listing 0", slice[0].Title)

	slice, _ = PaginateProperties(items, 12, 2)
	require.Len(t, slice, 12)
	assert.Equal(t, "Listing 12", slice[0].Title)

	// The last page holds the remainder.
	slice, _ = PaginateProperties(items, 12, 11)
	assert.Len(t, slice, 5)
}

func TestPaginatePropertiesPageBeyondEndIsEmpty(t *testing.T) {
	items := makeProperties(125)

	slice, totalPages := PaginateProperties(items, 12, 12)
	assert.Empty(t, slice)
	assert.Equal(t, 11, totalPages)
}

func TestPaginatePropertiesEdgeCases(t *testing.T) {
	items := makeProperties(10)

	slice, totalPages := PaginateProperties(nil, 12, 1)
	assert.Empty(t, slice)
	assert.Equal(t, 0, totalPages)

	slice, totalPages = PaginateProperties(items, 0, 1)
	assert.Empty(t, slice)
	assert.Equal(t, 0, totalPages)

	slice, totalPages = PaginateProperties(items, 12, 0)
	assert.Empty(t, slice)
	assert.Equal(t, 1, totalPages)

	// Exact multiple has no trailing partial page.
	_, totalPages = PaginateProperties(makeProperties(24), 12, 1)
	assert.Equal(t, 2, totalPages)
}

func TestListingSessionSetCriteriaResetsPage(t *testing.T) {
	s := NewListingSession()
	s.SetPage(7)
	require.Equal(t, 7, s.CurrentPage)

	s.SetCriteria(FilterCriteria{City: "Dubai"})
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, "Dubai", s.Criteria.City)
}

func TestListingSessionIgnoresInvalidPages(t *testing.T) {
	s := NewListingSession()
	s.SetPage(3)
	s.SetPage(0)
	assert.Equal(t, 3, s.CurrentPage)
	s.SetPage(-2)
	assert.Equal(t, 3, s.CurrentPage)
}

func TestListingSessionStaleFetchIsRejected(t *testing.T) {
	s := NewListingSession()

	first := s.SetCriteria(FilterCriteria{City: "Dubai"})
	second := s.SetCriteria(FilterCriteria{City: "Abu Dhabi"})

	// The fetch started under the first criteria finishes late; its
	// results must not be accepted.
	assert.False(t, s.Accept(first))
	assert.True(t, s.Accept(second))
}
