package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// FilterCriteria is the user's current set of filter selections plus the
// free-text term. A zero-valued field means "no constraint on this field".
type FilterCriteria struct {
	Status    PropertyStatus
	Type      PropertyType
	City      string
	MinPrice  *float64
	MaxPrice  *float64
	MinSize   *float64
	MaxSize   *float64
	Bedrooms  *int // minimum bedroom count
	Featured  *bool
	Amenities []string
	Query     string
}

// IsZero reports whether no constraint is present at all.
func (c FilterCriteria) IsZero() bool {
	return c.Status == "" && c.Type == "" && c.City == "" &&
		c.MinPrice == nil && c.MaxPrice == nil &&
		c.MinSize == nil && c.MaxSize == nil &&
		c.Bedrooms == nil && c.Featured == nil &&
		len(c.Amenities) == 0 && c.Query == ""
}

// Validate rejects criteria with negative numeric bounds. A present min
// above a present max is not an error; such criteria simply match nothing.
func (c FilterCriteria) Validate() error {
	bounds := []struct {
		name  string
		value *float64
	}{
		{"minPrice", c.MinPrice},
		{"maxPrice", c.MaxPrice},
		{"minSize", c.MinSize},
		{"maxSize", c.MaxSize},
	}
	for _, b := range bounds {
		if b.value != nil && *b.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %v", b.name, *b.value)
		}
	}
	if c.Bedrooms != nil && *c.Bedrooms < 0 {
		return fmt.Errorf("bedrooms must be non-negative, got %d", *c.Bedrooms)
	}
	return nil
}

// Matches reports whether the record passes every present criterion. All
// active constraints are combined with logical AND; no constraint present
// means every record matches. This is a binary pass/fail filter, not a
// ranked search.
func (c FilterCriteria) Matches(p *Property, lang Language) bool {
	if c.Status != "" && p.Status != c.Status {
		return false
	}
	if c.Type != "" && p.Type != c.Type {
		return false
	}
	if c.City != "" && p.City != c.City {
		return false
	}
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if c.MinSize != nil && p.Size < *c.MinSize {
		return false
	}
	if c.MaxSize != nil && p.Size > *c.MaxSize {
		return false
	}
	if c.Bedrooms != nil && p.Bedrooms < *c.Bedrooms {
		return false
	}
	if c.Featured != nil && p.IsFeatured != *c.Featured {
		return false
	}
	if len(c.Amenities) > 0 {
		labels := p.AmenityLabels(lang)
		for _, required := range c.Amenities {
			if !containsExact(labels, required) {
				return false
			}
		}
	}
	if c.Query != "" && !matchesQuery(p, c.Query, lang) {
		return false
	}
	return true
}

func containsExact(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// folder performs Unicode case folding so the free-text match stays
// case-insensitive beyond plain ASCII.
var folder = cases.Fold()

func foldContains(haystack, needle string) bool {
	return strings.Contains(folder.String(haystack), folder.String(needle))
}

// matchesQuery checks the free-text term against title, description, city
// and address, trying the language-appropriate field first and falling back
// to the default-language field when the localized one is absent.
func matchesQuery(p *Property, query string, lang Language) bool {
	return foldContains(p.LocalizedTitle(lang), query) ||
		foldContains(p.LocalizedDescription(lang), query) ||
		foldContains(p.LocalizedCity(lang), query) ||
		foldContains(p.LocalizedAddress(lang), query)
}

// FilterProperties applies the criteria to the whole list and returns the
// records that pass, preserving input order.
func FilterProperties(items []Property, c FilterCriteria, lang Language) []Property {
	result := make([]Property, 0, len(items))
	for i := range items {
		if c.Matches(&items[i], lang) {
			result = append(result, items[i])
		}
	}
	return result
}
