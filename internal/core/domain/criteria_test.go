package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func sampleProperties() []Property {
	return []Property{
		{
			Title:     "Marina View Apartment",
			Status:    StatusForRent,
			Type:      TypeApartment,
			City:      "Dubai",
			Price:     450,
			Size:      900,
			Bedrooms:  2,
			Amenities: []string{"Gymnasium", "Pool"},
			Location:  Location{Address: "Marina Walk 5"},
		},
		{
			Title:     "Palm Villa",
			Status:    StatusForSale,
			Type:      TypeVilla,
			City:      "Dubai",
			Price:     2500000,
			Size:      5200,
			Bedrooms:  5,
			Amenities: []string{"Private Pool", "Garden"},
			Location:  Location{Address: "Palm Jumeirah"},
		},
		{
			Title:     "Downtown Studio",
			Status:    StatusForRent,
			Type:      TypeApartment,
			City:      "Abu Dhabi",
			Price:     700,
			Size:      480,
			Bedrooms:  0,
			Amenities: []string{"Gymnasium"},
			Location:  Location{Address: "Corniche Road"},
		},
	}
}

func TestMatchesCombinesCriteriaWithAND(t *testing.T) {
	items := sampleProperties()

	criteria := FilterCriteria{
		Status:    StatusForRent,
		MaxPrice:  floatPtr(500),
		Amenities: []string{"Gymnasium"},
	}

	result := FilterProperties(items, criteria, LanguageEN)
	require.Len(t, result, 1)
	assert.Equal(t, "Marina View Apartment", result[0].Title)
}

func TestMatchesAddingCriterionNeverGrowsResult(t *testing.T) {
	items := sampleProperties()

	base := FilterCriteria{Status: StatusForRent}
	narrowed := base
	narrowed.MaxPrice = floatPtr(500)

	baseResult := FilterProperties(items, base, LanguageEN)
	narrowedResult := FilterProperties(items, narrowed, LanguageEN)

	assert.LessOrEqual(t, len(narrowedResult), len(baseResult))
	for _, p := range narrowedResult {
		assert.True(t, base.Matches(&p, LanguageEN))
	}
}

func TestMatchesEmptyCriteriaMatchesEverything(t *testing.T) {
	items := sampleProperties()
	var criteria FilterCriteria

	require.True(t, criteria.IsZero())
	assert.Len(t, FilterProperties(items, criteria, LanguageEN), len(items))
}

func TestMatchesBedroomsIsAtLeast(t *testing.T) {
	items := sampleProperties()
	criteria := FilterCriteria{Bedrooms: intPtr(2)}

	result := FilterProperties(items, criteria, LanguageEN)
	require.Len(t, result, 2)
	for _, p := range result {
		assert.GreaterOrEqual(t, p.Bedrooms, 2)
	}
}

func TestMatchesFeaturedFlag(t *testing.T) {
	items := sampleProperties()
	items[1].IsFeatured = true

	featured := true
	result := FilterProperties(items, FilterCriteria{Featured: &featured}, LanguageEN)
	require.Len(t, result, 1)
	assert.Equal(t, "Palm Villa", result[0].Title)

	featured = false
	assert.Len(t, FilterProperties(items, FilterCriteria{Featured: &featured}, LanguageEN), 2)
}

func TestMatchesAmenityRequiresExactLabel(t *testing.T) {
	items := sampleProperties()

	// "Pool" must not match "Private Pool".
	result := FilterProperties(items, FilterCriteria{Amenities: []string{"Pool"}}, LanguageEN)
	require.Len(t, result, 1)
	assert.Equal(t, "Marina View Apartment", result[0].Title)
}

func TestMatchesAmenityUsesLocalizedLabels(t *testing.T) {
	p := Property{
		Amenities:   []string{"Pool"},
		AmenitiesAR: []string{"مسبح"},
	}

	assert.True(t, FilterCriteria{Amenities: []string{"مسبح"}}.Matches(&p, LanguageAR))
	assert.False(t, FilterCriteria{Amenities: []string{"Pool"}}.Matches(&p, LanguageAR))
	assert.True(t, FilterCriteria{Amenities: []string{"Pool"}}.Matches(&p, LanguageEN))
}

func TestMatchesQueryIsCaseInsensitive(t *testing.T) {
	items := sampleProperties()

	for _, q := range []string{"marina", "MARINA", "Marina Walk"} {
		result := FilterProperties(items, FilterCriteria{Query: q}, LanguageEN)
		require.Len(t, result, 1, "query %q", q)
		assert.Equal(t, "Marina View Apartment", result[0].Title)
	}
}

func TestMatchesQueryFallsBackToDefaultLanguageFields(t *testing.T) {
	p := Property{Title: "Sea Breeze", City: "Dubai"}

	// No Arabic title is present, so the Arabic view searches the
	// default-language one.
	assert.True(t, FilterCriteria{Query: "breeze"}.Matches(&p, LanguageAR))
}

func TestMatchesMinAboveMaxMatchesNothing(t *testing.T) {
	items := sampleProperties()
	criteria := FilterCriteria{
		MinPrice: floatPtr(1000),
		MaxPrice: floatPtr(500),
	}

	require.NoError(t, criteria.Validate())
	assert.Empty(t, FilterProperties(items, criteria, LanguageEN))
}

func TestValidateRejectsNegativeBounds(t *testing.T) {
	cases := []struct {
		name     string
		criteria FilterCriteria
	}{
		{"negative minPrice", FilterCriteria{MinPrice: floatPtr(-1)}},
		{"negative maxPrice", FilterCriteria{MaxPrice: floatPtr(-0.5)}},
		{"negative minSize", FilterCriteria{MinSize: floatPtr(-10)}},
		{"negative maxSize", FilterCriteria{MaxSize: floatPtr(-10)}},
		{"negative bedrooms", FilterCriteria{Bedrooms: intPtr(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.criteria.Validate())
		})
	}

	assert.NoError(t, FilterCriteria{MinPrice: floatPtr(0)}.Validate())
}

func TestFilterPropertiesPreservesInputOrder(t *testing.T) {
	items := sampleProperties()
	result := FilterProperties(items, FilterCriteria{Status: StatusForRent}, LanguageEN)

	require.Len(t, result, 2)
	assert.Equal(t, "Marina View Apartment", result[0].Title)
	assert.Equal(t, "Downtown Studio", result[1].Title)
}
