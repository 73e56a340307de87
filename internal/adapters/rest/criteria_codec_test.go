package rest

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasser0p/realestate/internal/core/domain"
)

func TestCriteriaCodecRoundTrip(t *testing.T) {
	minPrice := 100000.0
	maxPrice := 750000.5
	bedrooms := 3
	featured := true
	criteria := domain.FilterCriteria{
		Status:    domain.StatusForSale,
		Type:      domain.TypeApartment,
		City:      "Dubai",
		MinPrice:  &minPrice,
		MaxPrice:  &maxPrice,
		Bedrooms:  &bedrooms,
		Featured:  &featured,
		Amenities: []string{"Balcony", "Sea View"},
		Query:     "marina",
	}

	decoded := DecodeFilterCriteria(EncodeFilterCriteria(criteria))
	assert.Equal(t, criteria, decoded)
}

func TestDecodeFilterCriteriaRepeatableAmenities(t *testing.T) {
	values, err := url.ParseQuery("bedrooms=3&amenities=Balcony&amenities=Sea+View")
	require.NoError(t, err)

	criteria := DecodeFilterCriteria(values)
	require.NotNil(t, criteria.Bedrooms)
	assert.Equal(t, 3, *criteria.Bedrooms)
	assert.Equal(t, []string{"Balcony", "Sea View"}, criteria.Amenities)
}

func TestDecodeFilterCriteriaFeatured(t *testing.T) {
	values := url.Values{}
	values.Set("featured", "true")

	criteria := DecodeFilterCriteria(values)
	require.NotNil(t, criteria.Featured)
	assert.True(t, *criteria.Featured)

	values.Set("featured", "maybe")
	assert.Nil(t, DecodeFilterCriteria(values).Featured)
}

func TestDecodeFilterCriteriaAbsentStaysAbsent(t *testing.T) {
	criteria := DecodeFilterCriteria(url.Values{})

	assert.True(t, criteria.IsZero())
	assert.Nil(t, criteria.MinPrice)
	assert.Nil(t, criteria.Bedrooms)
	assert.Nil(t, criteria.Featured)
	assert.Nil(t, criteria.Amenities)
}

func TestDecodeFilterCriteriaUnparsableValueIsTreatedAsAbsent(t *testing.T) {
	values := url.Values{}
	values.Set("minPrice", "cheap")
	values.Set("bedrooms", "many")
	values.Set("city", "Dubai")

	criteria := DecodeFilterCriteria(values)
	assert.Nil(t, criteria.MinPrice)
	assert.Nil(t, criteria.Bedrooms)
	assert.Equal(t, "Dubai", criteria.City)
}

func TestEncodeFilterCriteriaOmitsAbsentConstraints(t *testing.T) {
	values := EncodeFilterCriteria(domain.FilterCriteria{City: "Dubai"})

	assert.Equal(t, "Dubai", values.Get("city"))
	assert.Len(t, values, 1)
}

func TestEncodeFilterCriteriaZeroBoundIsPresent(t *testing.T) {
	zero := 0.0
	values := EncodeFilterCriteria(domain.FilterCriteria{MinPrice: &zero})

	// An explicit zero bound is a real constraint, not an absent one.
	assert.Equal(t, "0", values.Get("minPrice"))
}
