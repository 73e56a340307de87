package rest

import (
	"net/url"
	"strconv"

	"github.com/nasser0p/realestate/internal/core/domain"
)

// Query parameter names of the filter criteria wire format. The parameter
// set is stable so filter URLs stay shareable and bookmarkable.
const (
	paramStatus    = "status"
	paramType      = "type"
	paramCity      = "city"
	paramMinPrice  = "minPrice"
	paramMaxPrice  = "maxPrice"
	paramMinSize   = "minSize"
	paramMaxSize   = "maxSize"
	paramBedrooms  = "bedrooms"
	paramFeatured  = "featured"
	paramAmenities = "amenities"
	paramQuery     = "q"
)

// DecodeFilterCriteria reads the filter criteria from query parameters.
// Absent parameters stay absent constraints, and a parameter whose value
// fails to parse is treated as absent rather than failing the request.
func DecodeFilterCriteria(values url.Values) domain.FilterCriteria {
	var c domain.FilterCriteria

	c.Status = domain.PropertyStatus(values.Get(paramStatus))
	c.Type = domain.PropertyType(values.Get(paramType))
	c.City = values.Get(paramCity)
	c.Query = values.Get(paramQuery)

	c.MinPrice = parseFloatParam(values, paramMinPrice)
	c.MaxPrice = parseFloatParam(values, paramMaxPrice)
	c.MinSize = parseFloatParam(values, paramMinSize)
	c.MaxSize = parseFloatParam(values, paramMaxSize)
	c.Bedrooms = parseIntParam(values, paramBedrooms)
	c.Featured = parseBoolParam(values, paramFeatured)

	for _, a := range values[paramAmenities] {
		if a != "" {
			c.Amenities = append(c.Amenities, a)
		}
	}

	return c
}

// EncodeFilterCriteria writes the criteria back into query parameters,
// emitting only the constraints that are present. Decoding the result
// yields the same criteria.
func EncodeFilterCriteria(c domain.FilterCriteria) url.Values {
	values := url.Values{}

	if c.Status != "" {
		values.Set(paramStatus, string(c.Status))
	}
	if c.Type != "" {
		values.Set(paramType, string(c.Type))
	}
	if c.City != "" {
		values.Set(paramCity, c.City)
	}
	if c.MinPrice != nil {
		values.Set(paramMinPrice, formatFloat(*c.MinPrice))
	}
	if c.MaxPrice != nil {
		values.Set(paramMaxPrice, formatFloat(*c.MaxPrice))
	}
	if c.MinSize != nil {
		values.Set(paramMinSize, formatFloat(*c.MinSize))
	}
	if c.MaxSize != nil {
		values.Set(paramMaxSize, formatFloat(*c.MaxSize))
	}
	if c.Bedrooms != nil {
		values.Set(paramBedrooms, strconv.Itoa(*c.Bedrooms))
	}
	if c.Featured != nil {
		values.Set(paramFeatured, strconv.FormatBool(*c.Featured))
	}
	for _, a := range c.Amenities {
		values.Add(paramAmenities, a)
	}
	if c.Query != "" {
		values.Set(paramQuery, c.Query)
	}

	return values
}

func parseFloatParam(values url.Values, name string) *float64 {
	raw := values.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntParam(values url.Values, name string) *int {
	raw := values.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func parseBoolParam(values url.Values, name string) *bool {
	raw := values.Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
