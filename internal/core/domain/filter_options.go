package domain

// NumericRange is a min/max pair derived from the stored records.
type NumericRange struct {
	Min float64
	Max float64
}

// FilterOptions describes the values the filter panel can offer: the
// distinct dictionary values present in the store plus the numeric ranges.
type FilterOptions struct {
	Statuses  []PropertyStatus
	Types     []PropertyType
	Cities    []string
	Amenities []string
	Price     *NumericRange
	Size      *NumericRange
}

// DescriptionRequest carries the structured attributes the copy generator
// turns into a short marketing paragraph.
type DescriptionRequest struct {
	Title     string
	Status    PropertyStatus
	Type      PropertyType
	City      string
	Price     float64
	Size      float64
	Bedrooms  int
	Bathrooms int
	Amenities []string
	Language  Language
}
