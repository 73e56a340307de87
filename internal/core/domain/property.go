package domain

import (
	"time"

	"github.com/google/uuid"
)

// Language selects which localized variant of a record's text fields is shown.
type Language string

const (
	LanguageEN Language = "en"
	LanguageAR Language = "ar"
)

// DefaultLanguage is the fallback when a localized field is absent.
const DefaultLanguage = LanguageEN

type PropertyStatus string

const (
	StatusForSale PropertyStatus = "For Sale"
	StatusForRent PropertyStatus = "For Rent"
	StatusOffPlan PropertyStatus = "Off-Plan"
)

type PropertyType string

const (
	TypeApartment PropertyType = "Apartment"
	TypeVilla     PropertyType = "Villa"
	TypeTownhouse PropertyType = "Townhouse"
	TypePenthouse PropertyType = "Penthouse"
	TypeLand      PropertyType = "Land"
	TypeOffice    PropertyType = "Office"
)

// Location is a record's geolocation with a localized address.
type Location struct {
	Lat       float64
	Lng       float64
	Address   string
	AddressAR string
}

// AgentContact is the optional contact block attached to a listing.
type AgentContact struct {
	Name   string
	NameAR string
	Phone  string
	Email  string
}

// Property is a single listable record. ID is assigned by the store on
// creation and never changes; DateAdded does not change on update.
type Property struct {
	ID            uuid.UUID
	Title         string
	TitleAR       string
	Description   string
	DescriptionAR string
	Status        PropertyStatus
	Type          PropertyType
	City          string
	CityAR        string
	Price         float64
	Size          float64
	Bedrooms      int
	Bathrooms     int
	Parking       int
	Amenities     []string
	AmenitiesAR   []string
	Gallery       []string
	FloorPlanURL  string
	Location      Location
	Geohash       string
	DateAdded     time.Time
	IsFeatured    bool
	Agent         *AgentContact
}

// AmenityLabels returns the amenity list for the given display language,
// falling back to the default-language list when the localized one is empty.
func (p *Property) AmenityLabels(lang Language) []string {
	if lang == LanguageAR && len(p.AmenitiesAR) > 0 {
		return p.AmenitiesAR
	}
	return p.Amenities
}

// LocalizedTitle returns the title in the given language, falling back to
// the default-language field when the localized one is absent.
func (p *Property) LocalizedTitle(lang Language) string {
	if lang == LanguageAR && p.TitleAR != "" {
		return p.TitleAR
	}
	return p.Title
}

func (p *Property) LocalizedDescription(lang Language) string {
	if lang == LanguageAR && p.DescriptionAR != "" {
		return p.DescriptionAR
	}
	return p.Description
}

func (p *Property) LocalizedCity(lang Language) string {
	if lang == LanguageAR && p.CityAR != "" {
		return p.CityAR
	}
	return p.City
}

func (p *Property) LocalizedAddress(lang Language) string {
	if lang == LanguageAR && p.Location.AddressAR != "" {
		return p.Location.AddressAR
	}
	return p.Location.Address
}
