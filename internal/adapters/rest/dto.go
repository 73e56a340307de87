package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/core/domain"
)

// LocationDTO mirrors domain.Location on the wire.
type LocationDTO struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Address   string  `json:"address"`
	AddressAR string  `json:"addressAr,omitempty"`
}

// AgentContactDTO mirrors domain.AgentContact on the wire.
type AgentContactDTO struct {
	Name   string `json:"name"`
	NameAR string `json:"nameAr,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Email  string `json:"email,omitempty"`
}

// PropertyResponse is the full listing record as the frontend expects it.
type PropertyResponse struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	TitleAR       string           `json:"titleAr,omitempty"`
	Description   string           `json:"description"`
	DescriptionAR string           `json:"descriptionAr,omitempty"`
	Status        string           `json:"status"`
	Type          string           `json:"type"`
	City          string           `json:"city"`
	CityAR        string           `json:"cityAr,omitempty"`
	Price         float64          `json:"price"`
	Size          float64          `json:"size"`
	Bedrooms      int              `json:"bedrooms"`
	Bathrooms     int              `json:"bathrooms"`
	Parking       int              `json:"parking"`
	Amenities     []string         `json:"amenities"`
	AmenitiesAR   []string         `json:"amenitiesAr,omitempty"`
	Gallery       []string         `json:"gallery"`
	FloorPlanURL  string           `json:"floorPlanUrl,omitempty"`
	Location      LocationDTO      `json:"location"`
	Geohash       string           `json:"geohash,omitempty"`
	DateAdded     time.Time        `json:"dateAdded"`
	IsFeatured    bool             `json:"isFeatured"`
	Agent         *AgentContactDTO `json:"agent,omitempty"`
}

// PropertyPayload is the create/update request body. The id, geohash and
// creation timestamp are server-assigned and not accepted from the client.
type PropertyPayload struct {
	Title         string           `json:"title"`
	TitleAR       string           `json:"titleAr"`
	Description   string           `json:"description"`
	DescriptionAR string           `json:"descriptionAr"`
	Status        string           `json:"status"`
	Type          string           `json:"type"`
	City          string           `json:"city"`
	CityAR        string           `json:"cityAr"`
	Price         float64          `json:"price"`
	Size          float64          `json:"size"`
	Bedrooms      int              `json:"bedrooms"`
	Bathrooms     int              `json:"bathrooms"`
	Parking       int              `json:"parking"`
	Amenities     []string         `json:"amenities"`
	AmenitiesAR   []string         `json:"amenitiesAr"`
	Gallery       []string         `json:"gallery"`
	FloorPlanURL  string           `json:"floorPlanUrl"`
	Location      LocationDTO      `json:"location"`
	IsFeatured    bool             `json:"isFeatured"`
	Agent         *AgentContactDTO `json:"agent"`
}

// PaginatedPropertiesResponse is the discovery query result.
type PaginatedPropertiesResponse struct {
	Data       []PropertyResponse `json:"data"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

// NumericRangeDTO mirrors domain.NumericRange on the wire.
type NumericRangeDTO struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptionsResponse lists the values the filter panel can offer.
type FilterOptionsResponse struct {
	Statuses  []string         `json:"statuses"`
	Types     []string         `json:"types"`
	Cities    []string         `json:"cities"`
	Amenities []string         `json:"amenities"`
	Price     *NumericRangeDTO `json:"price,omitempty"`
	Size      *NumericRangeDTO `json:"size,omitempty"`
}

// GenerateDescriptionRequest carries the listing attributes the copy
// generator works from.
type GenerateDescriptionRequest struct {
	Title     string   `json:"title"`
	Status    string   `json:"status"`
	Type      string   `json:"type"`
	City      string   `json:"city"`
	Price     float64  `json:"price"`
	Size      float64  `json:"size"`
	Bedrooms  int      `json:"bedrooms"`
	Bathrooms int      `json:"bathrooms"`
	Amenities []string `json:"amenities"`
	Language  string   `json:"language"`
}

// GenerateDescriptionResponse is the generated marketing paragraph.
type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}

// ToggleFavoriteResponse reports the membership state after the flip.
type ToggleFavoriteResponse struct {
	IsFavorite bool `json:"isFavorite"`
}

// IsFavoriteResponse reports the current membership state.
type IsFavoriteResponse struct {
	IsFavorite bool `json:"isFavorite"`
}

// MediaUploadResponse lists the public URLs recorded on the property.
type MediaUploadResponse struct {
	URLs []string `json:"urls"`
}

func propertyToResponse(p *domain.Property) PropertyResponse {
	resp := PropertyResponse{
		ID:            p.ID,
		Title:         p.Title,
		TitleAR:       p.TitleAR,
		Description:   p.Description,
		DescriptionAR: p.DescriptionAR,
		Status:        string(p.Status),
		Type:          string(p.Type),
		City:          p.City,
		CityAR:        p.CityAR,
		Price:         p.Price,
		Size:          p.Size,
		Bedrooms:      p.Bedrooms,
		Bathrooms:     p.Bathrooms,
		Parking:       p.Parking,
		Amenities:     p.Amenities,
		AmenitiesAR:   p.AmenitiesAR,
		Gallery:       p.Gallery,
		FloorPlanURL:  p.FloorPlanURL,
		Location: LocationDTO{
			Lat:       p.Location.Lat,
			Lng:       p.Location.Lng,
			Address:   p.Location.Address,
			AddressAR: p.Location.AddressAR,
		},
		Geohash:    p.Geohash,
		DateAdded:  p.DateAdded,
		IsFeatured: p.IsFeatured,
	}
	if resp.Amenities == nil {
		resp.Amenities = []string{}
	}
	if resp.Gallery == nil {
		resp.Gallery = []string{}
	}
	if p.Agent != nil {
		resp.Agent = &AgentContactDTO{
			Name:   p.Agent.Name,
			NameAR: p.Agent.NameAR,
			Phone:  p.Agent.Phone,
			Email:  p.Agent.Email,
		}
	}
	return resp
}

func payloadToProperty(dto PropertyPayload) domain.Property {
	p := domain.Property{
		Title:         dto.Title,
		TitleAR:       dto.TitleAR,
		Description:   dto.Description,
		DescriptionAR: dto.DescriptionAR,
		Status:        domain.PropertyStatus(dto.Status),
		Type:          domain.PropertyType(dto.Type),
		City:          dto.City,
		CityAR:        dto.CityAR,
		Price:         dto.Price,
		Size:          dto.Size,
		Bedrooms:      dto.Bedrooms,
		Bathrooms:     dto.Bathrooms,
		Parking:       dto.Parking,
		Amenities:     dto.Amenities,
		AmenitiesAR:   dto.AmenitiesAR,
		Gallery:       dto.Gallery,
		FloorPlanURL:  dto.FloorPlanURL,
		Location: domain.Location{
			Lat:       dto.Location.Lat,
			Lng:       dto.Location.Lng,
			Address:   dto.Location.Address,
			AddressAR: dto.Location.AddressAR,
		},
		IsFeatured: dto.IsFeatured,
	}
	if dto.Agent != nil {
		p.Agent = &domain.AgentContact{
			Name:   dto.Agent.Name,
			NameAR: dto.Agent.NameAR,
			Phone:  dto.Agent.Phone,
			Email:  dto.Agent.Email,
		}
	}
	return p
}
