package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedFieldsFallBackToDefaultLanguage(t *testing.T) {
	p := Property{
		Title:   "Sea Breeze",
		TitleAR: "نسيم البحر",
		City:    "Dubai",
		// CityAR deliberately absent.
	}

	assert.Equal(t, "نسيم البحر", p.LocalizedTitle(LanguageAR))
	assert.Equal(t, "Sea Breeze", p.LocalizedTitle(LanguageEN))
	assert.Equal(t, "Dubai", p.LocalizedCity(LanguageAR))
}

func TestAmenityLabelsFallBackWhenLocalizedListEmpty(t *testing.T) {
	p := Property{Amenities: []string{"Pool"}}

	assert.Equal(t, []string{"Pool"}, p.AmenityLabels(LanguageAR))

	p.AmenitiesAR = []string{"مسبح"}
	assert.Equal(t, []string{"مسبح"}, p.AmenityLabels(LanguageAR))
	assert.Equal(t, []string{"Pool"}, p.AmenityLabels(LanguageEN))
}
