package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePropertyPayloadAcceptsCompletePayload(t *testing.T) {
	body := []byte(`{
		"title": "Marina View Apartment",
		"status": "For Rent",
		"type": "Apartment",
		"city": "Dubai",
		"price": 120000,
		"size": 950,
		"bedrooms": 2,
		"location": {"lat": 25.08, "lng": 55.14, "address": "Marina Walk 5"}
	}`)
	assert.NoError(t, ValidatePropertyPayload(body))
}

func TestValidatePropertyPayloadRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `{"title": `},
		{"missing title", `{"status":"For Rent","type":"Apartment","city":"Dubai","price":1,"size":1,"location":{"lat":0,"lng":0}}`},
		{"unknown status", `{"title":"x","status":"Sold","type":"Apartment","city":"Dubai","price":1,"size":1,"location":{"lat":0,"lng":0}}`},
		{"negative price", `{"title":"x","status":"For Rent","type":"Apartment","city":"Dubai","price":-1,"size":1,"location":{"lat":0,"lng":0}}`},
		{"latitude out of range", `{"title":"x","status":"For Rent","type":"Apartment","city":"Dubai","price":1,"size":1,"location":{"lat":91,"lng":0}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidatePropertyPayload([]byte(tc.body)))
		})
	}
}

func TestValidateDescriptionRequest(t *testing.T) {
	valid := []byte(`{"title":"Marina View","status":"For Sale","type":"Villa","city":"Dubai","language":"ar"}`)
	assert.NoError(t, ValidateDescriptionRequest(valid))

	missingCity := []byte(`{"title":"Marina View","status":"For Sale","type":"Villa"}`)
	assert.Error(t, ValidateDescriptionRequest(missingCity))

	badLanguage := []byte(`{"title":"x","status":"For Sale","type":"Villa","city":"Dubai","language":"fr"}`)
	assert.Error(t, ValidateDescriptionRequest(badLanguage))
}
