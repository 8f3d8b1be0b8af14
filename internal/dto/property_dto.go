package dto

import (
	"time"

	"github.com/abhijeet5642/propertyadded/internal/entity"
)

// AgentResponse is the public projection of the listing agent.
type AgentResponse struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type CoordsResponse struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type PropertyResponse struct {
	ID             string         `json:"_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	PropertyType   string         `json:"propertyType"`
	Price          float64        `json:"price"`
	Area           float64        `json:"area"`
	Bedrooms       int            `json:"bedrooms"`
	Bathrooms      int            `json:"bathrooms"`
	Furnishing     string         `json:"furnishing"`
	Possession     string         `json:"possession"`
	BuiltYear      *int           `json:"builtYear,omitempty"`
	Location       string         `json:"location"`
	Locality       string         `json:"locality"`
	City           string         `json:"city"`
	Images         []string       `json:"images"`
	VideoURLs      []string       `json:"videoUrls"`
	Amenities      []string       `json:"amenities"`
	LocationCoords CoordsResponse `json:"locationCoords"`
	Agent          AgentResponse  `json:"agent"`
	SubmittedBy    string         `json:"submittedBy,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func PropertyResponseFromEntity(property *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:           property.ID.String(),
		Title:        property.Title,
		Description:  property.Description,
		PropertyType: property.PropertyType,
		Price:        property.Price,
		Area:         property.Area,
		Bedrooms:     property.Bedrooms,
		Bathrooms:    property.Bathrooms,
		Furnishing:   property.Furnishing,
		Possession:   property.Possession,
		BuiltYear:    property.BuiltYear,
		Location:     property.Location,
		Locality:     property.Locality,
		City:         property.City,
		Images:       property.Images,
		VideoURLs:    property.VideoURLs,
		Amenities:    property.Amenities,
		LocationCoords: CoordsResponse{
			Lat: property.Latitude,
			Lng: property.Longitude,
		},
		Agent: AgentResponse{
			ID:       property.AgentID.String(),
			FullName: property.Agent.FullName,
			Email:    property.Agent.Email,
		},
		SubmittedBy: property.SubmittedBy,
		CreatedAt:   property.CreatedAt,
		UpdatedAt:   property.UpdatedAt,
	}
}

func PropertyResponsesFromEntities(properties []entity.Property) []PropertyResponse {
	responses := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		responses = append(responses, PropertyResponseFromEntity(&properties[i]))
	}
	return responses
}
