package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhijeet5642/propertyadded/internal/entity"
	"github.com/abhijeet5642/propertyadded/internal/repository"

	"github.com/google/uuid"
)

var ErrMissingPropertyFields = errors.New("please fill all required fields: title, description, type, price, area, locality, and city")

type PropertyService struct {
	properties repository.PropertyRepository
	files      FileStore
}

func NewPropertyService(properties repository.PropertyRepository, files FileStore) *PropertyService {
	return &PropertyService{
		properties: properties,
		files:      files,
	}
}

func (s *PropertyService) List(ctx context.Context) ([]entity.Property, error) {
	return s.properties.List(ctx)
}

func (s *PropertyService) Get(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

func (s *PropertyService) Create(ctx context.Context, agentID uuid.UUID, input PropertyInput, uploads []FileUpload) (*entity.Property, error) {
	if input.Title == "" || input.Description == "" || input.PropertyType == "" ||
		input.Price == "" || input.Units == "" || input.Locality == "" || input.City == "" {
		return nil, ErrMissingPropertyFields
	}

	videoURLs, err := parseStringList(input.VideoURLs)
	if err != nil {
		return nil, err
	}
	amenities, err := parseStringList(input.Amenities)
	if err != nil {
		return nil, err
	}

	images, err := s.storeUploads(ctx, uploads)
	if err != nil {
		return nil, err
	}

	property := &entity.Property{
		Title:        input.Title,
		Description:  input.Description,
		PropertyType: input.PropertyType,
		Price:        parseFloat(input.Price, 0),
		Area:         parseFloat(input.Units, 0),
		Bedrooms:     parseInt(input.Bedrooms, 0),
		Bathrooms:    parseInt(input.Bathrooms, 0),
		Furnishing:   defaultString(input.Furnishing, "Unfurnished"),
		Possession:   defaultString(input.Possession, "Immediate"),
		BuiltYear:    parseIntPtr(input.BuiltYear),
		Location:     fmt.Sprintf("%s, %s", input.Locality, input.City),
		Locality:     input.Locality,
		City:         input.City,
		Images:       images,
		VideoURLs:    videoURLs,
		Amenities:    amenities,
		Latitude:     parseFloatPtr(input.Lat),
		Longitude:    parseFloatPtr(input.Lng),
		AgentID:      agentID,
		SubmittedBy:  input.SubmittedBy,
	}
	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Update applies the non-empty fields of input over the stored record and
// replaces the image list with the kept references plus any new uploads.
func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, input PropertyInput, uploads []FileUpload) (*entity.Property, error) {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}

	if input.Title != "" {
		property.Title = input.Title
	}
	if input.Description != "" {
		property.Description = input.Description
	}
	if input.PropertyType != "" {
		property.PropertyType = input.PropertyType
	}
	if input.Price != "" {
		property.Price = parseFloat(input.Price, property.Price)
	}
	if input.Units != "" {
		property.Area = parseFloat(input.Units, property.Area)
	}
	if input.Bedrooms != "" {
		property.Bedrooms = parseInt(input.Bedrooms, property.Bedrooms)
	}
	if input.Bathrooms != "" {
		property.Bathrooms = parseInt(input.Bathrooms, property.Bathrooms)
	}
	if input.Furnishing != "" {
		property.Furnishing = input.Furnishing
	}
	if input.Possession != "" {
		property.Possession = input.Possession
	}
	if input.BuiltYear != "" {
		property.BuiltYear = parseIntPtr(input.BuiltYear)
	}
	if input.Locality != "" {
		property.Locality = input.Locality
	}
	if input.City != "" {
		property.City = input.City
	}
	if input.Locality != "" || input.City != "" {
		property.Location = fmt.Sprintf("%s, %s", property.Locality, property.City)
	}
	if input.VideoURLs != "" {
		videoURLs, err := parseStringList(input.VideoURLs)
		if err != nil {
			return nil, err
		}
		property.VideoURLs = videoURLs
	}
	if input.Amenities != "" {
		amenities, err := parseStringList(input.Amenities)
		if err != nil {
			return nil, err
		}
		property.Amenities = amenities
	}
	if input.Lat != "" {
		property.Latitude = parseFloatPtr(input.Lat)
	}
	if input.Lng != "" {
		property.Longitude = parseFloatPtr(input.Lng)
	}
	if input.SubmittedBy != "" {
		property.SubmittedBy = input.SubmittedBy
	}

	if input.ExistingImages != nil || len(uploads) > 0 {
		newImages, err := s.storeUploads(ctx, uploads)
		if err != nil {
			return nil, err
		}
		property.Images = append(append([]string{}, input.ExistingImages...), newImages...)
	}

	if err := s.properties.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if property == nil {
		return ErrPropertyNotFound
	}
	return s.properties.Delete(ctx, property.ID)
}

func (s *PropertyService) storeUploads(ctx context.Context, uploads []FileUpload) ([]string, error) {
	names := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		name, err := s.files.Save(ctx, upload.Name, upload.Content)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func parseStringList(value string) ([]string, error) {
	if strings.TrimSpace(value) == "" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return nil, ErrInvalidInput
	}
	return list, nil
}

func defaultString(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseFloat(value string, fallback float64) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return n
}

func parseInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func parseFloatPtr(value string) *float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil
	}
	return &n
}

func parseIntPtr(value string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &n
}
