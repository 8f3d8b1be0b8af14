package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhijeet5642/propertyadded/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryPropertyRepo struct {
	mu         sync.Mutex
	properties map[uuid.UUID]*entity.Property
}

func newMemoryPropertyRepo() *memoryPropertyRepo {
	return &memoryPropertyRepo{properties: make(map[uuid.UUID]*entity.Property)}
}

func (r *memoryPropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	property.CreatedAt = time.Now()
	property.UpdatedAt = property.CreatedAt
	clone := *property
	r.properties[property.ID] = &clone
	return nil
}

func (r *memoryPropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return nil, nil
	}
	clone := *property
	return &clone, nil
}

func (r *memoryPropertyRepo) List(ctx context.Context) ([]entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	properties := make([]entity.Property, 0, len(r.properties))
	for _, property := range r.properties {
		properties = append(properties, *property)
	}
	return properties, nil
}

func (r *memoryPropertyRepo) Update(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	property.UpdatedAt = time.Now()
	clone := *property
	r.properties[property.ID] = &clone
	return nil
}

func (r *memoryPropertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.properties, id)
	return nil
}

// fakeFileStore returns a predictable stable reference per saved file.
type fakeFileStore struct {
	mu    sync.Mutex
	saved []string
}

func (s *fakeFileStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	name := fmt.Sprintf("stored-%d-%s", len(s.saved), originalName)
	s.saved = append(s.saved, name)
	return name, nil
}

func validPropertyInput() PropertyInput {
	return PropertyInput{
		Title:        "2BHK in Koramangala",
		Description:  "Bright corner flat",
		PropertyType: "Apartment",
		Price:        "7500000",
		Units:        "1150",
		Bedrooms:     "2",
		Bathrooms:    "2",
		Locality:     "Koramangala",
		City:         "Bengaluru",
		Amenities:    `["Lift","Parking"]`,
		VideoURLs:    `[]`,
		Lat:          "12.9352",
		Lng:          "77.6245",
	}
}

func upload(name, content string) FileUpload {
	return FileUpload{Name: name, Content: strings.NewReader(content)}
}

func TestCreatePropertyRequiresFields(t *testing.T) {
	svc := NewPropertyService(newMemoryPropertyRepo(), &fakeFileStore{})

	input := validPropertyInput()
	input.City = ""
	_, err := svc.Create(context.Background(), uuid.New(), input, nil)
	assert.ErrorIs(t, err, ErrMissingPropertyFields)
}

func TestCreatePropertyStoresImagesAndParsesFields(t *testing.T) {
	repo := newMemoryPropertyRepo()
	files := &fakeFileStore{}
	svc := NewPropertyService(repo, files)
	agentID := uuid.New()

	property, err := svc.Create(context.Background(), agentID, validPropertyInput(), []FileUpload{
		upload("front.jpg", "jpeg-bytes"),
		upload("kitchen.jpg", "jpeg-bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, agentID, property.AgentID)
	assert.Equal(t, 7500000.0, property.Price)
	assert.Equal(t, 1150.0, property.Area)
	assert.Equal(t, 2, property.Bedrooms)
	assert.Equal(t, "Koramangala, Bengaluru", property.Location)
	assert.Equal(t, "Unfurnished", property.Furnishing)
	assert.Equal(t, "Immediate", property.Possession)
	assert.Equal(t, []string{"Lift", "Parking"}, []string(property.Amenities))
	require.NotNil(t, property.Latitude)
	assert.InDelta(t, 12.9352, *property.Latitude, 1e-9)
	require.Len(t, property.Images, 2)
	assert.Contains(t, property.Images[0], "front.jpg")

	stored, err := svc.Get(context.Background(), property.ID)
	require.NoError(t, err)
	assert.Equal(t, property.Title, stored.Title)
}

func TestCreatePropertyLenientNumbers(t *testing.T) {
	svc := NewPropertyService(newMemoryPropertyRepo(), &fakeFileStore{})

	input := validPropertyInput()
	input.Bedrooms = ""
	input.BuiltYear = "not-a-year"
	input.Lat = ""
	input.Lng = ""
	input.Furnishing = "Semi-Furnished"

	property, err := svc.Create(context.Background(), uuid.New(), input, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, property.Bedrooms)
	assert.Nil(t, property.BuiltYear)
	assert.Nil(t, property.Latitude)
	assert.Nil(t, property.Longitude)
	// An explicit value wins over the default.
	assert.Equal(t, "Semi-Furnished", property.Furnishing)
	assert.Equal(t, "Immediate", property.Possession)
}

func TestCreatePropertyRejectsMalformedLists(t *testing.T) {
	svc := NewPropertyService(newMemoryPropertyRepo(), &fakeFileStore{})

	input := validPropertyInput()
	input.Amenities = "not json"
	_, err := svc.Create(context.Background(), uuid.New(), input, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdatePropertyMergesImages(t *testing.T) {
	repo := newMemoryPropertyRepo()
	svc := NewPropertyService(repo, &fakeFileStore{})

	property, err := svc.Create(context.Background(), uuid.New(), validPropertyInput(), []FileUpload{
		upload("a.jpg", "x"),
		upload("b.jpg", "x"),
	})
	require.NoError(t, err)

	kept := []string{property.Images[1]}
	updated, err := svc.Update(context.Background(), property.ID, PropertyInput{
		ExistingImages: kept,
	}, []FileUpload{upload("c.jpg", "x")})
	require.NoError(t, err)

	require.Len(t, updated.Images, 2)
	assert.Equal(t, kept[0], updated.Images[0])
	assert.Contains(t, updated.Images[1], "c.jpg")
}

func TestUpdatePropertyPartialFields(t *testing.T) {
	svc := NewPropertyService(newMemoryPropertyRepo(), &fakeFileStore{})

	property, err := svc.Create(context.Background(), uuid.New(), validPropertyInput(), nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), property.ID, PropertyInput{
		Price: "8000000",
		City:  "Mysuru",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 8000000.0, updated.Price)
	assert.Equal(t, "Mysuru", updated.City)
	assert.Equal(t, "Koramangala, Mysuru", updated.Location)
	// Untouched fields keep their values, images included.
	assert.Equal(t, property.Title, updated.Title)
	assert.Equal(t, property.Bedrooms, updated.Bedrooms)
	assert.Equal(t, []string(property.Images), []string(updated.Images))
}

func TestDeleteProperty(t *testing.T) {
	svc := NewPropertyService(newMemoryPropertyRepo(), &fakeFileStore{})

	property, err := svc.Create(context.Background(), uuid.New(), validPropertyInput(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), property.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), property.ID), ErrPropertyNotFound)

	_, err = svc.Get(context.Background(), property.ID)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}
