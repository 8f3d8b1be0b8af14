package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/abhijeet5642/propertyadded/api/middleware"
	"github.com/abhijeet5642/propertyadded/internal/dto"
	"github.com/abhijeet5642/propertyadded/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxPropertyImages caps the image files accepted per create or update.
const maxPropertyImages = 10

type PropertyHandler struct {
	Service *service.PropertyService
}

func NewPropertyHandler(svc *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{Service: svc}
}

func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.Service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PropertyResponsesFromEntities(properties))
}

func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusNotFound, service.ErrPropertyNotFound)
	}
	property, err := h.Service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PropertyResponseFromEntity(property))
}

func (h *PropertyHandler) Create(c echo.Context) error {
	agentID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}

	input := propertyInputFromForm(c)
	uploads, closeUploads, err := openUploads(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	defer closeUploads()

	property, err := h.Service.Create(c.Request().Context(), agentID, input, uploads)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.PropertyResponseFromEntity(property))
}

func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusNotFound, service.ErrPropertyNotFound)
	}

	input := propertyInputFromForm(c)
	uploads, closeUploads, err := openUploads(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	defer closeUploads()

	property, err := h.Service.Update(c.Request().Context(), id, input, uploads)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.PropertyResponseFromEntity(property))
}

func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusNotFound, service.ErrPropertyNotFound)
	}
	if err := h.Service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Property removed"})
}

func propertyInputFromForm(c echo.Context) service.PropertyInput {
	input := service.PropertyInput{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		PropertyType: c.FormValue("propertyType"),
		Price:        c.FormValue("price"),
		Units:        c.FormValue("units"),
		Bedrooms:     c.FormValue("bedrooms"),
		Bathrooms:    c.FormValue("bathrooms"),
		Furnishing:   c.FormValue("furnishing"),
		Possession:   c.FormValue("possession"),
		BuiltYear:    c.FormValue("builtYear"),
		Locality:     c.FormValue("locality"),
		City:         c.FormValue("city"),
		VideoURLs:    c.FormValue("videoUrls"),
		Amenities:    c.FormValue("amenities"),
		Lat:          c.FormValue("lat"),
		Lng:          c.FormValue("lng"),
		SubmittedBy:  c.FormValue("submittedBy"),
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if kept, ok := form.Value["existingImages"]; ok {
			input.ExistingImages = kept
		}
	}
	return input
}

// openUploads pulls the "images" files out of the multipart form. The
// returned closer releases every opened file and is safe to defer even
// when the request carried none.
func openUploads(c echo.Context) ([]service.FileUpload, func(), error) {
	noop := func() {}

	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, noop, nil
		}
		return nil, noop, err
	}
	files := form.File["images"]
	if len(files) > maxPropertyImages {
		return nil, noop, errors.New("too many images")
	}

	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	uploads := make([]service.FileUpload, 0, len(files))
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, noop, err
		}
		opened = append(opened, f)
		uploads = append(uploads, service.FileUpload{Name: header.Filename, Content: f})
	}
	return uploads, closeAll, nil
}
