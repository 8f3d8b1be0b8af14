package service

import "io"

// FileUpload is one multipart image as the handler hands it over: the
// client-supplied filename plus its content stream.
type FileUpload struct {
	Name    string
	Content io.Reader
}

// PropertyInput carries the multipart text fields as submitted. Numeric
// fields stay strings here; the flow parses them leniently (empty or
// malformed values fall back to their defaults) the same way for create
// and update. VideoURLs and Amenities arrive as JSON arrays.
type PropertyInput struct {
	Title        string
	Description  string
	PropertyType string
	Price        string
	// Units is the frontend's name for the area field.
	Units       string
	Bedrooms    string
	Bathrooms   string
	Furnishing  string
	Possession  string
	BuiltYear   string
	Locality    string
	City        string
	VideoURLs   string
	Amenities   string
	Lat         string
	Lng         string
	SubmittedBy string

	// ExistingImages lists the stored references the client kept; update
	// merges them with newly uploaded files.
	ExistingImages []string
}
