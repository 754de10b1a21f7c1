// Package models contains the data structures shared by repositories,
// services and handlers.
package models

// MediaCategory represents valid media categories, one per content area
type MediaCategory string

const (
	MediaCategorySlides        MediaCategory = "slides"
	MediaCategoryProjects      MediaCategory = "projects"
	MediaCategoryProfessionals MediaCategory = "professionals"
)

// MediaFile represents an uploaded file and its stored metadata
type MediaFile struct {
	Name        string        `json:"name" db:"name"`
	Path        string        `json:"path" db:"path"`
	ContentType string        `json:"contentType" db:"content_type"`
	Size        int64         `json:"size" db:"size"`
	Category    MediaCategory `json:"category" db:"category"`
}

// MediaDescriptor is the listing view of an uploaded file: the
// server-assigned name plus the URL path it is served from
type MediaDescriptor struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Descriptor returns the listing view of the file
func (m *MediaFile) Descriptor() MediaDescriptor {
	return MediaDescriptor{Name: m.Name, Path: m.Path}
}
