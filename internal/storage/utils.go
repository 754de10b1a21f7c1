package storage

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFileName generates a collision-resistant server-assigned filename
// from the current time plus the original file extension. Millisecond
// resolution keeps names unique across the single admin session that
// produces uploads; no listing check is performed.
func UniqueFileName(extension string) string {
	if extension != "" && extension[0] != '.' {
		extension = "." + extension
	}
	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), extension)
}

// extensionContentTypes maps known file extensions to content types
var extensionContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".mov":  "video/mp4",
	".avi":  "video/mp4",
	".webm": "video/webm",
	".ogg":  "video/ogg",
	".pdf":  "application/pdf",
	".txt":  "text/plain",
}

// ContentTypeByExtension derives a content type from a filename extension,
// defaulting to application/octet-stream for unrecognized extensions
func ContentTypeByExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return "application/octet-stream"
	}
	if ct, ok := extensionContentTypes[strings.ToLower(filename[idx:])]; ok {
		return ct
	}
	return "application/octet-stream"
}

// sizeWriter counts the bytes written through it
type sizeWriter struct {
	size int64
}

// NewSizeWriter creates a new size-tracking writer
func NewSizeWriter() *sizeWriter {
	return &sizeWriter{}
}

// Write implements io.Writer
func (sw *sizeWriter) Write(p []byte) (int, error) {
	sw.size += int64(len(p))
	return len(p), nil
}

// Size returns the total number of bytes written
func (sw *sizeWriter) Size() int64 {
	return sw.size
}
