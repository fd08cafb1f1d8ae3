package service

import "context"

// ImageStore defines blob storage for uploaded doodle images.
type ImageStore interface {
	// Put stores the image bytes under the given key with the given content
	// type and returns the public URL it will be served from.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
