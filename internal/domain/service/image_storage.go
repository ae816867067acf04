package service

import "context"

// ImageStorage stores product images and returns their public URLs.
type ImageStorage interface {
	// Upload stores data under owner (a product id) and returns the URL clients
	// should use. Uploading identical bytes for the same owner yields the same URL.
	Upload(ctx context.Context, owner, filename, contentType string, data []byte) (string, error)

	// Delete removes a previously uploaded image by URL. Unknown URLs are ignored.
	Delete(ctx context.Context, url string) error
}
