package services

import (
	"context"
	"mime/multipart"
)

// MediaSvcFacade uploads an image and eventually yields a public URL or a
// failure. Uploads are not retried and not cancellable mid-flight.
type MediaSvcFacade interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}
