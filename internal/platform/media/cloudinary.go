package media

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const uploadFolder = "expense-tracker"

// allowedImageTypes mirrors the formats the frontend's picker produces.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

type cloudinaryService struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryService creates the image upload adapter. When the
// CLOUDINARY_URL is absent the service is constructed disabled and every
// upload fails with a server error rather than failing boot.
func NewCloudinaryService(cfg *config.Config) portssvc.MediaSvcFacade {
	if cfg.CloudinaryURL == "" {
		return &cloudinaryService{}
	}
	client, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		log.Printf("Warning: invalid CLOUDINARY_URL, image upload disabled: %v\n", err)
		return &cloudinaryService{}
	}
	return &cloudinaryService{client: client}
}

var _ portssvc.MediaSvcFacade = (*cloudinaryService)(nil)

// UploadImage pushes the file to Cloudinary and returns its public URL.
// The call is fire-and-forget-with-error-surfaced: no retries.
func (s *cloudinaryService) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if s.client == nil {
		return "", apperrors.NewInternalServerError("image hosting is not configured")
	}
	if _, ok := allowedImageTypes[file.Header.Get("Content-Type")]; !ok {
		return "", fmt.Errorf("%w: only .jpeg .jpg and .png formats are allowed", apperrors.ErrValidation)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	resp, err := s.client.Upload.Upload(ctx, src, uploader.UploadParams{Folder: uploadFolder})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return resp.SecureURL, nil
}
