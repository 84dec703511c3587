package usecase

import (
	"context"
	"io"

	"autohub/internal/domain/entity"
)

// UploadFolder groups uploaded images by what they illustrate.
type UploadFolder string

const (
	UploadFolderProfiles   UploadFolder = "profiles"
	UploadFolderShops      UploadFolder = "shops"
	UploadFolderServices   UploadFolder = "services"
	UploadFolderSpareParts UploadFolder = "spare-parts"
)

// UploadInput is an image stream to store.
type UploadInput struct {
	Folder      UploadFolder
	ContentType string
	Size        int64 // Declared size, 0 when unknown.
	Body        io.Reader
}

// UploadOutput is the public location of a stored image.
type UploadOutput struct {
	URL string
}

// UploadUsecase stores images in object storage.
type UploadUsecase interface {
	UploadImage(ctx context.Context, session *entity.Session, input *UploadInput) (*UploadOutput, error)
	OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error)
}
