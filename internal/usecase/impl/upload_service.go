package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"autohub/config"
	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/service"
	"autohub/internal/usecase"
	"autohub/internal/util"

	"github.com/pkg/errors"
)

const progressLogStep = 1 << 20

type uploadService struct {
	storage service.ObjectStorage
	maxSize int64
	logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(storage service.ObjectStorage, cfg *config.Config, logger *slog.Logger) usecase.UploadUsecase {
	var maxSize int64
	if cfg != nil && cfg.Storage != nil {
		maxSize = cfg.Storage.MaxUploadSize
	}

	return &uploadService{
		storage: storage,
		maxSize: maxSize,
		logger:  logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage stores an image and returns its public URL. Catalog folders are
// reserved for shop owners.
func (srv *uploadService) UploadImage(ctx context.Context, session *entity.Session, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	switch input.Folder {
	case usecase.UploadFolderProfiles:
	case usecase.UploadFolderShops, usecase.UploadFolderServices, usecase.UploadFolderSpareParts:
		if !session.IsShopOwner() {
			return nil, domainerrors.ErrForbidden.WrapMessage("catalog images are uploaded by shop owners")
		}
	default:
		return nil, domainerrors.ErrUploadRejected.WrapMessage("unknown upload folder " + string(input.Folder))
	}

	if srv.maxSize > 0 && input.Size > srv.maxSize {
		return nil, domainerrors.ErrUploadRejected.WrapMessage("file exceeds the " + util.FormatBytes(srv.maxSize) + " upload size limit")
	}

	logger := srv.log(ctx).With(slog.String("folder", string(input.Folder)), slog.Any("principalID", session.PrincipalID))
	var nextReport int64 = progressLogStep
	progress := func(written int64, done bool) {
		if done {
			logger.Debug("Upload committed", slog.String("size", util.FormatBytes(written)))

			return
		}
		if written >= nextReport {
			logger.Debug("Upload progress", slog.Int64("bytes", written), slog.Int64("declared", input.Size))
			nextReport = written + progressLogStep
		}
	}

	url, err := srv.storage.Upload(ctx, input.Body, input.ContentType, string(input.Folder), progress)
	if err != nil {
		logger.Warn("Upload failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upload image")
	}

	return &usecase.UploadOutput{URL: url}, nil
}

// OpenImage streams a stored image back with its content type.
func (srv *uploadService) OpenImage(ctx context.Context, key string) (io.ReadCloser, string, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if key == "" || strings.Contains(key, "..") {
		return nil, "", domainerrors.ErrNotFound.WrapMessage("invalid image key")
	}

	reader, contentType, err := srv.storage.Open(ctx, key)
	if err != nil {
		return nil, "", translateNotFound(err, service.ErrObjectNotFound, domainerrors.ErrNotFound, "failed to open image")
	}

	return reader, contentType, nil
}
