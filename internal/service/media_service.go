package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alcyxob/adaptive-coach/internal/domain"
	"alcyxob/adaptive-coach/internal/repository"
	"alcyxob/adaptive-coach/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported media content type")
	ErrNotUploadOwner       = errors.New("upload does not belong to this user")
)

// UploadTicket is what the client needs to push a form-check video straight
// to object storage.
type UploadTicket struct {
	UploadID  string `json:"uploadId"`
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// MediaService manages form-check video uploads attached to workout
// completions. Files move client-to-bucket via presigned URLs; the service
// only records metadata and mints URLs.
type MediaService interface {
	RequestUpload(ctx context.Context, userID string, upload *domain.MediaUpload) (*UploadTicket, error)
	GetDownloadURL(ctx context.Context, userID, uploadID string) (string, error)
}

type mediaService struct {
	mediaRepo   repository.MediaRepository
	programRepo repository.ProgramRepository
	files       storage.FileStorage
}

// NewMediaService creates a new instance of mediaService.
func NewMediaService(mediaRepo repository.MediaRepository, programRepo repository.ProgramRepository, files storage.FileStorage) MediaService {
	return &mediaService{
		mediaRepo:   mediaRepo,
		programRepo: programRepo,
		files:       files,
	}
}

// RequestUpload validates ownership, records the upload metadata and returns
// a presigned PUT URL the client uploads the file to.
func (s *mediaService) RequestUpload(ctx context.Context, userID string, upload *domain.MediaUpload) (*UploadTicket, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(upload.ContentType, "video/") && !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, ErrUnsupportedMediaType
	}

	program, err := s.programRepo.GetByID(ctx, upload.ProgramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if program.UserID != uid {
		return nil, ErrNotProgramOwner
	}

	upload.UserID = uid
	upload.S3ObjectKey = fmt.Sprintf("form-checks/%s/week-%d/%s", upload.ProgramID.Hex(), upload.WeekNumber, uuid.NewString())

	uploadURL, err := s.files.GeneratePresignedUploadURL(ctx, upload.S3ObjectKey, upload.ContentType, 15*time.Minute)
	if err != nil {
		return nil, err
	}

	id, err := s.mediaRepo.Create(ctx, upload)
	if err != nil {
		return nil, err
	}

	return &UploadTicket{
		UploadID:  id.Hex(),
		UploadURL: uploadURL,
		ObjectKey: upload.S3ObjectKey,
	}, nil
}

// GetDownloadURL returns a short-lived GET URL for the caller's own upload.
func (s *mediaService) GetDownloadURL(ctx context.Context, userID, uploadID string) (string, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return "", err
	}
	oid, err := parseObjectID(uploadID)
	if err != nil {
		return "", err
	}

	upload, err := s.mediaRepo.GetByID(ctx, oid)
	if err != nil {
		return "", err
	}
	if upload.UserID != uid {
		return "", ErrNotUploadOwner
	}

	return s.files.GeneratePresignedDownloadURL(ctx, upload.S3ObjectKey, 15*time.Minute)
}
