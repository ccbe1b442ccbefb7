package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	gcs "cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"

	"quimica_commerce/internal/common"
	"quimica_commerce/internal/logger"
	"quimica_commerce/internal/sites"
)

// Uploader normalizes and stores per-site entity images in the storage bucket.
type Uploader struct {
	bucket      *gcs.BucketHandle
	bucketName  string
	maxFileSize int64
	normalize   NormalizeOptions
}

// NewUploader creates an Uploader over the given bucket handle.
func NewUploader(bucket *gcs.BucketHandle, bucketName string, maxFileSize int64, normalize NormalizeOptions) *Uploader {
	return &Uploader{
		bucket:      bucket,
		bucketName:  bucketName,
		maxFileSize: maxFileSize,
		normalize:   normalize,
	}
}

// PublicURL returns the public download URL for an object path.
func (u *Uploader) PublicURL(objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, objectPath)
}

// UploadSiteImages processes every images[siteN] part of a multipart form:
// size check, normalize, upload to the deterministic object path. The result
// is the previous URL map with the freshly uploaded sites replacing their
// entries; sites without a new upload keep their previous URL.
//
// The first failure aborts the whole operation naming the failing field.
// Already uploaded blobs are not rolled back, a retry overwrites them at the
// same path.
func (u *Uploader) UploadSiteImages(ctx context.Context, form *multipart.Form, category, name string, previous sites.PerSite[string]) (sites.PerSite[string], error) {
	var uploaded sites.PerSite[string]

	for fieldName, files := range form.File {
		site, ok := ParseSiteImageField(fieldName)
		if !ok || len(files) == 0 {
			continue
		}
		fileHeader := files[0]

		url, err := u.uploadOne(ctx, fileHeader, category, name, site)
		if err != nil {
			// Keep the status of validation failures (bad image, too big),
			// everything else is an upstream storage error
			code := common.ErrCodeUpstream
			status := common.StatusBadGateway
			var customErr *common.Error
			if errors.As(err, &customErr) && customErr.StatusCode < 500 {
				code = customErr.Code
				status = customErr.StatusCode
			}
			return previous, common.NewError(
				code,
				fmt.Sprintf("Upload failed for field '%s': %s", fieldName, err.Error()),
				status,
				err,
			)
		}
		uploaded.Set(site, url)
	}

	merged := previous.Merge(uploaded, func(url string) bool { return url != "" })
	return merged, nil
}

func (u *Uploader) uploadOne(ctx context.Context, fileHeader *multipart.FileHeader, category, name string, site sites.Site) (string, error) {
	if fileHeader.Size > u.maxFileSize {
		return "", common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("File exceeds the maximum size of %d bytes", u.maxFileSize),
			common.StatusBadRequest,
			nil,
		)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("cannot open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := Normalize(file, u.normalize)
	if err != nil {
		return "", err
	}

	objectPath := ObjectPath(category, name, site)
	obj := u.bucket.Object(objectPath)
	writer := obj.NewWriter(ctx)
	writer.ContentType = "image/jpeg"
	writer.PredefinedACL = "publicRead"

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish upload: %w", err)
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"object": objectPath,
		"site":   site.String(),
		"bytes":  len(data),
	}).Info("Uploaded site image")

	return u.PublicURL(objectPath), nil
}
