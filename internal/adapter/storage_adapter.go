package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"FindThemAPI/internal/config"
	"FindThemAPI/internal/helper"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// StorageAdapter stores uploaded photos either on local disk under the
// uploads directory (served statically by the router) or in an S3 bucket,
// selected by STORAGE_MODE. Store returns the reference recorded on the
// report: a site-relative path in local mode, an absolute URL in s3 mode.
type StorageAdapter struct {
	mode         string
	uploadDir    string
	client       *s3.Client
	bucket       string
	region       string
	publicDomain string
}

func NewStorageAdapter(cfg *config.AppConfig, s3Client *s3.Client) *StorageAdapter {
	return &StorageAdapter{
		mode:         cfg.StorageMode,
		uploadDir:    cfg.StorageUpload,
		client:       s3Client,
		bucket:       cfg.S3Bucket,
		region:       cfg.S3Region,
		publicDomain: cfg.S3PublicDomain,
	}
}

func (s *StorageAdapter) Store(file *multipart.FileHeader, fileName string) (string, error) {
	opened, err := file.Open()
	if err != nil {
		return "", err
	}
	defer opened.Close()

	if s.mode == "s3" {
		// Sniff the content type from the bytes rather than trusting the
		// client-supplied part header.
		contentType, err := helper.DetectFileContentType(opened)
		if err != nil {
			contentType = file.Header.Get("Content-Type")
		}
		return s.storeS3(opened, contentType, fileName)
	}
	return s.storeLocal(opened, fileName)
}

func (s *StorageAdapter) storeLocal(reader io.Reader, fileName string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(s.uploadDir, fileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, reader); err != nil {
		return "", err
	}

	return "/" + filepath.ToSlash(filepath.Join(s.uploadDir, fileName)), nil
}

func (s *StorageAdapter) storeS3(reader io.Reader, contentType string, fileName string) (string, error) {
	if s.client == nil {
		return "", errors.New("s3 client is not initialized")
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(fileName),
		Body:        reader,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return s.publicURL(fileName), nil
}

func (s *StorageAdapter) publicURL(fileName string) string {
	if s.publicDomain != "" {
		return fmt.Sprintf("%s/%s", s.publicDomain, fileName)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, fileName)
}

// Delete removes a stored photo by file name. Used by the upload cleanup job.
func (s *StorageAdapter) Delete(fileName string) error {
	if s.mode == "s3" {
		if s.client == nil {
			return errors.New("s3 client is not initialized")
		}
		_, err := s.client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(fileName),
		})
		return err
	}
	return os.Remove(filepath.Join(s.uploadDir, fileName))
}

// UploadDir exposes the local uploads directory for the cleanup job.
func (s *StorageAdapter) UploadDir() string {
	return s.uploadDir
}

// Mode reports the configured storage mode.
func (s *StorageAdapter) Mode() string {
	return s.mode
}
