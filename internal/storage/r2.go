// Package storage keeps generated documents in Cloudflare R2 through the S3 API.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	urlExpiry       = time.Hour
	attempts        = 3
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type Client struct {
	s3      *s3.Client
	presign *s3.PresignClient
	bucket  string
	logger  *zap.Logger
}

func NewR2(ctx context.Context, cfg R2Config, logger *zap.Logger) (*Client, error) {
	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
	})
	return &Client{
		s3:      client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		logger:  logger,
	}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename replaces spaces with underscores and drops every other
// character outside [a-zA-Z0-9._-].
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, " ", "_")
	return unsafeFilenameChars.ReplaceAllString(filename, "")
}

// ObjectKey is the storage path of a user's document.
func ObjectKey(userID, filename string) string {
	return userID + "/" + SanitizeFilename(filename)
}

// UniqueName inserts a short random suffix before the extension of name,
// turning cover_letter.docx into cover_letter-1a2b3c4d.docx.
func UniqueName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "-" + uuid.NewString()[:8] + ext
}

// Upload stores the file at localPath under the user's prefix, replacing any
// object with the same name, and returns its key.
func (c *Client) Upload(ctx context.Context, localPath, logicalName, userID string) (string, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", localPath, err)
	}
	key := ObjectKey(userID, logicalName)

	_, err = retry(ctx, attempts, func() (*s3.PutObjectOutput, error) {
		return c.s3.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(c.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(docxContentType),
		})
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	c.logger.Info("document uploaded", zap.String("key", key), zap.Int("bytes", len(data)))
	return key, nil
}

// DownloadURL returns a presigned GET URL valid for one hour.
func (c *Client) DownloadURL(ctx context.Context, key string) (string, error) {
	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(urlExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return req.URL, nil
}

// Download fetches the object stored under key.
func (c *Client) Download(ctx context.Context, key string) ([]byte, error) {
	return retry(ctx, attempts, func() ([]byte, error) {
		out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(c.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get object: %w", err)
		}
		defer out.Body.Close()

		buf := new(bytes.Buffer)
		if _, err := io.Copy(buf, out.Body); err != nil {
			return nil, fmt.Errorf("failed to read object body: %w", err)
		}
		return buf.Bytes(), nil
	})
}

func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
