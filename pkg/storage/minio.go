package storage

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store keeps candidate document blobs in one MinIO bucket.
type Store struct {
	client *minioSDK.Client
	bucket string
}

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewStore connects to MinIO and makes sure the bucket exists.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
	client, err := minioSDK.New(opts.Endpoint, &minioSDK.Options{
		Creds:     credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure:    opts.UseSSL,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", opts.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", opts.Bucket, err)
		}
		log.Printf("Bucket created: %s", opts.Bucket)
	}
	return &Store{client: client, bucket: opts.Bucket}, nil
}

// ObjectName builds a unique key for a document upload under an assignment.
func ObjectName(assignmentID uint, fileName string) string {
	name := strings.ReplaceAll(strings.TrimSpace(fileName), "/", "_")
	return fmt.Sprintf("assignments/%d/documents/%s-%s", assignmentID, uuid.NewString(), name)
}

// Put uploads content and returns the object URL stored on the document.
func (s *Store) Put(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error) {
	if strings.TrimSpace(objectName) == "" {
		return "", fmt.Errorf("object name cannot be empty")
	}
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectName), nil
}

func (s *Store) Delete(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectName, minioSDK.RemoveObjectOptions{})
}
