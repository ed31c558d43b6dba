package storage

import (
	"io"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const defaultRegion = "us-west-1"

// S3FileStore stores media in a public S3 bucket, optionally fronted by a
// CDN prefix.
type S3FileStore struct {
	bucket    string
	urlPrefix string
	uploader  *s3manager.Uploader
	svc       *s3.S3
}

// NewS3FileStore connects to the given bucket. urlPrefix is the public base
// URL objects are served from (CDN or the bucket website endpoint).
func NewS3FileStore(bucket string, urlPrefix string) (*S3FileStore, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = defaultRegion
	}

	// AWS client session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	return &S3FileStore{
		bucket:    bucket,
		urlPrefix: urlPrefix,
		uploader:  s3manager.NewUploader(sess),
		svc:       s3.New(sess),
	}, nil
}

func (s *S3FileStore) Upload(key string, body io.Reader, contentType string) (string, error) {
	_, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *S3FileStore) PublicURL(key string) string {
	return PublicObjectURL(s.urlPrefix, key)
}

// CleanUp removes a stored object, used when its owning row is deleted.
func (s *S3FileStore) CleanUp(key string) error {
	_, err := s.svc.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
