package storage

import (
	"Journal-Backend/internal/utils"
	"bytes"
	"context"
	"log"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultSignedURLTTL = 3600 * time.Second

type (
	// AwsS3 stores raw journal page images. Objects are disposable: once an
	// entry's text is persisted the image is deleted and only the database
	// record remains.
	AwsS3 interface {
		UploadBytes(key string, data []byte) error
		PresignGet(key string) (string, error)
		DeleteFile(key string) error
	}

	awsS3 struct {
		client  *s3.Client
		presign *s3.PresignClient
		bucket  string
		ttl     time.Duration
	}
)

func NewAwsS3() AwsS3 {
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(utils.GetConfig("AWS_S3_REGION")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("error loading AWS config: %v", err)
	}

	client := s3.NewFromConfig(cfg)

	ttl := defaultSignedURLTTL
	if raw := utils.GetConfig("SIGNED_URL_TTL_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	return &awsS3{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  utils.GetConfig("AWS_S3_BUCKET"),
		ttl:     ttl,
	}
}

func (s *awsS3) UploadBytes(key string, data []byte) error {
	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	return err
}

// PresignGet returns a time-limited GET url for the object. The url is not
// refreshed; callers must use it before the TTL elapses.
func (s *awsS3) PresignGet(key string) (string, error) {
	req, err := s.presign.PresignGetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *awsS3) DeleteFile(key string) error {
	_, err := s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
