package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// 업로드 용도별 폴더. 식단 사진, 인바디 결과지, 기구 사진, 프로필 사진만 허용한다.
var allowedFolders = map[string]bool{
	"meal-photos": true,
	"body-sheets": true,
	"equipment":   true,
	"profiles":    true,
}

type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

type PresignedURLResponse struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
}

func NewS3Storage(region, bucket, accessKeyID, secretAccessKey, baseURL string) *S3Storage {
	var cfg aws.Config
	var err error

	if accessKeyID != "" && secretAccessKey != "" {
		cfg = aws.Config{
			Region: region,
			Credentials: credentials.NewStaticCredentialsProvider(
				accessKeyID,
				secretAccessKey,
				"",
			),
		}
	} else {
		// 자격 증명이 없으면 기본 체인(환경변수, ~/.aws, IAM 역할)을 따른다
		cfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(region),
		)
		if err != nil {
			cfg = aws.Config{
				Region: region,
			}
		}
	}

	return &S3Storage{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// IsAllowedFolder reports whether the upload folder is one of the known purposes
func IsAllowedFolder(folder string) bool {
	return allowedFolders[folder]
}

// GeneratePresignedUploadURL generates a pre-signed PUT URL for a direct client upload.
// Object keys are randomized so uploaded filenames never collide.
func (s *S3Storage) GeneratePresignedUploadURL(filename, contentType, folder string) (*PresignedURLResponse, error) {
	if !IsAllowedFolder(folder) {
		return nil, fmt.Errorf("upload folder %s is not allowed", folder)
	}

	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	presignClient := s3.NewPresignClient(s.client)

	presignedReq, err := presignClient.PresignPutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	var fileURL string
	if s.baseURL != "" {
		fileURL = fmt.Sprintf("%s/%s", s.baseURL, key)
	} else {
		fileURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.client.Options().Region, key)
	}

	return &PresignedURLResponse{
		UploadURL: presignedReq.URL,
		FileURL:   fileURL,
		Key:       key,
	}, nil
}

// ValidateContentType validates the content type against an allow list
func (s *S3Storage) ValidateContentType(contentType string, allowedTypes []string) error {
	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("content type %s is not allowed", contentType)
}
