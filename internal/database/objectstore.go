package database

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diego410711/mbf-backend/internal/config"
	"github.com/sirupsen/logrus"
)

// ObjectStoreClient representa el cliente del almacenamiento de objetos
// compatible con S3 donde se archivan los PDF generados
type ObjectStoreClient struct {
	s3Client *s3.Client
	config   *config.StorageConfig
	logger   *logrus.Logger
	bucket   string
}

// NewObjectStoreClient crea una nueva instancia del cliente de almacenamiento
func NewObjectStoreClient(cfg *config.StorageConfig, logger *logrus.Logger) (*ObjectStoreClient, error) {
	// Resolver personalizado para endpoints compatibles con S3
	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               cfg.Endpoint,
			SigningRegion:     cfg.Region,
			HostnameImmutable: true,
		}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithEndpointResolverWithOptions(customResolver),
		awsconfig.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     cfg.AccessKeyID,
				SecretAccessKey: cfg.SecretAccessKey,
			},
		}),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return &ObjectStoreClient{
		s3Client: s3Client,
		config:   cfg,
		logger:   logger,
		bucket:   cfg.Bucket,
	}, nil
}

// HealthCheck verifica la conexión al almacenamiento
func (s *ObjectStoreClient) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.s3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return fmt.Errorf("error checking object storage connection: %w", err)
	}

	return nil
}

// Bucket retorna el bucket configurado para documentos
func (s *ObjectStoreClient) Bucket() string {
	return s.bucket
}

// UploadFile sube un archivo al almacenamiento
func (s *ObjectStoreClient) UploadFile(ctx context.Context, bucketName, fileName string, fileData []byte, contentType string) (string, error) {
	reader := bytes.NewReader(fileData)

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(fileName),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileData))),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading file to object storage: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.config.Endpoint, bucketName, fileName)

	s.logger.WithFields(logrus.Fields{
		"bucket": bucketName,
		"file":   fileName,
		"size":   len(fileData),
	}).Info("File uploaded to object storage")

	return url, nil
}

// DownloadFile descarga un archivo del almacenamiento
func (s *ObjectStoreClient) DownloadFile(ctx context.Context, bucketName, fileName string) ([]byte, error) {
	result, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(fileName),
	})
	if err != nil {
		return nil, fmt.Errorf("error downloading file from object storage: %w", err)
	}
	defer result.Body.Close()

	fileData, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}

	return fileData, nil
}

// DeleteFile elimina un archivo del almacenamiento
func (s *ObjectStoreClient) DeleteFile(ctx context.Context, bucketName, fileName string) error {
	_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(fileName),
	})
	if err != nil {
		return fmt.Errorf("error deleting file from object storage: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"bucket": bucketName,
		"file":   fileName,
	}).Info("File deleted from object storage")

	return nil
}

// CreateBucket crea el bucket de documentos si no existe
func (s *ObjectStoreClient) CreateBucket(ctx context.Context, bucketName string) error {
	_, err := s.s3Client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		return fmt.Errorf("error creating bucket in object storage: %w", err)
	}

	s.logger.WithField("bucket", bucketName).Info("Bucket created in object storage")
	return nil
}
