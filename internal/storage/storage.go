package storage

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/bhanu2006-24/imdb-analysis/internal/config"
)

// New selects the dataset source backend from config.
func New(cfg *config.Config) Provider {
	if cfg.Data.Provider == "s3" {
		s3Config := &aws.Config{
			Credentials:      credentials.NewStaticCredentials(cfg.S3.KeyID, cfg.S3.AppKey, ""),
			Endpoint:         aws.String(cfg.S3.Endpoint),
			Region:           aws.String(cfg.S3.Region),
			S3ForcePathStyle: aws.Bool(true),
		}
		sess := session.Must(session.NewSession(s3Config))
		return &S3Provider{api: s3.New(sess), bucket: cfg.S3.Bucket}
	}

	// Default to the local directory for dev and single-box deploys
	return &LocalProvider{RootPath: cfg.Data.Dir}
}
