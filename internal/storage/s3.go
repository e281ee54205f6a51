package storage

import (
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Provider reads exports from an S3-compatible bucket (AWS, B2, MinIO).
type S3Provider struct {
	api    *s3.S3
	bucket string
}

func (p *S3Provider) Open(name string) (io.ReadCloser, error) {
	out, err := p.api.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}
