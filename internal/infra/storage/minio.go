package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Archive keeps raw classifier responses in object storage so failed or
// disputed checks can be diagnosed after the fact.
type Archive struct {
	client     *minio.Client
	bucketName string
	region     string
}

// NewArchive connects to MinIO and makes sure the bucket exists.
func NewArchive(ctx context.Context, endpoint, region, bucket, accessKey, secretKey string, useSSL bool) (*Archive, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, err
	}

	exists, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, err
		}
	}

	return &Archive{client: cli, bucketName: bucket, region: region}, nil
}

// Put stores one raw response under the given key and returns its location.
func (a *Archive) Put(ctx context.Context, key, body string) (string, error) {
	r := strings.NewReader(body)
	_, err := a.client.PutObject(ctx, a.bucketName, key, r, int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", err
	}

	// Location assumes a readable bucket; private buckets need presigned URLs.
	url := fmt.Sprintf("http://%s/%s/%s", a.client.EndpointURL().Host, a.bucketName, key)
	return url, nil
}
