// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gardener/docsite/pkg/osfakes/httpclient"
)

//counterfeiter:generate . S3API

// S3API is the subset of the S3 client used by the s3 repository host
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type s3Host struct {
	region string

	clientOnce    sync.Once
	client        S3API
	clientInitErr error
}

// NewS3 creates a repository host for s3://bucket/key resources. The
// client is created on first use from the default AWS configuration
func NewS3(region string) Interface {
	return &s3Host{region: region}
}

// NewS3WithClient creates a repository host for s3://bucket/key resources
// using the given client
func NewS3WithClient(client S3API) Interface {
	return &s3Host{client: client}
}

func (h *s3Host) s3(ctx context.Context) (S3API, error) {
	h.clientOnce.Do(func() {
		if h.client != nil {
			return
		}
		var opts []func(*config.LoadOptions) error
		if h.region != "" {
			opts = append(opts, config.WithRegion(h.region))
		}
		cfg, err := config.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			h.clientInitErr = fmt.Errorf("failed to load AWS config: %w", err)
			return
		}
		h.client = s3.NewFromConfig(cfg)
	})
	return h.client, h.clientInitErr
}

func (h *s3Host) Name() string {
	return "s3"
}

func (h *s3Host) Accept(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

func (h *s3Host) Read(ctx context.Context, location string) ([]byte, error) {
	bucket, key, err := splitBucketURL(location)
	if err != nil {
		return nil, err
	}
	client, err := h.s3(ctx)
	if err != nil {
		return nil, err
	}
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrResourceNotFound(location)
		}
		return nil, fmt.Errorf("reading %s fails: %w", location, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func (h *s3Host) Tree(ctx context.Context, location string) ([]string, error) {
	bucket, prefix, err := splitBucketURL(location)
	if err != nil {
		return nil, err
	}
	if prefix != "" {
		prefix = strings.TrimSuffix(prefix, "/") + "/"
	}
	client, err := h.s3(ctx)
	if err != nil {
		return nil, err
	}
	files := []string{}
	input := &s3.ListObjectsV2Input{Bucket: aws.String(bucket), Prefix: aws.String(prefix)}
	for {
		out, err := client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("listing %s fails: %w", location, err)
		}
		for _, obj := range out.Contents {
			key := aws.ToString(obj.Key)
			if strings.HasSuffix(key, ".md") {
				files = append(files, strings.TrimPrefix(key, prefix))
			}
		}
		if !aws.ToBool(out.IsTruncated) {
			break
		}
		input.ContinuationToken = out.NextContinuationToken
	}
	return files, nil
}

func (h *s3Host) LastModified(ctx context.Context, location string) (time.Time, error) {
	bucket, key, err := splitBucketURL(location)
	if err != nil {
		return time.Time{}, err
	}
	client, err := h.s3(ctx)
	if err != nil {
		return time.Time{}, err
	}
	out, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return time.Time{}, ErrResourceNotFound(location)
		}
		return time.Time{}, err
	}
	return aws.ToTime(out.LastModified), nil
}

func (h *s3Host) Join(location string, elem ...string) (string, error) {
	return joinBucketURL(location, elem...)
}

func (h *s3Host) GetClient() httpclient.Client {
	return nil
}

// splitBucketURL splits scheme://bucket/key into bucket and key
func splitBucketURL(location string) (string, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", err
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("%s has no bucket", location)
	}
	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}

func joinBucketURL(location string, elem ...string) (string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	u.Path = path.Join(append([]string{"/", u.Path}, elem...)...)
	return u.String(), nil
}
