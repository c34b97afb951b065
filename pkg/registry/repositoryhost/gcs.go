// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gardener/docsite/pkg/osfakes/httpclient"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"k8s.io/klog/v2"
)

type gcs struct {
	opts []option.ClientOption

	clientOnce    sync.Once
	client        *storage.Client
	clientInitErr error
}

// NewGCS creates a repository host for gs://bucket/object resources. The
// client is created on first use
func NewGCS(opts ...option.ClientOption) Interface {
	return &gcs{opts: opts}
}

func (g *gcs) storage(ctx context.Context) (*storage.Client, error) {
	g.clientOnce.Do(func() {
		client, err := storage.NewClient(ctx, g.opts...)
		if err != nil {
			g.clientInitErr = fmt.Errorf("failed to create storage client: %w", err)
			return
		}
		g.client = client
	})
	return g.client, g.clientInitErr
}

func (g *gcs) Name() string {
	return "gcs"
}

func (g *gcs) Accept(location string) bool {
	return strings.HasPrefix(location, "gs://")
}

func (g *gcs) Read(ctx context.Context, location string) ([]byte, error) {
	obj, err := g.object(ctx, location)
	if err != nil {
		return nil, err
	}
	reader, err := obj.NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, ErrResourceNotFound(location)
		}
		return nil, fmt.Errorf("reading %s fails: %w", location, err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			klog.Warningf("closing reader of %s fails: %v", location, err)
		}
	}()
	return io.ReadAll(reader)
}

func (g *gcs) Tree(ctx context.Context, location string) ([]string, error) {
	bucket, prefix, err := splitBucketURL(location)
	if err != nil {
		return nil, err
	}
	if prefix != "" {
		prefix = strings.TrimSuffix(prefix, "/") + "/"
	}
	client, err := g.storage(ctx)
	if err != nil {
		return nil, err
	}
	files := []string{}
	it := client.Bucket(bucket).Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing %s fails: %w", location, err)
		}
		if strings.HasSuffix(attrs.Name, ".md") {
			files = append(files, strings.TrimPrefix(attrs.Name, prefix))
		}
	}
	return files, nil
}

func (g *gcs) LastModified(ctx context.Context, location string) (time.Time, error) {
	obj, err := g.object(ctx, location)
	if err != nil {
		return time.Time{}, err
	}
	attrs, err := obj.Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return time.Time{}, ErrResourceNotFound(location)
		}
		return time.Time{}, err
	}
	return attrs.Updated, nil
}

func (g *gcs) Join(location string, elem ...string) (string, error) {
	return joinBucketURL(location, elem...)
}

func (g *gcs) GetClient() httpclient.Client {
	return nil
}

func (g *gcs) object(ctx context.Context, location string) (*storage.ObjectHandle, error) {
	bucket, name, err := splitBucketURL(location)
	if err != nil {
		return nil, err
	}
	client, err := g.storage(ctx)
	if err != nil {
		return nil, err
	}
	return client.Bucket(bucket).Object(name), nil
}
