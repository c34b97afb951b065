// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../../license_prefix.txt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gardener/docsite/pkg/osfakes/httpclient"
)

// ErrNotImplemented is returned by repository hosts for operations
// their backend cannot serve
var ErrNotImplemented = errors.New("not implemented")

// ErrResourceNotFound indicated that a resource was not found
type ErrResourceNotFound string

// Error returns "resource r not found" error
func (e ErrResourceNotFound) Error() string {
	return fmt.Sprintf("resource %q not found", string(e))
}

// IsNotFound checks if the error is ErrResourceNotFound
func IsNotFound(err error) bool {
	var nf ErrResourceNotFound
	return errors.As(err, &nf)
}

// Interface does resource specific operations on a type of objects
// identified by a location that it accepts to handle
//
//counterfeiter:generate . Interface
type Interface interface {
	// Name of repository host
	Name() string
	// Accept reports whether this repository host can manage the resource at location
	Accept(location string) bool
	// Read a resource content at location into a byte array
	Read(ctx context.Context, location string) ([]byte, error)
	// Tree returns the paths, relative to location, of the markdown files under location
	Tree(ctx context.Context, location string) ([]string, error)
	// LastModified returns the time of the last commit changing the resource at location
	LastModified(ctx context.Context, location string) (time.Time, error)
	// Join appends path elements to a location
	Join(location string, elem ...string) (string, error)
	// GetClient returns an HTTP client for accessing the host's resources
	GetClient() httpclient.Client
}

// InitOptions options for the repository hosts
type InitOptions struct {
	CacheHomeDir     string            `mapstructure:"cache-dir"`
	Credentials      map[string]string `mapstructure:"github-oauth-token-map"`
	ResourceMappings map[string]string `mapstructure:"resource-mappings"`
	S3Region         string            `mapstructure:"s3-region"`
}
