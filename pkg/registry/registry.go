// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gardener/docsite/pkg/osfakes/httpclient"
	"github.com/gardener/docsite/pkg/registry/repositoryhost"
	"k8s.io/klog/v2"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

// Interface can register and return repository hosts for a location
//
//counterfeiter:generate . Interface
type Interface interface {
	// Read a resource content at location into a byte array
	Read(ctx context.Context, location string) ([]byte, error)
	// Tree returns the markdown files under the directory at location
	Tree(ctx context.Context, location string) ([]string, error)
	// LastModified returns the time the resource at location last changed
	LastModified(ctx context.Context, location string) (time.Time, error)
	// Join appends path elements to a location
	Join(location string, elem ...string) (string, error)
	// Client returns an HTTP client for accessing the given url
	Client(url string) httpclient.Client
	// LogRateLimits logs rate limit and remaining API calls for all repository hosts
	LogRateLimits(ctx context.Context)
}

type registry struct {
	repoHosts []repositoryhost.Interface
}

// NewRegistry creates Registry object, optionally loading it with repository hosts if provided.
// Hosts are tried in order, the first one accepting a location serves it
func NewRegistry(repoHosts ...repositoryhost.Interface) Interface {
	return &registry{repoHosts: repoHosts}
}

func (r *registry) Client(url string) httpclient.Client {
	rh, err := r.acceptAnyRH(url)
	if err != nil || rh.GetClient() == nil {
		return http.DefaultClient
	}
	return rh.GetClient()
}

func (r *registry) Tree(ctx context.Context, location string) ([]string, error) {
	rh, err := r.acceptAnyRH(location)
	if err != nil {
		return nil, err
	}
	return rh.Tree(ctx, location)
}

func (r *registry) Read(ctx context.Context, location string) ([]byte, error) {
	rh, err := r.acceptAnyRH(location)
	if err != nil {
		return nil, err
	}
	return rh.Read(ctx, location)
}

func (r *registry) LastModified(ctx context.Context, location string) (time.Time, error) {
	rh, err := r.acceptAnyRH(location)
	if err != nil {
		return time.Time{}, err
	}
	return rh.LastModified(ctx, location)
}

func (r *registry) Join(location string, elem ...string) (string, error) {
	rh, err := r.acceptAnyRH(location)
	if err != nil {
		return "", err
	}
	return rh.Join(location, elem...)
}

func (r *registry) acceptAnyRH(uri string) (repositoryhost.Interface, error) {
	for _, h := range r.repoHosts {
		if h.Accept(uri) {
			return h, nil
		}
	}
	return nil, fmt.Errorf("no suitable repository host for %s", uri)
}

func (r *registry) LogRateLimits(ctx context.Context) {
	for _, repoHost := range r.repoHosts {
		rl, ok := repoHost.(repositoryhost.RateLimiter)
		if !ok {
			continue
		}
		l, rr, rt, err := rl.GetRateLimit(ctx)
		if err != nil && !errors.Is(err, repositoryhost.ErrNotImplemented) {
			klog.Warningf("Error getting RateLimit for %s: %v\n", repoHost.Name(), err)
		} else if l > 0 && rr > 0 {
			klog.Infof("%s RateLimit: %d requests per hour, Remaining: %d, Reset after: %s\n", repoHost.Name(), l, rr, time.Until(rt).Round(time.Second))
		}
	}
}
