// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gardener/docsite/pkg/internal/must"
	"github.com/gardener/docsite/pkg/osfakes/httpclient"
	"github.com/google/go-github/v43/github"
	"k8s.io/klog/v2"
)

type ghc struct {
	hostName      string
	client        httpclient.Client
	git           Git
	rateLimit     RateLimitSource
	repositories  Repositories
	acceptedHosts []string

	mux sync.Mutex
	// reference tree url -> blob or tree url -> SHA
	repositoryFiles map[string]map[string]string
}

// RateLimiter is implemented by repository hosts with API rate limits
type RateLimiter interface {
	GetRateLimit(ctx context.Context) (int, int, time.Time, error)
}

//counterfeiter:generate . RateLimitSource

// RateLimitSource is an interface needed for faking
type RateLimitSource interface {
	RateLimits(ctx context.Context) (*github.RateLimits, *github.Response, error)
}

//counterfeiter:generate . Repositories

// Repositories is an interface needed for faking
type Repositories interface {
	ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error)
}

//counterfeiter:generate . Git

// Git is an interface needed for faking
type Git interface {
	GetBlobRaw(ctx context.Context, owner, repo, sha string) ([]byte, *github.Response, error)
	GetTree(ctx context.Context, owner string, repo string, sha string, recursive bool) (*github.Tree, *github.Response, error)
}

// NewGHC creates new GitHub repository host
func NewGHC(hostName string, rateLimit RateLimitSource, repositories Repositories, git Git, client httpclient.Client, acceptedHosts []string) Interface {
	return &ghc{
		hostName:        hostName,
		client:          client,
		git:             git,
		rateLimit:       rateLimit,
		repositories:    repositories,
		acceptedHosts:   acceptedHosts,
		repositoryFiles: map[string]map[string]string{},
	}
}

// loadRepository fetches the repository tree of the resource reference once
func (p *ghc) loadRepository(ctx context.Context, r *URL) (map[string]string, error) {
	refURL := r.ReferenceURL().String()
	p.mux.Lock()
	defer p.mux.Unlock()
	if files, ok := p.repositoryFiles[refURL]; ok {
		return files, nil
	}
	dirContents, resp, err := p.git.GetTree(ctx, r.GetOwner(), r.GetRepo(), r.GetRef(), true)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrResourceNotFound(refURL)
		}
		return nil, err
	}
	repoContent := map[string]string{}
	for _, entry := range dirContents.Entries {
		if strings.HasPrefix(entry.GetPath(), "node_modules") {
			continue
		}
		resource, err := r.ReferenceURL().WithType(entry.GetType())
		if err != nil {
			klog.Infof("failed processing %s when loading repository: %s. Skipping it", entry.GetPath(), err.Error())
			continue
		}
		repoContent[resource.Join(entry.GetPath()).ResourceURL()] = entry.GetSHA()
	}
	p.repositoryFiles[refURL] = repoContent
	klog.Infof("Loading reference %s with %d entries", refURL, len(repoContent))
	return repoContent, nil
}

func (p *ghc) Tree(ctx context.Context, location string) ([]string, error) {
	r, err := NewResourceURL(location)
	if err != nil {
		return nil, err
	}
	files, err := p.loadRepository(ctx, r)
	if err != nil {
		return nil, err
	}
	tree, _ := r.WithType("tree")
	if _, ok := files[tree.ResourceURL()]; !ok && r.GetResourcePath() != "" {
		if _, ok := files[must.Succeed(r.WithType("blob")).ResourceURL()]; ok {
			return nil, fmt.Errorf("expected a directory got %s", location)
		}
		return nil, ErrResourceNotFound(location)
	}
	blob, _ := r.WithType("blob")
	filter := blob.ResourceURL() + "/"
	out := []string{}
	for u := range files {
		if strings.HasSuffix(u, ".md") && strings.HasPrefix(u, filter) {
			out = append(out, strings.TrimPrefix(u, filter))
		}
	}
	return out, nil
}

func (p *ghc) Read(ctx context.Context, location string) ([]byte, error) {
	r, err := NewResourceURL(location)
	if err != nil {
		return nil, err
	}
	files, err := p.loadRepository(ctx, r)
	if err != nil {
		return nil, err
	}
	blob, _ := r.WithType("blob")
	sha, ok := files[blob.ResourceURL()]
	if !ok {
		tree, _ := r.WithType("tree")
		if _, ok := files[tree.ResourceURL()]; ok {
			return nil, fmt.Errorf("%s is a directory", location)
		}
		return nil, ErrResourceNotFound(location)
	}
	raw, resp, err := p.git.GetBlobRaw(ctx, r.GetOwner(), r.GetRepo(), sha)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrResourceNotFound(r.String())
		}
		return nil, err
	}
	if resp != nil && resp.StatusCode >= 400 {
		return nil, fmt.Errorf("reading blob %s fails with HTTP status: %d", r.String(), resp.StatusCode)
	}
	return raw, nil
}

func (p *ghc) LastModified(ctx context.Context, location string) (time.Time, error) {
	r, err := NewResourceURL(location)
	if err != nil {
		return time.Time{}, err
	}
	return lastModified(ctx, p.repositories, *r)
}

func (p *ghc) Join(location string, elem ...string) (string, error) {
	r, err := NewResourceURL(location)
	if err != nil {
		return "", err
	}
	return r.Join(elem...).ResourceURL(), nil
}

// Name returns host name
func (p *ghc) Name() string {
	return p.hostName
}

func (p *ghc) Accept(link string) bool {
	r, err := url.Parse(link)
	if err != nil || r.Scheme != "https" || !IsResourceURL(link) {
		return false
	}
	for _, h := range p.acceptedHosts {
		if h == r.Host {
			return true
		}
	}
	return false
}

func (p *ghc) GetClient() httpclient.Client {
	return p.client
}

func (p *ghc) GetRateLimit(ctx context.Context) (int, int, time.Time, error) {
	r, _, err := p.rateLimit.RateLimits(ctx)
	if err != nil {
		return -1, -1, time.Now(), err
	}
	return r.Core.Limit, r.Core.Remaining, r.Core.Reset.Time, nil
}
