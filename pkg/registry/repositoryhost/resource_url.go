// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/gardener/docsite/pkg/internal/link"
	"github.com/gardener/docsite/pkg/internal/must"
)

var (
	rawPrefixed       = regexp.MustCompile(`^https://([^/]+)/raw/([^/]+)/([^/]+)/([^/]+)/?([^\?#]*)(.*)$`)
	resource          = regexp.MustCompile(`^https://([^/]+)/([^/]+)/([^/]+)/(blob|tree|raw)/([^/\?#]+)/?([^\?#]*)(.*)$`)
	githubusercontent = regexp.MustCompile(`^https://raw.githubusercontent.com/([^/]+)/([^/]+)/([^/]+)/([^\?#]*)(.*)$`)
)

// IsResourceURL checks if link is a repository resource URL
func IsResourceURL(link string) bool {
	return rawPrefixed.MatchString(link) || resource.MatchString(link) || githubusercontent.MatchString(link)
}

// URL represents a repository resource url
type URL struct {
	host           string
	owner          string
	repo           string
	resourceType   string
	ref            string
	resourcePath   string
	resourceSuffix string
}

// NewResourceURL creates new resource from url as string
func NewResourceURL(resourceURL string) (*URL, error) {
	u, err := url.Parse(resourceURL)
	if err != nil {
		return nil, err
	}
	if components := githubusercontent.FindStringSubmatch(u.String()); components != nil {
		return &URL{
			host:           "github.com",
			owner:          components[1],
			repo:           components[2],
			resourceType:   "blob",
			ref:            components[3],
			resourcePath:   components[4],
			resourceSuffix: components[5],
		}, nil
	}
	if components := rawPrefixed.FindStringSubmatch(u.String()); components != nil {
		return &URL{
			host:           components[1],
			owner:          components[2],
			repo:           components[3],
			resourceType:   "raw",
			ref:            components[4],
			resourcePath:   components[5],
			resourceSuffix: components[6],
		}, nil
	}
	if components := resource.FindStringSubmatch(u.String()); components != nil {
		return &URL{
			host:           components[1],
			owner:          components[2],
			repo:           components[3],
			resourceType:   components[4],
			ref:            components[5],
			resourcePath:   strings.TrimSuffix(components[6], "/"),
			resourceSuffix: components[7],
		}, nil
	}
	return nil, fmt.Errorf("%s is not a resource URL", u.String())
}

// String returns the full url
func (r URL) String() string {
	return r.ResourceURL() + r.resourceSuffix
}

// ResourceURL returns the resource url without resource suffix
func (r URL) ResourceURL() string {
	if r.resourcePath == "" {
		return must.Succeed(link.Build("https://", r.host, r.owner, r.repo, r.resourceType, r.ref))
	}
	return must.Succeed(link.Build("https://", r.host, r.owner, r.repo, r.resourceType, r.ref, r.resourcePath))
}

// ReferenceURL returns the url of the repository tree at the resource reference
func (r URL) ReferenceURL() URL {
	return URL{
		host:         r.host,
		owner:        r.owner,
		repo:         r.repo,
		resourceType: "tree",
		ref:          r.ref,
	}
}

// Join returns the resource url with path elements appended to the
// resource path. Elements starting with / are relative to the repository root
func (r URL) Join(elem ...string) URL {
	p := r.resourcePath
	for _, e := range elem {
		if strings.HasPrefix(e, "/") {
			p = e
			continue
		}
		p = path.Join(p, e)
	}
	r.resourcePath = strings.Trim(path.Clean("/"+p), "/")
	r.resourceSuffix = ""
	return r
}

// WithType returns the resource with a different type
func (r URL) WithType(newType string) (URL, error) {
	if newType != "blob" && newType != "tree" {
		return r, fmt.Errorf("tried creating resource URL with type %s where only blob and tree types are supported", newType)
	}
	r.resourceType = newType
	return r, nil
}

// GetHost returns the host of the URL
func (r URL) GetHost() string {
	return r.host
}

// GetOwner returns the owner of the URL
func (r URL) GetOwner() string {
	return r.owner
}

// GetRepo returns the repository of the URL
func (r URL) GetRepo() string {
	return r.repo
}

// GetResourceType returns the resource type of the URL
func (r URL) GetResourceType() string {
	return r.resourceType
}

// GetRef returns the reference of the URL
func (r URL) GetRef() string {
	return r.ref
}

// GetResourcePath returns the resource path of the URL
func (r URL) GetResourcePath() string {
	return r.resourcePath
}

// GetResourceSuffix returns the resource suffix of the URL
func (r URL) GetResourceSuffix() string {
	return r.resourceSuffix
}
