// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gardener/docsite/pkg/git"
	"github.com/gardener/docsite/pkg/metrics"
	"github.com/gardener/docsite/pkg/osfakes/osshim"
	"github.com/gardener/docsite/pkg/registry"
	"github.com/gardener/docsite/pkg/registry/repositoryhost"
	"github.com/google/go-github/v43/github"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/hashicorp/go-multierror"
	"github.com/peterbourgon/diskv"
	"golang.org/x/oauth2"
	"k8s.io/klog/v2"
)

// initRegistry loads the repository hosts in the order they are tried:
// resource mappings, GitHub instances, object stores, the web and the local file system
func initRegistry(o repositoryhost.InitOptions) (registry.Interface, error) {
	var errs *multierror.Error
	gitHistory := git.NewGit()
	rhs := localMappings(o.ResourceMappings, gitHistory)
	ghs, err := initGitHubHosts(o)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	rhs = append(rhs, ghs...)
	rhs = append(rhs,
		repositoryhost.NewS3(o.S3Region),
		repositoryhost.NewGCS(),
		repositoryhost.NewWeb(&http.Client{Timeout: time.Minute, Transport: metrics.InstrumentRoundTripper(nil)}),
		repositoryhost.NewLocal(&osshim.OsShim{}, gitHistory, "", ""),
	)
	return registry.NewRegistry(rhs...), errs.ErrorOrNil()
}

// localMappings are ordered by descending prefix length so the most specific mapping wins
func localMappings(mappings map[string]string, gitHistory git.Git) []repositoryhost.Interface {
	prefixes := make([]string, 0, len(mappings))
	for prefix := range mappings {
		prefixes = append(prefixes, prefix)
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})
	rhs := make([]repositoryhost.Interface, 0, len(prefixes))
	for _, prefix := range prefixes {
		rhs = append(rhs, repositoryhost.NewLocal(&osshim.OsShim{}, gitHistory, prefix, mappings[prefix]))
		klog.Infof("%s -> %s", prefix, mappings[prefix])
	}
	return rhs
}

func initGitHubHosts(o repositoryhost.InitOptions) ([]repositoryhost.Interface, error) {
	var (
		rhs  []repositoryhost.Interface
		errs *multierror.Error
	)
	hosts := make([]string, 0, len(o.Credentials))
	for host := range o.Credentials {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	for _, host := range hosts {
		instance := host
		if !strings.HasPrefix(instance, "https://") && !strings.HasPrefix(instance, "http://") {
			instance = "https://" + instance
		}
		u, err := url.Parse(instance)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("couldn't parse url: %s", instance))
			continue
		}
		cachePath := filepath.Join(o.CacheHomeDir, "diskv", u.Host)
		client, httpClient, err := buildClient(o.Credentials[host], instance, cachePath)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		rhs = append(rhs, newRepositoryHost(u.Host, client, httpClient))
	}
	return rhs, errs.ErrorOrNil()
}

func buildClient(accessToken string, host string, cachePath string) (*github.Client, *http.Client, error) {
	base := metrics.InstrumentRoundTripper(nil)
	if len(accessToken) > 0 {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		base = &oauth2.Transport{Source: ts, Base: base}
	}

	flatTransform := func(s string) []string { return []string{} }
	d := diskv.New(diskv.Options{
		BasePath:     cachePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024 * 1024,
	})

	cacheTransport := &httpcache.Transport{
		Transport:           base,
		Cache:               diskcache.NewWithDiskv(d),
		MarkCachedResponses: true,
	}
	httpClient := cacheTransport.Client()

	if host == "https://github.com" {
		return github.NewClient(httpClient), httpClient, nil
	}
	client, err := github.NewEnterpriseClient(host, "", httpClient)
	return client, httpClient, err
}

func newRepositoryHost(host string, client *github.Client, httpClient *http.Client) repositoryhost.Interface {
	rawHost := "raw." + host
	if host == "github.com" {
		rawHost = "raw.githubusercontent.com"
	}
	return repositoryhost.NewGHC(host, client, client.Repositories, client.Git, httpClient, []string{host, rawHost})
}
