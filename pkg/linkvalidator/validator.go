// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package linkvalidator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gardener/docsite/pkg/jobs"
	"github.com/gardener/docsite/pkg/osfakes/httpclient"
	"github.com/gardener/docsite/pkg/registry"
	"github.com/gardener/docsite/pkg/site"
	"k8s.io/klog/v2"
)

const requestTimeout = 5 * time.Second

// Validator checks that absolute links of a site are reachable
type Validator struct {
	registry      registry.Interface
	validated     *linkSet
	hostsToReport []string
}

// Link is an absolute link and the configuration field declaring it
type Link struct {
	Destination string
	Source      string
}

// NewValidator creates a Validator. Failed links on hostsToReport are
// returned as errors, all others are logged as warnings
func NewValidator(reg registry.Interface, hostsToReport []string) (*Validator, error) {
	if reg == nil || reflect.ValueOf(reg).IsNil() {
		return nil, errors.New("invalid argument: registry is nil")
	}
	return &Validator{
		registry: reg,
		validated: &linkSet{
			set: make(map[string]struct{}),
		},
		hostsToReport: hostsToReport,
	}, nil
}

// Validate validates a link
func (v *Validator) Validate(ctx context.Context, linkDestination string, source string) error {
	linkURL, err := url.Parse(strings.TrimSuffix(linkDestination, "/"))
	if err != nil {
		return fmt.Errorf("error when parsing link in %s : %w", source, err)
	}
	if linkURL.Scheme != "http" && linkURL.Scheme != "https" {
		return nil
	}
	// ignore sample hosts e.g. localhost
	host := linkURL.Hostname()
	if host == "localhost" || host == "127.0.0.1" {
		return nil
	}
	// unify links destination by excluding query, fragment & user info
	u := &url.URL{
		Scheme: linkURL.Scheme,
		Host:   linkURL.Host,
		Path:   linkURL.Path,
	}
	unifiedURL := u.String()
	if v.validated.exist(unifiedURL) {
		return nil
	}
	absLinkDestination := linkURL.String()
	client := v.registry.Client(absLinkDestination)

	resp, err := doValidation(ctx, http.MethodHead, absLinkDestination, client)
	if err == nil && !failed(resp) {
		v.validated.add(unifiedURL)
		return nil
	}
	// some servers do not implement HEAD, retry with GET
	if resp, err = doValidation(ctx, http.MethodGet, absLinkDestination, client); err == nil && failed(resp) {
		err = fmt.Errorf("HTTP Status %s", resp.Status)
	}
	v.validated.add(unifiedURL)
	if err == nil {
		return nil
	}
	if slices.Contains(v.hostsToReport, linkURL.Host) {
		return fmt.Errorf("failed to validate absolute link for %s from source %s: %w", linkDestination, source, err)
	}
	klog.Warningf("failed to validate absolute link for %s from source %s: %v\n", linkDestination, source, err)
	return nil
}

// ValidateNav validates the absolute links of the navbar and the sidebar
// with the given number of parallel workers
func (v *Validator) ValidateNav(ctx context.Context, cfg *site.Config, workers int, failFast bool) error {
	links := Links(cfg)
	if len(links) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	return jobs.Run(ctx, "Validator", workers, func(ctx context.Context, l Link) error {
		return v.Validate(ctx, l.Destination, l.Source)
	}, failFast, links)
}

// Links returns the http(s) links declared in the navbar, the sidebar and
// the repository link of the theme
func Links(cfg *site.Config) []Link {
	var links []Link
	if cfg == nil || cfg.ThemeConfig == nil {
		return links
	}
	var nav func(field string, items []site.NavItem)
	nav = func(field string, items []site.NavItem) {
		for i, item := range items {
			source := fmt.Sprintf("%s[%d]", field, i)
			if isHTTP(item.Link) {
				links = append(links, Link{Destination: item.Link, Source: source})
			}
			nav(source+".items", item.Items)
		}
	}
	if repo := cfg.ThemeConfig.RepoURL(); isHTTP(repo) {
		links = append(links, Link{Destination: repo, Source: "themeConfig.repo"})
	}
	nav("themeConfig.nav", cfg.ThemeConfig.Nav)
	if sidebar := cfg.ThemeConfig.Sidebar; sidebar != nil {
		for _, s := range sidebar.Sections {
			for i, g := range s.Groups {
				for _, child := range g.Children {
					if isHTTP(child.Path) {
						links = append(links, Link{Destination: child.Path, Source: fmt.Sprintf("themeConfig.sidebar[%s][%d]", s.Path, i)})
					}
				}
			}
		}
	}
	return links
}

func isHTTP(link string) bool {
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}

// authorization errors mean the link exists
func failed(resp *http.Response) bool {
	return resp.StatusCode >= 400 && resp.StatusCode != http.StatusForbidden && resp.StatusCode != http.StatusUnauthorized
}

// doValidation sends the request and retries it while the server answers
// with 429. Every attempt has its own timeout, waiting between attempts
// only ends with ctx
func doValidation(ctx context.Context, method string, target string, client httpclient.Client) (*http.Response, error) {
	intervals := []int{1, 5, 10, 20}
	resp, err := send(ctx, method, target, client)
	if err != nil {
		return resp, err
	}
	attempts := 0
	for resp.StatusCode == http.StatusTooManyRequests && attempts < len(intervals)-1 {
		klog.Warningf("Retrying request!")
		sleep := intervals[attempts] + rand.Intn(attempts+1)
		// check for Retry-After Header and overwrite sleep time
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			// support only value in seconds <= 5 min
			if after, err := strconv.Atoi(retryAfter); err == nil && after <= 5*60 {
				sleep = after
			}
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(sleep) * time.Second):
		}
		if resp, err = send(ctx, method, target, client); err != nil {
			return resp, err
		}
		attempts++
	}
	return resp, nil
}

// send performs a single attempt bounded by requestTimeout
func send(ctx context.Context, method string, target string, client httpclient.Client) (*http.Response, error) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare %s validation request: %w", method, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return resp, err
	}
	closeBody(resp)
	return resp, nil
}

func closeBody(resp *http.Response) {
	if resp.Body == nil {
		return
	}
	if err := resp.Body.Close(); err != nil {
		klog.Warning(err.Error())
	}
}

// linkSet holds link destinations that have been validated
// used to avoid redundant checks & HTTP Status 429
type linkSet struct {
	set map[string]struct{}
	mux sync.RWMutex
}

func (l *linkSet) exist(dest string) bool {
	l.mux.RLock()
	defer l.mux.RUnlock()
	_, ok := l.set[dest]
	return ok
}

func (l *linkSet) add(dest string) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.set[dest] = struct{}{}
}
