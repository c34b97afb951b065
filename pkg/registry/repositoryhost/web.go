// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gardener/docsite/pkg/internal/link"
	"github.com/gardener/docsite/pkg/osfakes/httpclient"
	"k8s.io/klog/v2"
)

type web struct {
	client httpclient.Client
}

// NewWeb creates a repository host for plain http(s) resources
func NewWeb(client httpclient.Client) Interface {
	return &web{client: client}
}

func (w *web) Name() string {
	return "web"
}

func (w *web) Accept(location string) bool {
	u, err := url.Parse(location)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (w *web) Read(ctx context.Context, location string) ([]byte, error) {
	resp, err := w.do(ctx, http.MethodGet, location)
	if err != nil {
		return nil, err
	}
	defer closeBody(location, resp.Body)
	return io.ReadAll(resp.Body)
}

func (w *web) Tree(_ context.Context, _ string) ([]string, error) {
	return nil, ErrNotImplemented
}

// LastModified returns the Last-Modified header of the resource
func (w *web) LastModified(ctx context.Context, location string) (time.Time, error) {
	resp, err := w.do(ctx, http.MethodHead, location)
	if err != nil {
		return time.Time{}, err
	}
	defer closeBody(location, resp.Body)
	lm := resp.Header.Get("Last-Modified")
	if lm == "" {
		return time.Time{}, ErrNotImplemented
	}
	return http.ParseTime(lm)
}

func (w *web) Join(location string, elem ...string) (string, error) {
	return link.Build(append([]string{location}, elem...)...)
}

func (w *web) GetClient() httpclient.Client {
	return w.client
}

func (w *web) do(ctx context.Context, method string, location string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		closeBody(location, resp.Body)
		return nil, ErrResourceNotFound(location)
	}
	if resp.StatusCode >= 400 {
		closeBody(location, resp.Body)
		return nil, fmt.Errorf("%s %s fails with HTTP status: %d", method, location, resp.StatusCode)
	}
	return resp, nil
}

func closeBody(location string, body io.ReadCloser) {
	if body == nil {
		return
	}
	if err := body.Close(); err != nil {
		klog.Warningf("closing response body of %s fails: %v", location, err)
	}
}
