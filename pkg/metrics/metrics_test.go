// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestInstrumentRoundTripper(t *testing.T) {
	before := testutil.ToFloat64(clientCounter.WithLabelValues("404", "head"))
	rt := InstrumentRoundTripper(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusNotFound, Body: io.NopCloser(strings.NewReader("")), Request: r}, nil
	}))
	req, err := http.NewRequestWithContext(context.Background(), http.MethodHead, "https://vuepress.vuejs.org/missing", nil)
	require.NoError(t, err)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, before+1, testutil.ToFloat64(clientCounter.WithLabelValues("404", "head")))
	assert.Equal(t, float64(0), testutil.ToFloat64(clientInFlightGauge))
}

func TestBuildFinished(t *testing.T) {
	success := testutil.ToFloat64(buildCounter.WithLabelValues("success"))
	failure := testutil.ToFloat64(buildCounter.WithLabelValues("failure"))
	BuildFinished(nil)
	BuildFinished(errors.New("manifest is invalid"))
	BuildFinished(nil)
	assert.Equal(t, success+2, testutil.ToFloat64(buildCounter.WithLabelValues("success")))
	assert.Equal(t, failure+1, testutil.ToFloat64(buildCounter.WithLabelValues("failure")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	BuildFinished(nil)
	recorder := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `docsite_builds_total{result="success"}`)
}

func TestServeStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, "127.0.0.1:0") }()
	cancel()
	assert.NoError(t, <-done)
}
