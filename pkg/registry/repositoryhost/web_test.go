// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gardener/docsite/pkg/registry/repositoryhost"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Web", func() {
	var (
		server *httptest.Server
		host   repositoryhost.Interface
		ctx    context.Context
	)
	modified := time.Date(2024, time.February, 7, 13, 11, 0, 0, time.UTC)

	BeforeEach(func() {
		ctx = context.Background()
		mux := http.NewServeMux()
		mux.HandleFunc("/site.yaml", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Last-Modified", modified.Format(http.TimeFormat))
			if r.Method == http.MethodGet {
				_, _ = w.Write([]byte("title: docs\n"))
			}
		})
		mux.HandleFunc("/broken.yaml", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		server = httptest.NewServer(mux)
		host = repositoryhost.NewWeb(server.Client())
	})
	AfterEach(func() {
		server.Close()
	})

	It("accepts http urls", func() {
		Expect(host.Accept(server.URL + "/site.yaml")).To(BeTrue())
		Expect(host.Accept("s3://bucket/site.yaml")).To(BeFalse())
		Expect(host.Accept("site.yaml")).To(BeFalse())
	})
	It("reads a resource", func() {
		content, err := host.Read(ctx, server.URL+"/site.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(Equal("title: docs\n"))
	})
	It("reports missing resources", func() {
		_, err := host.Read(ctx, server.URL+"/missing.yaml")
		Expect(repositoryhost.IsNotFound(err)).To(BeTrue())
	})
	It("fails on server errors", func() {
		_, err := host.Read(ctx, server.URL+"/broken.yaml")
		Expect(err).To(MatchError(ContainSubstring("fails with HTTP status: 500")))
	})
	It("reads the Last-Modified header", func() {
		lm, err := host.LastModified(ctx, server.URL+"/site.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(lm.Equal(modified)).To(BeTrue())
	})
	It("cannot list trees", func() {
		_, err := host.Tree(ctx, server.URL)
		Expect(err).To(Equal(repositoryhost.ErrNotImplemented))
	})
	It("joins paths", func() {
		Expect(host.Join("https://example.com/docs/", "guide", "README.md")).To(Equal("https://example.com/docs/guide/README.md"))
	})
})
