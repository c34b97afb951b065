// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost_test

import (
	"context"
	"os"

	"cloud.google.com/go/storage"
	"github.com/fullstorydev/emulators/storage/gcsemu"
	"github.com/gardener/docsite/pkg/registry/repositoryhost"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("GCS", func() {
	var (
		server *gcsemu.Server
		host   repositoryhost.Interface
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		server, err = gcsemu.NewServer("127.0.0.1:9023", gcsemu.Options{})
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Setenv("STORAGE_EMULATOR_HOST", "http://127.0.0.1:9023")).To(Succeed())

		client, err := storage.NewClient(ctx)
		Expect(err).NotTo(HaveOccurred())
		defer client.Close()
		bucket := client.Bucket("docs")
		Expect(bucket.Create(ctx, "test-project", nil)).To(Succeed())
		for name, content := range map[string]string{
			"site/site.yaml":            "title: docs\n",
			"site/docs/README.md":       "# Home\n",
			"site/docs/guide/README.md": "# Guide\n",
		} {
			w := bucket.Object(name).NewWriter(ctx)
			_, err := w.Write([]byte(content))
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Close()).To(Succeed())
		}
		host = repositoryhost.NewGCS()
	})
	AfterEach(func() {
		server.Close()
		Expect(os.Unsetenv("STORAGE_EMULATOR_HOST")).To(Succeed())
	})

	It("accepts gs urls", func() {
		Expect(host.Accept("gs://docs/site/site.yaml")).To(BeTrue())
		Expect(host.Accept("s3://docs/site/site.yaml")).To(BeFalse())
	})
	It("reads an object", func() {
		content, err := host.Read(ctx, "gs://docs/site/site.yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(Equal("title: docs\n"))
	})
	It("reports missing objects", func() {
		_, err := host.Read(ctx, "gs://docs/site/missing.yaml")
		Expect(repositoryhost.IsNotFound(err)).To(BeTrue())
	})
	It("lists the markdown objects", func() {
		tree, err := host.Tree(ctx, "gs://docs/site/docs/")
		Expect(err).NotTo(HaveOccurred())
		Expect(tree).To(ConsistOf("README.md", "guide/README.md"))
	})
	It("reads the update time", func() {
		lm, err := host.LastModified(ctx, "gs://docs/site/docs/README.md")
		Expect(err).NotTo(HaveOccurred())
		Expect(lm.IsZero()).To(BeFalse())
	})
})
