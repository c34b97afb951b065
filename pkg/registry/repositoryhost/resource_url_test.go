// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost_test

import (
	"github.com/gardener/docsite/pkg/registry/repositoryhost"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("URL", func() {
	var (
		r   *repositoryhost.URL
		err error
	)

	Describe("anchors with /", func() {
		BeforeEach(func() {
			r, err = repositoryhost.NewResourceURL("https://github.com/owner/repo/blob/master/docs/dev/local_setup.md#foo/bar")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should build resource.URL correctly", func() {
			Expect(r.ResourceURL()).To(Equal("https://github.com/owner/repo/blob/master/docs/dev/local_setup.md"))
			Expect(r.GetResourceSuffix()).To(Equal("#foo/bar"))
			Expect(r.String()).To(Equal("https://github.com/owner/repo/blob/master/docs/dev/local_setup.md#foo/bar"))
		})
	})

	DescribeTable("parsing",
		func(location string, host, owner, repo, resourceType, ref, resourcePath string) {
			r, err := repositoryhost.NewResourceURL(location)
			Expect(err).NotTo(HaveOccurred())
			Expect([]string{r.GetHost(), r.GetOwner(), r.GetRepo(), r.GetResourceType(), r.GetRef(), r.GetResourcePath()}).
				To(Equal([]string{host, owner, repo, resourceType, ref, resourcePath}))
		},
		Entry("blob", "https://github.com/owner/repo/blob/master/docs/README.md", "github.com", "owner", "repo", "blob", "master", "docs/README.md"),
		Entry("tree with trailing slash", "https://github.com/owner/repo/tree/main/docs/", "github.com", "owner", "repo", "tree", "main", "docs"),
		Entry("repository root", "https://github.com/owner/repo/tree/main", "github.com", "owner", "repo", "tree", "main", ""),
		Entry("enterprise host", "https://github.example.com/owner/repo/blob/v1/a.md", "github.example.com", "owner", "repo", "blob", "v1", "a.md"),
		Entry("raw prefixed", "https://github.com/raw/owner/repo/master/images/logo.png", "github.com", "owner", "repo", "raw", "master", "images/logo.png"),
		Entry("githubusercontent", "https://raw.githubusercontent.com/owner/repo/master/images/logo.png", "github.com", "owner", "repo", "blob", "master", "images/logo.png"),
	)

	It("rejects other urls", func() {
		_, err := repositoryhost.NewResourceURL("https://github.com/owner/repo")
		Expect(err).To(MatchError("https://github.com/owner/repo is not a resource URL"))
		Expect(repositoryhost.IsResourceURL("https://github.com/owner/repo/pulls")).To(BeFalse())
	})

	Describe("#Join", func() {
		BeforeEach(func() {
			r, err = repositoryhost.NewResourceURL("https://github.com/owner/repo/tree/master/docs/dev?plain=1")
			Expect(err).NotTo(HaveOccurred())
		})

		It("appends relative elements", func() {
			Expect(r.Join("user", "getting_started.md").String()).To(Equal("https://github.com/owner/repo/tree/master/docs/dev/user/getting_started.md"))
		})
		It("resolves parent elements", func() {
			Expect(r.Join("../user/").ResourceURL()).To(Equal("https://github.com/owner/repo/tree/master/docs/user"))
		})
		It("does not climb above the repository root", func() {
			Expect(r.Join("../../../..").ResourceURL()).To(Equal("https://github.com/owner/repo/tree/master"))
		})
		It("restarts at the repository root", func() {
			Expect(r.Join("/pkg", "main.go").ResourceURL()).To(Equal("https://github.com/owner/repo/tree/master/pkg/main.go"))
		})
	})

	It("changes the resource type", func() {
		r, err = repositoryhost.NewResourceURL("https://github.com/owner/repo/tree/master/docs")
		Expect(err).NotTo(HaveOccurred())
		blob, err := r.WithType("blob")
		Expect(err).NotTo(HaveOccurred())
		Expect(blob.String()).To(Equal("https://github.com/owner/repo/blob/master/docs"))
		_, err = r.WithType("commit")
		Expect(err).To(HaveOccurred())
	})
})
