// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown_test

import (
	"testing"

	"github.com/gardener/docsite/pkg/markdown"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func TestMarkdown(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Markdown Suite")
}

var _ = Describe("ParsePage", func() {
	It("takes the title from the frontmatter", func() {
		page, err := markdown.ParsePage([]byte("---\ntitle: Clean Code\ntags: [js]\n---\n\n# Introduction\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Title).To(Equal("Clean Code"))
		Expect(page.Frontmatter).To(HaveKeyWithValue("tags", []interface{}{"js"}))
	})
	It("takes the title from the first level 1 heading", func() {
		page, err := markdown.ParsePage([]byte("Intro text\n\n# Using *Vue* in Markdown\n\n# Second\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Title).To(Equal("Using Vue in Markdown"))
	})
	It("lists the level 2 and 3 headers", func() {
		page, err := markdown.ParsePage([]byte("# Variables\n\n## Use meaningful names\n\n### Bad\n\n#### Ignored\n\n## Avoid Mental Mapping\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Headers).To(Equal([]markdown.Header{
			{Level: 2, Title: "Use meaningful names", Slug: "use-meaningful-names"},
			{Level: 3, Title: "Bad", Slug: "bad"},
			{Level: 2, Title: "Avoid Mental Mapping", Slug: "avoid-mental-mapping"},
		}))
	})
	It("has no title without heading or frontmatter", func() {
		page, err := markdown.ParsePage([]byte("just text\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Title).To(BeEmpty())
	})
	It("fails on broken frontmatter", func() {
		_, err := markdown.ParsePage([]byte("---\ntitle: [unclosed\n---\n"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = DescribeTable("TitleFromName",
	func(name string, expected string) {
		Expect(markdown.TitleFromName(name)).To(Equal(expected))
	},
	Entry("file name", "guide/using-vue.md", "Using Vue"),
	Entry("underscores", "getting_started.md", "Getting Started"),
	Entry("readme takes the directory name", "guide/README.md", "Guide"),
	Entry("directory", "error-handling/", "Error Handling"),
	Entry("root readme", "README.md", "Home"),
)

var _ = DescribeTable("Slugify",
	func(title string, expected string) {
		Expect(markdown.Slugify(title)).To(Equal(expected))
	},
	Entry("spaces", "Use meaningful names", "use-meaningful-names"),
	Entry("punctuation", "Don't add unneeded context!", "don-t-add-unneeded-context"),
	Entry("non ascii", "变量 Variables", "变量-variables"),
)
