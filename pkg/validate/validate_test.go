// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package validate_test

import (
	"testing"

	"github.com/gardener/docsite/pkg/pages"
	"github.com/gardener/docsite/pkg/registry/repositoryhost"
	"github.com/gardener/docsite/pkg/site"
	"github.com/gardener/docsite/pkg/validate"
	"github.com/hashicorp/go-multierror"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

const valid = `
title: JavaScript 整洁代码规范
description: clean code
head:
  - [meta, { name: theme-color, content: '#3eaf7c' }]
themeConfig:
  repo: yuetong3yu/js-clean-code-cn
  editLinks: true
  nav:
    - text: Github
      link: https://github.com/yuetong3yu/js-clean-code-cn
    - text: Guide
      items:
        - text: Start
          link: /guide/
        - text: Contact
          link: mailto:docs@example.com
  sidebar:
    /guide/:
      - title: Guide
        collapsable: false
        children: ['', using-vue, /guide/deploy]
plugins:
  - '@vuepress/plugin-back-to-top'
  - medium-zoom
`

func TestValidate(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Validate Suite")
}

func parse(manifest string) *site.Config {
	cfg, err := site.Parse([]byte(manifest), nil)
	Expect(err).NotTo(HaveOccurred())
	return cfg
}

var _ = Describe("Config", func() {
	It("accepts a valid configuration", func() {
		Expect(validate.Config(parse(valid))).To(Succeed())
	})

	It("rejects a nil configuration", func() {
		Expect(validate.Config(nil)).To(MatchError("site configuration is nil"))
	})

	It("reports all violations at once", func() {
		err := validate.Config(&site.Config{
			Base: "docs",
			ThemeConfig: &site.ThemeConfig{
				Nav: []site.NavItem{{Link: "/guide/"}},
			},
		})
		Expect(err).To(HaveOccurred())
		merr, ok := err.(*multierror.Error)
		Expect(ok).To(BeTrue())
		Expect(merr.Errors).To(HaveLen(3))
	})

	DescribeTable("violations",
		func(mutate func(cfg *site.Config), expected string) {
			cfg := parse(valid)
			mutate(cfg)
			err := validate.Config(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(expected))
		},
		Entry("empty title", func(cfg *site.Config) { cfg.Title = " " }, "title must not be empty"),
		Entry("base without ending slash", func(cfg *site.Config) { cfg.Base = "/docs" }, `base "/docs" must start and end with /`),
		Entry("unknown head tag", func(cfg *site.Config) { cfg.Head[0].Tag = "div" }, `head[0]: "div" is not a head tag`),
		Entry("duplicate head attribute", func(cfg *site.Config) {
			cfg.Head[0].Attributes = append(cfg.Head[0].Attributes, site.Attribute{Name: "Name", Value: "x"})
		}, "head[0]: attribute Name is declared more than once"),
		Entry("link tag without href", func(cfg *site.Config) {
			cfg.Head = []site.HeadTag{{Tag: "link", Attributes: []site.Attribute{{Name: "rel", Value: "icon"}}}}
		}, "head[0]: link tag requires attribute href"),
		Entry("base tag with blank href", func(cfg *site.Config) {
			cfg.Head = []site.HeadTag{{Tag: "base", Attributes: []site.Attribute{{Name: "HREF", Value: " "}}}}
		}, "head[0]: base tag requires attribute href"),
		Entry("empty head tag", func(cfg *site.Config) { cfg.Head = []site.HeadTag{{Tag: "script"}} }, "head[0]: script tag has neither attributes nor content"),
		Entry("edit links without repository", func(cfg *site.Config) { cfg.ThemeConfig.Repo = "" }, "themeConfig.editLinks requires themeConfig.repo or themeConfig.docsRepo"),
		Entry("repository url without host", func(cfg *site.Config) { cfg.ThemeConfig.Repo = "https:///foo" }, "themeConfig.repo: https:///foo has no host"),
		Entry("nav item without text", func(cfg *site.Config) { cfg.ThemeConfig.Nav[0].Text = "" }, "themeConfig.nav[0]: text must not be empty"),
		Entry("nav item with link and items", func(cfg *site.Config) {
			cfg.ThemeConfig.Nav[1].Link = "/guide/"
		}, "themeConfig.nav[1]: link and items are mutually exclusive"),
		Entry("nav item without target", func(cfg *site.Config) { cfg.ThemeConfig.Nav[0].Link = "" }, "themeConfig.nav[0]: either link or items must be set"),
		Entry("malformed nav link", func(cfg *site.Config) { cfg.ThemeConfig.Nav[1].Items[0].Link = "guide/%zz" }, `themeConfig.nav[1].items[0].link: parse "guide/%zz": invalid URL escape "%zz"`),
		Entry("nav link without scheme", func(cfg *site.Config) { cfg.ThemeConfig.Nav[1].Items[0].Link = "//cdn.example.com/guide" }, `themeConfig.nav[1].items[0].link: "//cdn.example.com/guide" has a host but no scheme`),
		Entry("nav link with query only", func(cfg *site.Config) { cfg.ThemeConfig.Nav[1].Items[0].Link = "?lang=en" }, `themeConfig.nav[1].items[0].link: "?lang=en" has no path`),
		Entry("nav link scheme", func(cfg *site.Config) { cfg.ThemeConfig.Nav[0].Link = "ftp://example.com" }, "themeConfig.nav[0].link: unsupported scheme ftp in ftp://example.com"),
		Entry("sidebar section path", func(cfg *site.Config) { cfg.ThemeConfig.Sidebar.Sections[0].Path = "/guide" }, "themeConfig.sidebar[/guide]: section path must start and end with /"),
		Entry("duplicate sidebar section", func(cfg *site.Config) {
			cfg.ThemeConfig.Sidebar.Sections = append(cfg.ThemeConfig.Sidebar.Sections, cfg.ThemeConfig.Sidebar.Sections[0])
		}, "themeConfig.sidebar[/guide/]: section is declared more than once"),
		Entry("group without title", func(cfg *site.Config) { cfg.ThemeConfig.Sidebar.Sections[0].Groups[0].Title = "" }, "themeConfig.sidebar[/guide/][0]: group title must not be empty"),
		Entry("negative sidebar depth", func(cfg *site.Config) {
			depth := -1
			cfg.ThemeConfig.Sidebar.Sections[0].Groups[0].SidebarDepth = &depth
		}, "themeConfig.sidebar[/guide/][0]: sidebarDepth must not be negative"),
		Entry("page outside of section", func(cfg *site.Config) {
			cfg.ThemeConfig.Sidebar.Sections[0].Groups[0].Children[2].Path = "/about"
		}, "themeConfig.sidebar[/guide/][0]: page /about is outside of the section"),
		Entry("duplicate page", func(cfg *site.Config) {
			g := &cfg.ThemeConfig.Sidebar.Sections[0].Groups[0]
			g.Children = append(g.Children, g.Children[1])
		}, `themeConfig.sidebar[/guide/][0]: page "using-vue" is listed more than once`),
		Entry("invalid plugin name", func(cfg *site.Config) { cfg.Plugins[0].Name = "Back To Top" }, `plugins[0]: "Back To Top" is not a valid plugin identifier`),
		Entry("duplicate plugin", func(cfg *site.Config) { cfg.Plugins[1].Name = cfg.Plugins[0].Name }, "plugins[1]: plugin @vuepress/plugin-back-to-top is declared more than once"),
		Entry("duplicate plugin in short form", func(cfg *site.Config) { cfg.Plugins[1].Name = "@vuepress/back-to-top" },
			"plugins[1]: plugin @vuepress/back-to-top is declared more than once (as @vuepress/plugin-back-to-top)"),
		Entry("duplicate plugin in long form", func(cfg *site.Config) {
			cfg.Plugins = append(cfg.Plugins, site.Plugin{Name: "vuepress-plugin-medium-zoom"})
		}, "plugins[2]: plugin vuepress-plugin-medium-zoom is declared more than once (as medium-zoom)"),
		Entry("duplicate scoped plugin", func(cfg *site.Config) {
			cfg.Plugins = []site.Plugin{{Name: "@org"}, {Name: "@org/vuepress-plugin"}}
		}, "plugins[1]: plugin @org/vuepress-plugin is declared more than once (as @org)"),
	)

	DescribeTable("accepted links",
		func(link string) {
			cfg := parse(valid)
			cfg.ThemeConfig.Nav[1].Items[0].Link = link
			Expect(validate.Config(cfg)).To(Succeed())
		},
		Entry("page id relative to the site root", "guide/"),
		Entry("markdown page", "guide/using-vue.md"),
		Entry("site path with anchor", "/guide/#deploy"),
		Entry("anchor only", "#top"),
		Entry("absolute url", "https://vuepress.vuejs.org/guide/"),
	)

	It("accepts plugins with distinct packages", func() {
		cfg := parse(valid)
		cfg.Plugins = []site.Plugin{{Name: "@vuepress/back-to-top"}, {Name: "back-to-top"}, {Name: "@org/back-to-top"}, {Name: "@org"}}
		Expect(validate.Config(cfg)).To(Succeed())
	})
})

var _ = DescribeTable("PluginPackage",
	func(name string, expected string) {
		Expect(validate.PluginPackage(name)).To(Equal(expected))
	},
	Entry("official short form", "@vuepress/back-to-top", "@vuepress/plugin-back-to-top"),
	Entry("official full name", "@vuepress/plugin-back-to-top", "@vuepress/plugin-back-to-top"),
	Entry("community short form", "medium-zoom", "vuepress-plugin-medium-zoom"),
	Entry("community full name", "vuepress-plugin-medium-zoom", "vuepress-plugin-medium-zoom"),
	Entry("scoped short form", "@org/zoom", "@org/vuepress-plugin-zoom"),
	Entry("scoped full name", "@org/vuepress-plugin-zoom", "@org/vuepress-plugin-zoom"),
	Entry("scope only", "@org", "@org/vuepress-plugin"),
	Entry("scoped base plugin", "@org/vuepress-plugin", "@org/vuepress-plugin"),
)

var _ = Describe("Pages", func() {
	It("accepts resolved pages", func() {
		Expect(validate.Pages(&pages.Resolved{
			Sections: []pages.Section{{Path: "/guide/", Groups: []pages.Group{{Title: "Guide", Pages: []*pages.Page{{ID: "", File: "guide/README.md"}}}}}},
		})).To(Succeed())
		Expect(validate.Pages(nil)).To(Succeed())
	})

	It("reports unresolved pages", func() {
		missing := repositoryhost.ErrResourceNotFound("docs/guide/missing.md")
		err := validate.Pages(&pages.Resolved{
			Sections: []pages.Section{{Path: "/guide/", Groups: []pages.Group{{Title: "Guide", Pages: []*pages.Page{
				{ID: "missing", File: "guide/missing.md", Unresolved: missing},
				{ID: "https://vuepress.vuejs.org", External: true},
			}}}}},
			Nav: []*pages.Page{{ID: "/about.html", File: "about.md", Unresolved: missing}},
		})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`themeConfig.sidebar[/guide/][0]: page "missing" has no file guide/missing.md`))
		Expect(err.Error()).To(ContainSubstring("themeConfig.nav: link /about.html has no file about.md"))
		Expect(err.(*multierror.Error).Errors).To(HaveLen(2))
	})
})
