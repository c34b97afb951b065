// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/gardener/docsite/cmd/configuration"
	"github.com/gardener/docsite/pkg/version"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"k8s.io/utils/pointer"
)

type loaderFunc func() (*configuration.Config, error)

func (f loaderFunc) Load() (*configuration.Config, error) {
	return f()
}

var _ = Describe("docsite", func() {
	var (
		config *configuration.Config
		dest   string
		args   []string
		out    bytes.Buffer
		err    error
	)

	BeforeEach(func() {
		out.Reset()
		config = &configuration.Config{}
		dest, err = os.MkdirTemp("", "docsite")
		Expect(err).NotTo(HaveOccurred())
		config.CacheHome = pointer.StringPtr(filepath.Join(dest, "cache"))
	})
	AfterEach(func() {
		Expect(os.RemoveAll(dest)).To(Succeed())
	})
	JustBeforeEach(func() {
		cmd := newCommand(context.Background(), loaderFunc(func() (*configuration.Config, error) {
			return config, nil
		})).root
		cmd.SetArgs(args)
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		err = cmd.Execute()
	})

	Describe("build", func() {
		BeforeEach(func() {
			args = []string{"build", "-f", "testdata/site.yaml", "--variables", "title=JavaScript Clean Code", "-d", dest, "--docs-root", "testdata/docs"}
		})
		It("writes config.js", func() {
			Expect(err).NotTo(HaveOccurred())
			content, err := os.ReadFile(filepath.Join(dest, ".vuepress", "config.js"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(ContainSubstring("module.exports = {\n  title: 'JavaScript Clean Code',\n"))
			Expect(string(content)).To(ContainSubstring("['meta', { name: 'theme-color', content: '#3eaf7c' }],"))
		})

		When("the format is set by environment", func() {
			BeforeEach(func() {
				Expect(os.Setenv("DOCSITE_FORMAT", "yaml")).To(Succeed())
			})
			AfterEach(func() {
				Expect(os.Unsetenv("DOCSITE_FORMAT")).To(Succeed())
			})
			It("writes config.yml", func() {
				Expect(err).NotTo(HaveOccurred())
				content, err := os.ReadFile(filepath.Join(dest, ".vuepress", "config.yml"))
				Expect(err).NotTo(HaveOccurred())
				Expect(string(content)).To(ContainSubstring("title: JavaScript Clean Code\n"))
			})
		})

		When("dry run", func() {
			BeforeEach(func() {
				args = append(args, "--dry-run", "-d", "out")
			})
			It("prints the files instead of writing them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out.String()).To(HavePrefix("out\n  .vuepress\n    config.js ("))
				Expect(out.String()).To(ContainSubstring("Build finished in"))
				Expect("out").NotTo(BeAnExistingFile())
			})
		})

		When("a sidebar page is missing", func() {
			BeforeEach(func() {
				args = []string{"build", "-f", "testdata/site.yaml", "--variables", "title=t", "-d", dest, "--docs-root", filepath.Join(dest, "missing")}
			})
			It("fails", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring(`themeConfig.sidebar[/guide/][0]: page "" has no file guide/README.md`))
			})
		})

		When("the destination is not set", func() {
			BeforeEach(func() {
				args = []string{"build", "-f", "testdata/site.yaml", "--variables", "title=t"}
			})
			It("fails", func() {
				Expect(err).To(MatchError(`required flag "destination" not set`))
			})
		})

		When("the format is unknown", func() {
			BeforeEach(func() {
				args = append(args, "--format", "toml")
			})
			It("fails", func() {
				Expect(err).To(MatchError("unsupported format toml, expected js or yaml"))
			})
		})
	})

	Describe("validate", func() {
		BeforeEach(func() {
			args = []string{"validate", "-f", "testdata/site.yaml", "--variables", "title=t"}
		})
		It("accepts a valid manifest", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("testdata/site.yaml is valid\n"))
		})
		When("the manifest is invalid", func() {
			BeforeEach(func() {
				args = []string{"validate", "-f", "testdata/invalid.yaml"}
			})
			It("reports all violations", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("title must not be empty"))
				Expect(err.Error()).To(ContainSubstring("themeConfig.nav[0]: text must not be empty"))
			})
		})
		When("the manifest does not exist", func() {
			BeforeEach(func() {
				args = []string{"validate", "-f", "testdata/missing.yaml"}
			})
			It("fails", func() {
				Expect(err).To(MatchError(ContainSubstring("reading manifest testdata/missing.yaml fails")))
			})
		})
		When("the manifest is not set", func() {
			BeforeEach(func() {
				args = []string{"validate"}
			})
			It("fails", func() {
				Expect(err).To(MatchError(`required flag "manifest" not set`))
			})
		})
	})

	Describe("resolve", func() {
		BeforeEach(func() {
			args = []string{"resolve", "-f", "testdata/site.yaml", "--variables", "title=t", "--docs-root", "testdata/docs", "--workers", "2"}
		})
		It("prints the resolved pages", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal(`/guide/
└── Guide
    └── /guide/ "Guide"
        └── #getting-started "Getting Started"
nav
└── /guide/ "Guide"
unlisted
└── README.md
`))
		})
		When("workers are out of range", func() {
			BeforeEach(func() {
				args = append(args, "--workers", "0")
			})
			It("fails", func() {
				Expect(err).To(MatchError("workers must be in [1, 100], got 0"))
			})
		})
	})

	Describe("head", func() {
		BeforeEach(func() {
			args = []string{"head", "-f", "testdata/site.yaml", "--variables", "title=t"}
		})
		It("prints the head tags", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal("<meta name=\"theme-color\" content=\"#3eaf7c\"/>\n"))
		})
	})

	Describe("version", func() {
		BeforeEach(func() {
			args = []string{"version"}
		})
		It("prints the version", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out.String()).To(Equal(version.Get() + "\n"))
		})
	})
})
