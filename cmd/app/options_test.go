// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gardener/docsite/cmd/configuration"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"k8s.io/utils/pointer"
)

var _ = DescribeTable("settings precedence",
	func(env map[string]string, flags []string, region string, hosts []string) {
		for k, v := range env {
			Expect(os.Setenv(k, v)).To(Succeed())
			defer os.Unsetenv(k) // nolint: errcheck
		}
		c := newCommand(context.Background(), loaderFunc(func() (*configuration.Config, error) {
			return &configuration.Config{
				S3Region:      pointer.StringPtr("eu-west-1"),
				HostsToReport: []string{"github.com"},
			}, nil
		}))
		validateCmd, _, err := c.root.Find([]string{"validate"})
		Expect(err).NotTo(HaveOccurred())
		var o *options
		validateCmd.RunE = func(cmd *cobra.Command, _ []string) error {
			var err error
			o, err = c.getOptions(cmd)
			return err
		}
		c.root.SetArgs(append([]string{"validate", "-f", "testdata/site.yaml"}, flags...))
		c.root.SetOut(&bytes.Buffer{})
		c.root.SetErr(&bytes.Buffer{})
		Expect(c.root.Execute()).To(Succeed())

		Expect(o).NotTo(BeNil())
		Expect(o.S3Region).To(Equal(region))
		Expect(o.HostsToReport).To(Equal(hosts))
	},
	Entry("configuration file only", nil, nil, "eu-west-1", []string{"github.com"}),
	Entry("environment over configuration file",
		map[string]string{"DOCSITE_S3_REGION": "us-east-1", "DOCSITE_HOSTS_TO_REPORT": "gitlab.com,github.com"}, nil,
		"us-east-1", []string{"gitlab.com", "github.com"}),
	Entry("flags over environment",
		map[string]string{"DOCSITE_S3_REGION": "us-east-1", "DOCSITE_HOSTS_TO_REPORT": "gitlab.com"},
		[]string{"--s3-region", "ap-south-1", "--hosts-to-report", "bitbucket.org"},
		"ap-south-1", []string{"bitbucket.org"}),
)

var _ = Describe("build --watch", func() {
	var (
		dir      string
		manifest string
		dest     string
		cancel   context.CancelFunc
		done     chan error
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "docsite-watch")
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Mkdir(filepath.Join(dir, "manifest"), 0o755)).To(Succeed())
		manifest = filepath.Join(dir, "manifest", "site.yaml")
		dest = filepath.Join(dir, "site")
		Expect(os.WriteFile(manifest, []byte("title: first\n"), 0o644)).To(Succeed())

		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())
		c := newCommand(ctx, loaderFunc(func() (*configuration.Config, error) {
			return &configuration.Config{CacheHome: pointer.StringPtr(filepath.Join(dir, "cache"))}, nil
		}))
		c.root.SetArgs([]string{"build", "-f", manifest, "-d", dest, "--watch"})
		c.root.SetOut(io.Discard)
		c.root.SetErr(io.Discard)
		done = make(chan error, 1)
		go func() {
			defer GinkgoRecover()
			done <- c.root.Execute()
		}()
	})
	AfterEach(func() {
		cancel()
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("rebuilds when the manifest changes", func() {
		configJS := filepath.Join(dest, ".vuepress", "config.js")
		read := func() string {
			content, _ := os.ReadFile(configJS)
			return string(content)
		}
		Eventually(read, 10*time.Second, 100*time.Millisecond).Should(ContainSubstring("title: 'first'"))

		// the watcher starts after the first build, write until a change is seen
		Eventually(func() string {
			Expect(os.WriteFile(manifest, []byte("title: second\n"), 0o644)).To(Succeed())
			return read()
		}, 15*time.Second, time.Second).Should(ContainSubstring("title: 'second'"))

		cancel()
		Eventually(done, 5*time.Second).Should(Receive(BeNil()))
	})
})
