// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost_test

import (
	"context"
	"embed"
	"errors"
	"path/filepath"
	"time"

	"github.com/gardener/docsite/pkg/git/gitfakes"
	"github.com/gardener/docsite/pkg/osfakes/osshim"
	"github.com/gardener/docsite/pkg/registry/repositoryhost"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

//go:embed testdata/repo/*
var repo embed.FS

var _ = Describe("Local", func() {
	Describe("mapped to a url prefix", func() {
		testRepositoryHost(repositoryhost.NewLocalTest(repo, "https://github.com/gardener/docsite/blob/master", "testdata/repo"), "https://github.com/gardener/docsite/blob/master/docs")

		It("does not accept other urls", func() {
			host := repositoryhost.NewLocalTest(repo, "https://github.com/gardener/docsite/blob/master", "testdata/repo")
			Expect(host.Accept("https://github.com/gardener/docsite/blob/master/README.md")).To(BeTrue())
			Expect(host.Accept("https://github.com/gardener/docsite/blob/master")).To(BeTrue())
			Expect(host.Accept("https://github.com/gardener/docsite/blob/master#readme")).To(BeTrue())
			Expect(host.Accept("https://github.com/gardener/docsite/blob/master-old/README.md")).To(BeFalse())
			Expect(host.Accept("https://github.com/gardener/docsite/blob/main/README.md")).To(BeFalse())
			Expect(host.Name()).To(Equal("local https://github.com/gardener/docsite/blob/master"))
		})
	})

	Describe("mapped to a docs directory", func() {
		It("stops at the path segment boundary", func() {
			host := repositoryhost.NewLocalTest(repo, "https://github.com/gardener/docsite/blob/master/docs", "testdata/repo/docs")
			Expect(host.Accept("https://github.com/gardener/docsite/blob/master/docs/README.md")).To(BeTrue())
			Expect(host.Accept("https://github.com/gardener/docsite/blob/master/docs2/README.md")).To(BeFalse())
			slashed := repositoryhost.NewLocalTest(repo, "https://github.com/gardener/docsite/blob/master/docs/", "testdata/repo/docs")
			Expect(slashed.Accept("https://github.com/gardener/docsite/blob/master/docs/README.md")).To(BeTrue())
			Expect(slashed.Accept("https://github.com/gardener/docsite/blob/master/docs2/README.md")).To(BeFalse())
		})
	})

	Describe("addressed by path", func() {
		testRepositoryHost(repositoryhost.NewLocalTest(repo, "", ""), "testdata/repo/docs")

		It("accepts paths and file urls only", func() {
			host := repositoryhost.NewLocalTest(repo, "", "")
			Expect(host.Accept("file://testdata/repo/docs/README.md")).To(BeTrue())
			Expect(host.Accept("docs/README.md")).To(BeTrue())
			Expect(host.Accept("https://github.com/gardener/docsite")).To(BeFalse())
			Expect(host.Accept("")).To(BeFalse())
		})
	})

	Describe("#LastModified", func() {
		var (
			fakeGit *gitfakes.FakeGit
			host    repositoryhost.Interface
		)
		BeforeEach(func() {
			fakeGit = &gitfakes.FakeGit{}
			host = repositoryhost.NewLocal(&osshim.OsShim{}, fakeGit, "", "")
		})

		It("reads the last commit time", func() {
			when := time.Date(2024, time.February, 7, 13, 11, 0, 0, time.UTC)
			fakeGit.LastCommitTimeReturns(when, nil)
			lm, err := host.LastModified(context.TODO(), "docs/README.md")
			Expect(err).NotTo(HaveOccurred())
			Expect(lm).To(Equal(when))
			Expect(fakeGit.LastCommitTimeArgsForCall(0)).To(Equal(filepath.Join("docs", "README.md")))
		})
		It("propagates git errors", func() {
			fakeGit.LastCommitTimeReturns(time.Time{}, errors.New("not committed"))
			_, err := host.LastModified(context.TODO(), "docs/README.md")
			Expect(err).To(MatchError("not committed"))
		})
		It("is not implemented without git", func() {
			_, err := repositoryhost.NewLocalTest(repo, "", "").LastModified(context.TODO(), "docs/README.md")
			Expect(err).To(Equal(repositoryhost.ErrNotImplemented))
		})
	})
})
