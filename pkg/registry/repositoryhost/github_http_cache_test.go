// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gardener/docsite/pkg/osfakes/httpclient"
	"github.com/gardener/docsite/pkg/registry/repositoryhost"
	"github.com/gardener/docsite/pkg/registry/repositoryhost/repositoryhostfakes"
	"github.com/google/go-github/v43/github"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Github cache test", func() {
	var (
		client       httpclient.Client
		rls          repositoryhostfakes.FakeRateLimitSource
		repositories repositoryhostfakes.FakeRepositories
		git          repositoryhostfakes.FakeGit
	)

	blobs := map[string]string{
		"1": "# Home\n",
		"3": "# Guide\n",
		"4": "# Using Vue in Markdown\n",
	}
	git.GetBlobRawCalls(func(ctx context.Context, owner, repo, sha string) ([]byte, *github.Response, error) {
		if content, ok := blobs[sha]; ok {
			return []byte(content), nil, nil
		}
		githubResp := &github.Response{Response: &http.Response{StatusCode: http.StatusNotFound}}
		return nil, githubResp, errors.New("not found")
	})
	tree := github.Tree{
		Entries: []*github.TreeEntry{
			{Path: github.String("Makefile"), Type: github.String("blob"), SHA: github.String("0")},
			{Path: github.String("docs"), Type: github.String("tree"), SHA: github.String("5")},
			{Path: github.String("docs/README.md"), Type: github.String("blob"), SHA: github.String("1")},
			{Path: github.String("docs/site.yaml"), Type: github.String("blob"), SHA: github.String("2")},
			{Path: github.String("docs/guide"), Type: github.String("tree"), SHA: github.String("6")},
			{Path: github.String("docs/guide/README.md"), Type: github.String("blob"), SHA: github.String("3")},
			{Path: github.String("docs/guide/using-vue.md"), Type: github.String("blob"), SHA: github.String("4")},
			{Path: github.String("node_modules/vuepress/README.md"), Type: github.String("blob"), SHA: github.String("7")},
			{Path: github.String("docs/modules"), Type: github.String("commit"), SHA: github.String("8")},
		},
	}
	git.GetTreeReturns(&tree, nil, nil)
	ghc := repositoryhost.NewGHC("testing", &rls, &repositories, &git, client, []string{"github.com"})

	testRepositoryHost(ghc, "https://github.com/gardener/docsite/tree/master/docs")

	It("loads the repository tree once", func() {
		_, err := ghc.Read(context.TODO(), "https://github.com/gardener/docsite/blob/master/docs/README.md")
		Expect(err).NotTo(HaveOccurred())
		Expect(git.GetTreeCallCount()).To(Equal(1))
		_, owner, repo, ref, recursive := git.GetTreeArgsForCall(0)
		Expect([]string{owner, repo, ref}).To(Equal([]string{"gardener", "docsite", "master"}))
		Expect(recursive).To(BeTrue())
	})

	It("reads raw urls", func() {
		content, err := ghc.Read(context.TODO(), "https://raw.githubusercontent.com/gardener/docsite/master/docs/README.md")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(Equal("# Home\n"))
	})

	It("skips node_modules", func() {
		_, err := ghc.Read(context.TODO(), "https://github.com/gardener/docsite/blob/master/node_modules/vuepress/README.md")
		Expect(repositoryhost.IsNotFound(err)).To(BeTrue())
	})

	It("reports a missing blob", func() {
		_, err := ghc.Read(context.TODO(), "https://github.com/gardener/docsite/blob/master/Makefile")
		Expect(err).To(Equal(repositoryhost.ErrResourceNotFound("https://github.com/gardener/docsite/blob/master/Makefile")))
	})

	Describe("#Accept", func() {
		It("accepts resource urls of the accepted hosts", func() {
			Expect(ghc.Accept("https://github.com/gardener/docsite/blob/master/README.md")).To(BeTrue())
			Expect(ghc.Accept("https://github.com/gardener/docsite")).To(BeFalse())
			Expect(ghc.Accept("http://github.com/gardener/docsite/blob/master/README.md")).To(BeFalse())
			Expect(ghc.Accept("https://gitlab.com/gardener/docsite/blob/master/README.md")).To(BeFalse())
		})
	})

	Describe("#GetRateLimit", func() {
		It("returns the rate limit error", func() {
			rls.RateLimitsReturns(nil, nil, errors.New("yataa error"))
			_, _, _, err := ghc.(repositoryhost.RateLimiter).GetRateLimit(context.TODO())
			Expect(err).To(Equal(errors.New("yataa error")))
		})
		It("returns the core rate limit", func() {
			reset := time.Date(2024, time.February, 7, 13, 11, 0, 0, time.UTC)
			rls.RateLimitsReturns(&github.RateLimits{Core: &github.Rate{Limit: 5000, Remaining: 42, Reset: github.Timestamp{Time: reset}}}, nil, nil)
			limit, remaining, resetAt, err := ghc.(repositoryhost.RateLimiter).GetRateLimit(context.TODO())
			Expect(err).NotTo(HaveOccurred())
			Expect(limit).To(Equal(5000))
			Expect(remaining).To(Equal(42))
			Expect(resetAt).To(Equal(reset))
		})
	})

	Describe("#LastModified", func() {
		var (
			time1 = time.Date(2024, time.February, 6, 13, 11, 0, 0, time.UTC)
			time2 = time.Date(2024, time.February, 7, 13, 11, 0, 0, time.UTC)
			time3 = time.Date(2024, time.February, 8, 13, 11, 0, 0, time.UTC)
		)
		commit := func(message string, date time.Time) *github.RepositoryCommit {
			d := date
			return &github.RepositoryCommit{Commit: &github.Commit{
				Message:   github.String(message),
				Committer: &github.CommitAuthor{Date: &d, Email: github.String("one@example.com")},
			}}
		}

		It("returns the latest non internal commit", func() {
			repositories.ListCommitsReturns([]*github.RepositoryCommit{
				commit("[skip ci] bump", time3),
				commit("Update guide", time2),
				commit("Add guide", time1),
			}, nil, nil)
			lm, err := ghc.LastModified(context.TODO(), "https://github.com/gardener/docsite/blob/master/docs/guide/README.md")
			Expect(err).NotTo(HaveOccurred())
			Expect(lm).To(Equal(time2))
			_, owner, repo, opts := repositories.ListCommitsArgsForCall(repositories.ListCommitsCallCount() - 1)
			Expect(owner).To(Equal("gardener"))
			Expect(repo).To(Equal("docsite"))
			Expect(opts.Path).To(Equal("docs/guide/README.md"))
			Expect(opts.SHA).To(Equal("master"))
		})
		It("reports resources without commits", func() {
			repositories.ListCommitsReturns([]*github.RepositoryCommit{}, nil, nil)
			_, err := ghc.LastModified(context.TODO(), "https://github.com/gardener/docsite/blob/master/docs/new.md")
			Expect(repositoryhost.IsNotFound(err)).To(BeTrue())
		})
		It("fails on HTTP errors", func() {
			repositories.ListCommitsReturns(nil, &github.Response{Response: &http.Response{StatusCode: http.StatusForbidden}}, nil)
			_, err := ghc.LastModified(context.TODO(), "https://github.com/gardener/docsite/blob/master/docs/README.md")
			Expect(err).To(MatchError(ContainSubstring("fails with HTTP status: 403")))
		})
	})
})
