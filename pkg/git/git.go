// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package git

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	gogit "github.com/go-git/go-git/v5"
)

// Git reads the history of files in local git repositories
//
//counterfeiter:generate . Git
type Git interface {
	// LastCommitTime returns the committer time of the last commit changing the file at path
	LastCommitTime(path string) (time.Time, error)
}

type repository struct {
	repository *gogit.Repository
	root       string
}

type git struct {
	// go-git repositories are not safe for concurrent use
	mux          sync.Mutex
	repositories map[string]*repository
}

// NewGit creates new git struct
func NewGit() Git {
	return &git{repositories: map[string]*repository{}}
}

// LastCommitTime finds the repository containing path and walks its log from HEAD
func (g *git) LastCommitTime(path string) (time.Time, error) {
	g.mux.Lock()
	defer g.mux.Unlock()
	abs, err := filepath.Abs(path)
	if err != nil {
		return time.Time{}, err
	}
	repo, err := g.open(filepath.Dir(abs))
	if err != nil {
		return time.Time{}, fmt.Errorf("opening git repository for %s fails: %w", path, err)
	}
	rel, err := filepath.Rel(repo.root, abs)
	if err != nil {
		return time.Time{}, err
	}
	rel = filepath.ToSlash(rel)
	head, err := repo.repository.Head()
	if err != nil {
		return time.Time{}, fmt.Errorf("reading HEAD of %s fails: %w", repo.root, err)
	}
	iter, err := repo.repository.Log(&gogit.LogOptions{From: head.Hash(), FileName: &rel})
	if err != nil {
		return time.Time{}, err
	}
	defer iter.Close()
	commit, err := iter.Next()
	if errors.Is(err, io.EOF) {
		return time.Time{}, fmt.Errorf("%s is not committed in %s", rel, repo.root)
	}
	if err != nil {
		return time.Time{}, err
	}
	return commit.Committer.When, nil
}

func (g *git) open(dir string) (*repository, error) {
	if repo, ok := g.repositories[dir]; ok {
		return repo, nil
	}
	r, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	wt, err := r.Worktree()
	if err != nil {
		return nil, err
	}
	repo := &repository{repository: r, root: wt.Filesystem.Root()}
	g.repositories[dir] = repo
	return repo, nil
}
