// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repositoryhost

import (
	"context"
	"fmt"
	"io/fs"
	ospkg "os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gardener/docsite/pkg/git"
	"github.com/gardener/docsite/pkg/internal/link"
	"github.com/gardener/docsite/pkg/osfakes/httpclient"
	"github.com/gardener/docsite/pkg/osfakes/osshim"
	"github.com/gardener/docsite/pkg/osfakes/osshim/osshimfakes"
)

const fileScheme = "file://"

// skipped when listing a docs tree
var skipDirs = map[string]struct{}{
	".vuepress":    {},
	"node_modules": {},
	".git":         {},
}

// Local represents local files, either addressed directly by path or
// through a URL prefix mapped to a local directory
type Local struct {
	os        osshim.Os
	git       git.Git
	urlPrefix string
	localPath string
}

// NewLocalTest creates a local repository host used for testing
func NewLocalTest(fsys fs.FS, urlPrefix string, localPath string) Interface {
	os := &osshimfakes.FakeOs{}
	os.ReadFileCalls(func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	})
	os.IsNotExistCalls(func(err error) bool {
		return ospkg.IsNotExist(err)
	})
	os.IsDirCalls(func(path string) (bool, error) {
		stat, err := fs.Stat(fsys, path)
		if err != nil {
			return false, err
		}
		return stat.IsDir(), nil
	})
	os.WalkDirCalls(func(root string, fn fs.WalkDirFunc) error {
		return fs.WalkDir(fsys, root, fn)
	})
	return &Local{os: os, urlPrefix: urlPrefix, localPath: localPath}
}

// NewLocal creates a local repository host. With an empty urlPrefix it
// accepts plain paths and file:// URLs
func NewLocal(os osshim.Os, g git.Git, urlPrefix string, localPath string) Interface {
	return &Local{os: os, git: g, urlPrefix: urlPrefix, localPath: localPath}
}

// Name returns "local " + urlPrefix
func (l *Local) Name() string {
	if l.urlPrefix == "" {
		return "local"
	}
	return "local " + l.urlPrefix
}

// Accept if the link has the same url prefix as defined, or when
// no prefix is defined, if it is a path
func (l *Local) Accept(location string) bool {
	if l.urlPrefix != "" {
		rest, ok := strings.CutPrefix(location, l.urlPrefix)
		if !ok {
			return false
		}
		// the prefix has to end on a path segment boundary
		return rest == "" || strings.HasSuffix(l.urlPrefix, "/") || strings.ContainsAny(rest[:1], "/?#")
	}
	if strings.HasPrefix(location, fileScheme) {
		return true
	}
	return location != "" && !strings.Contains(location, "://")
}

// Read a resource content at location into a byte array from file system
func (l *Local) Read(_ context.Context, location string) ([]byte, error) {
	fn := l.path(location)
	cnt, err := l.os.ReadFile(fn)
	if err != nil {
		if l.os.IsNotExist(err) {
			return nil, ErrResourceNotFound(location)
		}
		if isDir, err := l.os.IsDir(fn); err == nil && isDir {
			return nil, fmt.Errorf("%s is a directory", location)
		}
		return nil, fmt.Errorf("reading file %s for %s fails: %w", fn, location, err)
	}
	return cnt, nil
}

// Tree returns the markdown files under the directory at location
func (l *Local) Tree(_ context.Context, location string) ([]string, error) {
	root := l.path(location)
	isDir, err := l.os.IsDir(root)
	if err != nil {
		if l.os.IsNotExist(err) {
			return nil, ErrResourceNotFound(location)
		}
		return nil, err
	}
	if !isDir {
		return nil, fmt.Errorf("expected a directory got %s", location)
	}
	files := []string{}
	err = l.os.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	return files, err
}

// LastModified reads the time of the last commit changing the file from its git repository
func (l *Local) LastModified(_ context.Context, location string) (time.Time, error) {
	if l.git == nil {
		return time.Time{}, ErrNotImplemented
	}
	return l.git.LastCommitTime(l.path(location))
}

// Join appends path elements to a location
func (l *Local) Join(location string, elem ...string) (string, error) {
	if l.urlPrefix != "" || strings.HasPrefix(location, fileScheme) {
		return link.Build(append([]string{location}, elem...)...)
	}
	return filepath.Join(append([]string{location}, elem...)...), nil
}

// GetClient does nothing
func (l *Local) GetClient() httpclient.Client {
	return nil
}

func (l *Local) path(location string) string {
	if l.urlPrefix != "" {
		return filepath.Join(l.localPath, filepath.FromSlash(strings.TrimPrefix(location, l.urlPrefix)))
	}
	return filepath.Clean(strings.TrimPrefix(location, fileScheme))
}
