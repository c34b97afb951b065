// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// DefaultDocsBranch is the branch edit links point to when docsBranch is not set
	DefaultDocsBranch = "master"
	// DefaultEditLinkText is the edit link label when editLinkText is not set
	DefaultEditLinkText = "Edit this page"
)

var (
	outbound      = regexp.MustCompile(`^[a-z][a-z0-9+.-]*:`)
	endingSlashed = regexp.MustCompile(`(\.html|/)$`)
)

// IsOutbound reports whether a link points outside of the site (has a scheme)
func IsOutbound(link string) bool {
	return outbound.MatchString(link)
}

// SetDefaults fills in the theme defaults the framework would apply
func (c *Config) SetDefaults() {
	t := c.ThemeConfig
	if t == nil {
		return
	}
	if t.DocsBranch == "" {
		t.DocsBranch = DefaultDocsBranch
	}
	if t.EditLinks && t.EditLinkText == "" {
		t.EditLinkText = DefaultEditLinkText
	}
}

// RepoURL is the full URL of the repository link
func (t *ThemeConfig) RepoURL() string {
	if t == nil {
		return ""
	}
	return repoURL(t.Repo)
}

// EditURL returns the "edit this page" link for a page file path relative
// to the docs directory. It is empty when edit links are disabled
func (t *ThemeConfig) EditURL(pagePath string) string {
	if t == nil || !t.EditLinks {
		return ""
	}
	docsRepo := t.DocsRepo
	if docsRepo == "" {
		docsRepo = t.Repo
	}
	if docsRepo == "" {
		return ""
	}
	branch := t.DocsBranch
	if branch == "" {
		branch = DefaultDocsBranch
	}
	dir := ""
	if d := strings.Trim(t.DocsDir, "/"); d != "" {
		dir = d + "/"
	}
	pagePath = strings.TrimPrefix(pagePath, "/")
	base := repoURL(docsRepo)
	switch {
	case strings.Contains(docsRepo, "bitbucket.org"):
		return fmt.Sprintf("%s/src/%s/%s%s?mode=edit&spa=0&at=%s&fileviewer=file-view-default", base, branch, dir, pagePath, branch)
	case strings.Contains(docsRepo, "gitlab.com"):
		return fmt.Sprintf("%s/-/edit/%s/%s%s", base, branch, dir, pagePath)
	}
	return fmt.Sprintf("%s/edit/%s/%s%s", base, branch, dir, pagePath)
}

func repoURL(repo string) string {
	if repo == "" {
		return ""
	}
	if IsOutbound(repo) {
		return strings.TrimSuffix(repo, "/")
	}
	return "https://github.com/" + strings.Trim(repo, "/")
}

// Section returns the first section, in declaration order, whose path
// prefixes the page path
func (s *Sidebar) Section(pagePath string) (*SidebarSection, bool) {
	if s == nil || s.Auto {
		return nil, false
	}
	if !endingSlashed.MatchString(pagePath) {
		pagePath += "/"
	}
	for i := range s.Sections {
		if strings.HasPrefix(pagePath, s.Sections[i].Path) {
			return &s.Sections[i], true
		}
	}
	return nil, false
}

// External reports whether the nav item links outside of the site
func (n NavItem) External() bool {
	return IsOutbound(n.Link)
}
