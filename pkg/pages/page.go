// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gardener/docsite/pkg/markdown"
	"github.com/gardener/docsite/pkg/site"
)

const defaultSidebarDepth = 1

// Page is a sidebar child or navigation link resolved against the docs tree
type Page struct {
	// ID is the page identifier as declared
	ID string
	// Link is the site path the page is served at
	Link string
	// File is the markdown file path relative to the docs root
	File string
	// Location of the markdown file in its repository host
	Location string
	// Title of the page
	Title string
	// EditURL is the "edit this page" link, empty when disabled
	EditURL string
	// LastUpdated is the time the file last changed, zero when unknown
	LastUpdated time.Time
	// Headers of the page
	Headers []markdown.Header
	// Depth of the headers linked in the sidebar, 0 links none
	Depth int
	// External pages link outside of the site and are not resolved
	External bool
	// Unresolved is the reason the page could not be resolved
	Unresolved error

	// declared title of a [path, title] child
	declaredTitle string
	// nav pages link no headers
	nav bool
}

// SidebarHeaders returns the headers linked under the page in the sidebar
func (p *Page) SidebarHeaders() []markdown.Header {
	var out []markdown.Header
	for _, h := range p.Headers {
		if h.Level-1 <= p.Depth {
			out = append(out, h)
		}
	}
	return out
}

// Resolved reports whether the page file was found
func (p *Page) Resolved() bool {
	return p.External || p.Unresolved == nil
}

// Group is a resolved sidebar group
type Group struct {
	Title string
	Pages []*Page
}

// Section is a resolved sidebar section
type Section struct {
	Path   string
	Groups []Group
}

// newPage maps a page identifier of a section to the site link and the
// markdown file serving it
func newPage(sectionPath string, id string) *Page {
	p := &Page{ID: id}
	if site.IsOutbound(id) {
		p.External = true
		p.Link = id
		return p
	}
	target := id
	if !strings.HasPrefix(target, "/") {
		target = sectionPath + target
	}
	p.Link, p.File = mapLink(target)
	return p
}

// newSidebarPage creates the page of a sidebar child
func newSidebarPage(sectionPath string, child site.SidebarChild, depth int) *Page {
	p := newPage(sectionPath, child.Path)
	p.Depth = depth
	p.declaredTitle = child.Title
	if p.External {
		p.Title = child.Title
	}
	return p
}

// sidebarDepth is the header depth of a group, falling back to the theme
func sidebarDepth(theme *site.ThemeConfig, group site.SidebarGroup) int {
	switch {
	case group.SidebarDepth != nil:
		return *group.SidebarDepth
	case theme.SidebarDepth != nil:
		return *theme.SidebarDepth
	}
	return defaultSidebarDepth
}

// mapLink returns the normalized site link of a site path and the
// markdown file relative to the docs root
func mapLink(target string) (string, string) {
	if u, err := url.Parse(target); err == nil {
		target = u.Path
	}
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}
	if strings.HasSuffix(target, "/") {
		return target, strings.TrimPrefix(target+"README.md", "/")
	}
	target = strings.TrimSuffix(strings.TrimSuffix(target, ".md"), ".html")
	if strings.EqualFold(path.Base(target), "README") {
		dir := path.Dir(target)
		if dir != "/" {
			dir += "/"
		}
		return dir, strings.TrimPrefix(dir+"README.md", "/")
	}
	return target + ".html", strings.TrimPrefix(target+".md", "/")
}
