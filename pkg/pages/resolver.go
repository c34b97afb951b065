// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/gardener/docsite/pkg/jobs"
	"github.com/gardener/docsite/pkg/markdown"
	"github.com/gardener/docsite/pkg/registry"
	"github.com/gardener/docsite/pkg/registry/repositoryhost"
	"github.com/gardener/docsite/pkg/site"
	"k8s.io/klog/v2"
)

// Resolver resolves the sidebar pages and navigation links of a site
// against its docs tree
type Resolver struct {
	// Registry serves the docs tree
	Registry registry.Interface
	// DocsRoot is the location of the docs directory
	DocsRoot string
	// Workers is the number of pages resolved in parallel
	Workers int
	// FailFast stops resolving on the first error
	FailFast bool
}

// Resolve reads every page the site configuration links to. Missing pages
// are reported as unresolved, other failures as errors
func (r *Resolver) Resolve(ctx context.Context, cfg *site.Config) (*Resolved, error) {
	resolved := &Resolved{}
	theme := cfg.ThemeConfig
	if theme == nil {
		return resolved, nil
	}
	var all []*Page
	if theme.Sidebar != nil {
		for _, s := range theme.Sidebar.Sections {
			section := Section{Path: s.Path}
			for _, g := range s.Groups {
				group := Group{Title: g.Title}
				for _, child := range g.Children {
					p := newSidebarPage(s.Path, child, sidebarDepth(theme, g))
					group.Pages = append(group.Pages, p)
					all = append(all, p)
				}
				section.Groups = append(section.Groups, group)
			}
			resolved.Sections = append(resolved.Sections, section)
		}
	}
	var navPages func(items []site.NavItem)
	navPages = func(items []site.NavItem) {
		for _, item := range items {
			if item.Link != "" && !item.External() {
				p := newPage("/", item.Link)
				p.nav = true
				resolved.Nav = append(resolved.Nav, p)
				all = append(all, p)
			}
			navPages(item.Items)
		}
	}
	navPages(theme.Nav)

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	err := jobs.Run(ctx, "Pages", workers, func(ctx context.Context, p *Page) error {
		return r.resolve(ctx, theme, p)
	}, r.FailFast, all)
	if err != nil {
		return resolved, err
	}
	resolved.Unlisted, err = r.unlisted(ctx, resolved)
	return resolved, err
}

// unlisted returns the markdown files of the docs tree no sidebar child or
// navigation link points to
func (r *Resolver) unlisted(ctx context.Context, resolved *Resolved) ([]string, error) {
	files, err := r.Registry.Tree(ctx, r.DocsRoot)
	if err != nil {
		if errors.Is(err, repositoryhost.ErrNotImplemented) || repositoryhost.IsNotFound(err) {
			klog.V(6).Infof("docs root %s cannot be listed: %v", r.DocsRoot, err)
			return nil, nil
		}
		return nil, fmt.Errorf("listing docs root %s fails: %w", r.DocsRoot, err)
	}
	listed := map[string]struct{}{}
	for _, p := range resolved.Pages() {
		if !p.External {
			listed[p.File] = struct{}{}
		}
	}
	var out []string
	for _, f := range files {
		if _, ok := listed[f]; !ok {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *Resolver) resolve(ctx context.Context, theme *site.ThemeConfig, p *Page) error {
	if p.External {
		return nil
	}
	location, err := r.Registry.Join(r.DocsRoot, p.File)
	if err != nil {
		return fmt.Errorf("page %s: %w", p.ID, err)
	}
	p.Location = location
	content, err := r.Registry.Read(ctx, location)
	if err != nil {
		if repositoryhost.IsNotFound(err) {
			p.Unresolved = err
			klog.V(6).Infof("page %s not found at %s", p.ID, location)
			return nil
		}
		return fmt.Errorf("reading page %s from %s fails: %w", p.ID, location, err)
	}
	doc, err := markdown.ParsePage(content)
	if err != nil {
		return fmt.Errorf("parsing page %s from %s fails: %w", p.ID, location, err)
	}
	p.Headers = doc.Headers
	if depth, ok := doc.Frontmatter["sidebarDepth"].(int); ok && !p.nav {
		p.Depth = depth
	}
	switch {
	case p.declaredTitle != "":
		p.Title = p.declaredTitle
	case doc.Title != "":
		p.Title = doc.Title
	default:
		p.Title = markdown.TitleFromName(p.File)
	}
	if editLink, ok := doc.Frontmatter["editLink"].(bool); !ok || editLink {
		p.EditURL = theme.EditURL(p.File)
	}
	if theme.LastUpdated.Enabled {
		lastUpdated, err := r.Registry.LastModified(ctx, location)
		switch {
		case err == nil:
			p.LastUpdated = lastUpdated
		case errors.Is(err, repositoryhost.ErrNotImplemented):
		default:
			klog.Warningf("last updated time of %s: %v", location, err)
		}
	}
	return nil
}
