// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"fmt"
	"strings"
)

// Resolved is the sidebar and navigation of a site with their pages
// resolved, in declaration order
type Resolved struct {
	Sections []Section
	Nav      []*Page
	// Unlisted are the markdown files of the docs tree that are not linked
	Unlisted []string
}

// Pages returns all sidebar pages followed by the navigation pages
func (r *Resolved) Pages() []*Page {
	var all []*Page
	for _, s := range r.Sections {
		for _, g := range s.Groups {
			all = append(all, g.Pages...)
		}
	}
	return append(all, r.Nav...)
}

// Unresolved returns the pages whose file was not found
func (r *Resolved) Unresolved() []*Page {
	var out []*Page
	for _, p := range r.Pages() {
		if !p.Resolved() {
			out = append(out, p)
		}
	}
	return out
}

// String prints the resolved sidebar as a tree
func (r *Resolved) String() string {
	var b strings.Builder
	for _, s := range r.Sections {
		b.WriteString(s.Path + "\n")
		for i, g := range s.Groups {
			last := i == len(s.Groups)-1
			indent := "│   "
			if last {
				indent = "    "
			}
			b.WriteString(branch(last) + g.Title + "\n")
			for j, p := range g.Pages {
				lastPage := j == len(g.Pages)-1
				b.WriteString(indent + branch(lastPage) + p.line() + "\n")
				headerIndent := indent + "│   "
				if lastPage {
					headerIndent = indent + "    "
				}
				headers := p.SidebarHeaders()
				for k, h := range headers {
					b.WriteString(headerIndent + branch(k == len(headers)-1) + fmt.Sprintf("#%s %q", h.Slug, h.Title) + "\n")
				}
			}
		}
	}
	if len(r.Nav) > 0 {
		b.WriteString("nav\n")
		for i, p := range r.Nav {
			b.WriteString(branch(i == len(r.Nav)-1) + p.line() + "\n")
		}
	}
	if len(r.Unlisted) > 0 {
		b.WriteString("unlisted\n")
		for i, f := range r.Unlisted {
			b.WriteString(branch(i == len(r.Unlisted)-1) + f + "\n")
		}
	}
	return b.String()
}

func branch(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func (p *Page) line() string {
	switch {
	case p.External:
		return fmt.Sprintf("%s (external)", p.Link)
	case p.Unresolved != nil:
		return fmt.Sprintf("%s (unresolved: %s)", p.Link, p.File)
	case p.LastUpdated.IsZero():
		return fmt.Sprintf("%s %q", p.Link, p.Title)
	}
	return fmt.Sprintf("%s %q updated %s", p.Link, p.Title, p.LastUpdated.UTC().Format("2006-01-02 15:04:05"))
}
