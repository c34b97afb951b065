// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the site configuration object consumed by the static site
// framework at build time
type Config struct {
	// Title of the site, used as prefix for all page titles
	Title string `yaml:"title,omitempty"`
	// Description of the site, rendered as <meta> description
	Description string `yaml:"description,omitempty"`
	// Base URL the site will be deployed at
	Base string `yaml:"base,omitempty"`
	// Dest is the output directory for the framework build
	Dest string `yaml:"dest,omitempty"`
	// Head are extra tags injected to the page HTML <head>
	Head []HeadTag `yaml:"head,omitempty"`
	// ThemeConfig is the default theme configuration
	ThemeConfig *ThemeConfig `yaml:"themeConfig,omitempty"`
	// Plugins enable optional framework behavior
	Plugins Plugins `yaml:"plugins,omitempty"`
}

// Attribute is a single HTML attribute of a head tag
type Attribute struct {
	Name  string
	Value string
}

// HeadTag describes a tag injected into the page <head>
type HeadTag struct {
	// Tag is the HTML tag name e.g. meta
	Tag string
	// Attributes in declaration order
	Attributes []Attribute
	// Content is the optional inner HTML of the tag
	Content string
}

// Attr returns the value of the named attribute, names are case-insensitive
func (h HeadTag) Attr(name string) (string, bool) {
	for _, a := range h.Attributes {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// ThemeConfig is the default theme configuration
type ThemeConfig struct {
	// Repo is the repository link shown in the navbar, either `owner/name` on GitHub or a full URL
	Repo string `yaml:"repo,omitempty"`
	// RepoLabel is the label of the repository link
	RepoLabel string `yaml:"repoLabel,omitempty"`
	// DocsRepo is the repository hosting the docs when it differs from Repo
	DocsRepo string `yaml:"docsRepo,omitempty"`
	// DocsDir is the docs directory in the repository
	DocsDir string `yaml:"docsDir,omitempty"`
	// DocsBranch is the branch the edit links point to
	DocsBranch string `yaml:"docsBranch,omitempty"`
	// EditLinks enables the "edit this page" links
	EditLinks bool `yaml:"editLinks,omitempty"`
	// EditLinkText is the label of the edit links
	EditLinkText string `yaml:"editLinkText,omitempty"`
	// LastUpdated enables the last updated timestamp of pages
	LastUpdated LastUpdated `yaml:"lastUpdated,omitempty"`
	Logo        string      `yaml:"logo,omitempty"`
	// Search toggles the built-in search box, enabled when unset
	Search               *bool `yaml:"search,omitempty"`
	SearchMaxSuggestions int   `yaml:"searchMaxSuggestions,omitempty"`
	SmoothScroll         bool  `yaml:"smoothScroll,omitempty"`
	// SidebarDepth is the depth of page headers linked in the sidebar
	SidebarDepth      *int `yaml:"sidebarDepth,omitempty"`
	DisplayAllHeaders bool `yaml:"displayAllHeaders,omitempty"`
	// Nav are the navbar links
	Nav []NavItem `yaml:"nav,omitempty"`
	// Sidebar groups pages per section
	Sidebar *Sidebar `yaml:"sidebar,omitempty"`
}

// LastUpdated is either a toggle or the label prefixing the timestamp
type LastUpdated struct {
	Enabled bool
	Label   string
}

// NavItem is a navbar entry. It either has a link or nested items
type NavItem struct {
	Text      string    `yaml:"text"`
	Link      string    `yaml:"link,omitempty"`
	Items     []NavItem `yaml:"items,omitempty"`
	Target    string    `yaml:"target,omitempty"`
	Rel       string    `yaml:"rel,omitempty"`
	AriaLabel string    `yaml:"ariaLabel,omitempty"`
}

// Sidebar is either automatic (generated from page headers)
// or a list of sections matched by page path in declaration order
type Sidebar struct {
	Auto     bool
	Sections []SidebarSection
}

// SidebarSection are the page groups displayed for pages under Path
type SidebarSection struct {
	Path   string
	Groups []SidebarGroup
}

// SidebarGroup is a titled group of pages
type SidebarGroup struct {
	Title        string         `yaml:"title"`
	Path         string         `yaml:"path,omitempty"`
	Collapsable  *bool          `yaml:"collapsable,omitempty"`
	SidebarDepth *int           `yaml:"sidebarDepth,omitempty"`
	Children     []SidebarChild `yaml:"children,omitempty"`
}

// SidebarChild references a page relative to its section.
// The empty path is the section README
type SidebarChild struct {
	Path  string
	Title string
}

// Plugin is a plugin identifier with optional options
type Plugin struct {
	Name string
	// Options is the options mapping in declaration order, nil without options
	Options *yaml.Node
}

// Plugins is the ordered list of enabled plugins
type Plugins []Plugin
