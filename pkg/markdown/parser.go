// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"path"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// parser extension for GitHub Flavored Markdown & Frontmatter support
	extensions = []goldmark.Extender{
		extension.GFM,
		meta.Meta,
	}
	// goldmark.Markdown parser with GFM extensions
	gmParser = goldmark.New(goldmark.WithExtensions(extensions...))

	slugSeparators = regexp.MustCompile(`[\s~!@#$%^&*()\-_+=\[\]{}|\\;:"'“”‘’<>,.?/]+`)
)

// Header is a level 2 or 3 heading listed in the page sidebar
type Header struct {
	Level int
	Title string
	Slug  string
}

// Page is the metadata of a markdown page
type Page struct {
	// Frontmatter of the page
	Frontmatter map[string]interface{}
	// Title is the frontmatter title or the first level 1 heading
	Title string
	// Headers are the level 2 and 3 headings in document order
	Headers []Header
}

// Parse markdown content and returns AST node or error
func Parse(source []byte) (ast.Node, error) {
	reader := text.NewReader(source)
	context := parser.NewContext()
	doc := gmParser.Parser().Parse(reader, parser.WithContext(context))
	fmb, err := meta.TryGet(context)
	if err != nil {
		return nil, err
	}
	if doc.Kind() == ast.KindDocument {
		doc.(*ast.Document).SetMeta(fmb)
	}
	return doc, nil
}

// ParsePage extracts the page metadata from markdown content
func ParsePage(source []byte) (*Page, error) {
	doc, err := Parse(source)
	if err != nil {
		return nil, err
	}
	page := &Page{Frontmatter: doc.(*ast.Document).Meta()}
	if t, ok := page.Frontmatter["title"].(string); ok {
		page.Title = t
	}
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := strings.TrimSpace(string(h.Text(source)))
		switch h.Level {
		case 1:
			if page.Title == "" {
				page.Title = title
			}
		case 2, 3:
			page.Headers = append(page.Headers, Header{Level: h.Level, Title: title, Slug: Slugify(title)})
		}
		return ast.WalkSkipChildren, nil
	})
	return page, err
}

// Slugify returns the anchor of a heading as the site generator computes it
func Slugify(title string) string {
	s := slugSeparators.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
	return strings.Trim(s, "-")
}

// TitleFromName returns a title from a page file name, normalizing it by
// removing `-`, `_`, `.md` and converting to title case. README pages take
// the name of their directory
func TitleFromName(name string) string {
	name = strings.TrimSuffix(name, "/")
	base := path.Base(name)
	if strings.EqualFold(base, "README.md") || strings.EqualFold(base, "index.md") {
		base = path.Base(path.Dir(name))
		if base == "." || base == "/" {
			return "Home"
		}
	}
	title := strings.TrimSuffix(base, ".md")
	title = strings.ReplaceAll(title, "_", " ")
	title = strings.ReplaceAll(title, "-", " ")
	return cases.Title(language.English).String(title)
}
