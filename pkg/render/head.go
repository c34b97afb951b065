// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gardener/docsite/pkg/site"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Head renders the head tags of the site as an HTML fragment, one tag per line
func Head(cfg *site.Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("site configuration is nil")
	}
	var b bytes.Buffer
	for i, tag := range cfg.Head {
		if err := html.Render(&b, headNode(tag)); err != nil {
			return nil, fmt.Errorf("head[%d]: %w", i, err)
		}
		b.WriteString("\n")
	}
	return b.Bytes(), nil
}

func headNode(tag site.HeadTag) *html.Node {
	name := strings.ToLower(tag.Tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
	for _, a := range tag.Attributes {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Name, Val: a.Value})
	}
	if tag.Content != "" {
		// script and style content is rendered raw
		n.AppendChild(&html.Node{Type: html.TextNode, Data: tag.Content})
	}
	return n
}
