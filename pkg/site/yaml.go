// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var groupKeys = map[string]struct{}{
	"title":        {},
	"path":         {},
	"collapsable":  {},
	"sidebarDepth": {},
	"children":     {},
}

// UnmarshalYAML decodes the [tag, {attributes}, content] tuple form
func (h *HeadTag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) == 0 || len(value.Content) > 3 {
		return fmt.Errorf("line %d: head tag must be a [tag, attributes, content] sequence", value.Line)
	}
	tag := value.Content[0]
	if tag.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: head tag name must be a string", tag.Line)
	}
	*h = HeadTag{Tag: tag.Value}
	if len(value.Content) > 1 {
		attrs := value.Content[1]
		if attrs.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: attributes of head tag %s must be a mapping", attrs.Line, h.Tag)
		}
		for i := 0; i+1 < len(attrs.Content); i += 2 {
			k, v := attrs.Content[i], attrs.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: value of attribute %s of head tag %s must be a scalar", v.Line, k.Value, h.Tag)
			}
			h.Attributes = append(h.Attributes, Attribute{Name: k.Value, Value: v.Value})
		}
	}
	if len(value.Content) > 2 {
		content := value.Content[2]
		if content.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: content of head tag %s must be a string", content.Line, h.Tag)
		}
		h.Content = content.Value
	}
	return nil
}

// MarshalYAML encodes the head tag in the tuple form
func (h HeadTag) MarshalYAML() (interface{}, error) {
	attrs := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	for _, a := range h.Attributes {
		attrs.Content = append(attrs.Content, str(a.Name), str(a.Value))
	}
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Content: []*yaml.Node{str(h.Tag), attrs}}
	if h.Content != "" {
		n.Content = append(n.Content, str(h.Content))
	}
	return n, nil
}

// UnmarshalYAML accepts a boolean or a label
func (l *LastUpdated) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: lastUpdated must be a boolean or a string", value.Line)
	}
	switch value.ShortTag() {
	case "!!null":
		*l = LastUpdated{}
	case "!!bool":
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return err
		}
		*l = LastUpdated{Enabled: enabled}
	default:
		*l = LastUpdated{Enabled: value.Value != "", Label: value.Value}
	}
	return nil
}

// MarshalYAML encodes the label if set, otherwise the toggle
func (l LastUpdated) MarshalYAML() (interface{}, error) {
	if l.Label != "" {
		return l.Label, nil
	}
	return l.Enabled, nil
}

// IsZero reports whether last updated is disabled
func (l LastUpdated) IsZero() bool {
	return !l.Enabled && l.Label == ""
}

// UnmarshalYAML decodes `auto`, a list of groups or a mapping section path -> groups
func (s *Sidebar) UnmarshalYAML(value *yaml.Node) error {
	*s = Sidebar{}
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Value != "auto" {
			return fmt.Errorf("line %d: sidebar must be 'auto', a list of groups or a mapping of section paths, got %q", value.Line, value.Value)
		}
		s.Auto = true
	case yaml.SequenceNode:
		groups, err := decodeGroups(value)
		if err != nil {
			return err
		}
		s.Sections = []SidebarSection{{Path: "/", Groups: groups}}
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			k, v := value.Content[i], value.Content[i+1]
			groups, err := decodeGroups(v)
			if err != nil {
				return fmt.Errorf("sidebar section %s -> %w", k.Value, err)
			}
			s.Sections = append(s.Sections, SidebarSection{Path: k.Value, Groups: groups})
		}
	default:
		return fmt.Errorf("line %d: unsupported sidebar definition", value.Line)
	}
	return nil
}

func decodeGroups(value *yaml.Node) ([]SidebarGroup, error) {
	if value.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: sidebar section must be a list of groups", value.Line)
	}
	groups := make([]SidebarGroup, 0, len(value.Content))
	for _, item := range value.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: sidebar entries must be page groups with title and children", item.Line)
		}
		for i := 0; i < len(item.Content); i += 2 {
			if _, ok := groupKeys[item.Content[i].Value]; !ok {
				return nil, fmt.Errorf("line %d: field %s not found in sidebar group", item.Content[i].Line, item.Content[i].Value)
			}
		}
		var g SidebarGroup
		if err := item.Decode(&g); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// MarshalYAML encodes the sidebar as `auto` or as an ordered mapping
func (s Sidebar) MarshalYAML() (interface{}, error) {
	if s.Auto {
		return "auto", nil
	}
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, section := range s.Sections {
		groups := &yaml.Node{}
		if err := groups.Encode(section.Groups); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, str(section.Path), groups)
	}
	return n, nil
}

// UnmarshalYAML accepts a page path or a [path, title] tuple
func (c *SidebarChild) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*c = SidebarChild{Path: value.Value}
		if value.ShortTag() == "!!null" {
			c.Path = ""
		}
		return nil
	case yaml.SequenceNode:
		if len(value.Content) == 0 || len(value.Content) > 2 {
			return fmt.Errorf("line %d: sidebar child must be a [path, title] tuple", value.Line)
		}
		var tuple []string
		if err := value.Decode(&tuple); err != nil {
			return err
		}
		*c = SidebarChild{Path: tuple[0]}
		if len(tuple) > 1 {
			c.Title = tuple[1]
		}
		return nil
	}
	return fmt.Errorf("line %d: sidebar child must be a page path or a [path, title] tuple", value.Line)
}

// MarshalYAML encodes the path alone when there is no title
func (c SidebarChild) MarshalYAML() (interface{}, error) {
	if c.Title == "" {
		return str(c.Path), nil
	}
	return &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Content: []*yaml.Node{str(c.Path), str(c.Title)}}, nil
}

// UnmarshalYAML accepts a plugin name or a [name, {options}] tuple
func (p *Plugin) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*p = Plugin{Name: value.Value}
		return nil
	case yaml.SequenceNode:
		if len(value.Content) == 0 || len(value.Content) > 2 || value.Content[0].Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: plugin must be a [name, options] tuple", value.Line)
		}
		*p = Plugin{Name: value.Content[0].Value}
		if len(value.Content) == 2 {
			return decodeOptions(p, value.Content[1])
		}
		return nil
	}
	return fmt.Errorf("line %d: plugin must be a name or a [name, options] tuple", value.Line)
}

// MarshalYAML encodes the name alone when there are no options
func (p Plugin) MarshalYAML() (interface{}, error) {
	if p.Options == nil || len(p.Options.Content) == 0 {
		return p.Name, nil
	}
	return []interface{}{p.Name, p.Options}, nil
}

// UnmarshalYAML accepts the list form and the mapping form name -> options.
// In the mapping form a plugin set to false is disabled
func (ps *Plugins) UnmarshalYAML(value *yaml.Node) error {
	*ps = nil
	switch value.Kind {
	case yaml.SequenceNode:
		for _, item := range value.Content {
			var p Plugin
			if err := item.Decode(&p); err != nil {
				return err
			}
			*ps = append(*ps, p)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			k, v := value.Content[i], value.Content[i+1]
			p := Plugin{Name: k.Value}
			if v.Kind == yaml.ScalarNode && v.ShortTag() == "!!bool" {
				var enabled bool
				if err := v.Decode(&enabled); err != nil {
					return err
				}
				if !enabled {
					continue
				}
			} else if err := decodeOptions(&p, v); err != nil {
				return err
			}
			*ps = append(*ps, p)
		}
	default:
		return fmt.Errorf("line %d: plugins must be a list or a mapping", value.Line)
	}
	return nil
}

func decodeOptions(p *Plugin, value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: options of plugin %s must be a mapping", value.Line, p.Name)
	}
	if len(value.Content) > 0 {
		p.Options = detach(value)
	}
	return nil
}

// detach copies a node without its source position and comments
func detach(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return detach(n.Alias)
	}
	c := &yaml.Node{Kind: n.Kind, Style: n.Style, Tag: n.Tag, Value: n.Value}
	for _, child := range n.Content {
		c.Content = append(c.Content, detach(child))
	}
	return c
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
