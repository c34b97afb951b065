// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"fmt"

	"github.com/gardener/docsite/pkg/site"
	"github.com/gardener/docsite/pkg/version"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format is the file format of the framework configuration
type Format string

const (
	// FormatJS is the `.vuepress/config.js` CommonJS module
	FormatJS Format = "js"
	// FormatYAML is the `.vuepress/config.yml` document
	FormatYAML Format = "yaml"
)

// FileName is the name of the configuration file the framework looks up
func (f Format) FileName() string {
	if f == FormatYAML {
		return "config.yml"
	}
	return "config.js"
}

// ParseFormat accepts js, yaml and yml
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "js":
		return FormatJS, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %s, expected js or yaml", s)
}

// Config renders the site configuration in the given format
func Config(cfg *site.Config, format Format) ([]byte, error) {
	if format == FormatYAML {
		return YAML(cfg)
	}
	return JS(cfg)
}

// JS renders the site configuration as a CommonJS module
func JS(cfg *site.Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("site configuration is nil")
	}
	n := &yaml.Node{}
	if err := n.Encode(cfg); err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.WriteString(header("//"))
	b.WriteString("module.exports = ")
	if err := writeValue(&b, n, 0); err != nil {
		return nil, err
	}
	b.WriteString("\n")
	return b.Bytes(), nil
}

// YAML renders the site configuration as a YAML document
func YAML(cfg *site.Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("site configuration is nil")
	}
	out, err := site.Serialize(cfg)
	if err != nil {
		return nil, err
	}
	return []byte(header("#") + out), nil
}

func header(comment string) string {
	return fmt.Sprintf("%s Generated by docsite %s (build %s). DO NOT EDIT.\n", comment, version.Get(), uuid.New().String())
}
