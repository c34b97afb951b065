// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

var funcs = template.FuncMap{
	"Split": strings.Split,
	"Join":  strings.Join,
	"Default": func(def string, value string) string {
		if value == "" {
			return def
		}
		return value
	},
}

// Parse renders the manifest as a Go template with the provided variables
// and decodes the result into a site configuration. JSON manifests are
// accepted as they are valid YAML
func Parse(data []byte, vars map[string]string) (*Config, error) {
	tmpl, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(string(data))
	if err != nil {
		return nil, err
	}
	if vars == nil {
		vars = map[string]string{}
	}
	var b bytes.Buffer
	if err = tmpl.Execute(&b, vars); err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(&b)
	dec.KnownFields(true)
	cfg := &Config{}
	if err = dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("site manifest is empty")
		}
		return nil, err
	}
	return cfg, nil
}

// Serialize is the YAML form of the configuration
func Serialize(cfg *Config) (string, error) {
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}
