// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const indent = "  "

var (
	identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	jsEscaper  = strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
		"\u2028", `\u2028`,
		"\u2029", `\u2029`,
	)
)

// writeValue writes a YAML node as a JavaScript literal. Flow style
// collections are written on a single line
func writeValue(b *bytes.Buffer, n *yaml.Node, depth int) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			b.WriteString("{}")
			return nil
		}
		return writeValue(b, n.Content[0], depth)
	case yaml.AliasNode:
		return writeValue(b, n.Alias, depth)
	case yaml.ScalarNode:
		return writeScalar(b, n)
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			b.WriteString("[]")
			return nil
		}
		if n.Style&yaml.FlowStyle != 0 {
			b.WriteString("[")
			for i, c := range n.Content {
				if i > 0 {
					b.WriteString(", ")
				}
				if err := writeValue(b, c, depth); err != nil {
					return err
				}
			}
			b.WriteString("]")
			return nil
		}
		b.WriteString("[\n")
		for _, c := range n.Content {
			b.WriteString(strings.Repeat(indent, depth+1))
			if err := writeValue(b, c, depth+1); err != nil {
				return err
			}
			b.WriteString(",\n")
		}
		b.WriteString(strings.Repeat(indent, depth) + "]")
		return nil
	case yaml.MappingNode:
		if len(n.Content) == 0 {
			b.WriteString("{}")
			return nil
		}
		if n.Style&yaml.FlowStyle != 0 {
			b.WriteString("{ ")
			for i := 0; i+1 < len(n.Content); i += 2 {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(key(n.Content[i].Value) + ": ")
				if err := writeValue(b, n.Content[i+1], depth); err != nil {
					return err
				}
			}
			b.WriteString(" }")
			return nil
		}
		b.WriteString("{\n")
		for i := 0; i+1 < len(n.Content); i += 2 {
			b.WriteString(strings.Repeat(indent, depth+1) + key(n.Content[i].Value) + ": ")
			if err := writeValue(b, n.Content[i+1], depth+1); err != nil {
				return err
			}
			b.WriteString(",\n")
		}
		b.WriteString(strings.Repeat(indent, depth) + "}")
		return nil
	}
	return fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}

func writeScalar(b *bytes.Buffer, n *yaml.Node) error {
	switch n.ShortTag() {
	case "!!null":
		b.WriteString("null")
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err != nil {
			return err
		}
		fmt.Fprintf(b, "%t", v)
	case "!!int":
		b.WriteString(n.Value)
	case "!!float":
		var v float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		switch {
		case math.IsNaN(v):
			b.WriteString("NaN")
		case math.IsInf(v, 1):
			b.WriteString("Infinity")
		case math.IsInf(v, -1):
			b.WriteString("-Infinity")
		default:
			b.WriteString(n.Value)
		}
	default:
		b.WriteString(quote(n.Value))
	}
	return nil
}

func key(k string) string {
	if identifier.MatchString(k) {
		return k
	}
	return quote(k)
}

func quote(s string) string {
	return "'" + jsEscaper.Replace(s) + "'"
}
