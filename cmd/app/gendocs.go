// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const (
	genDocsMarkdown genDocsFormat = iota
	genDocsManPages
)

type genDocsFormat int

func newGenDocsFormat(formatString string) (genDocsFormat, error) {
	switch formatString {
	case "md":
		return genDocsMarkdown, nil
	case "man":
		return genDocsManPages, nil
	}
	return 0, fmt.Errorf("unknown format '%s'. Must be one of %v", formatString, []string{"md", "man"})
}

// NewGenCmdDocs generates commands reference documentation
// in Markdown format or as man pages
func NewGenCmdDocs() *cobra.Command {
	var formatString, destination string
	command := &cobra.Command{
		Use:   "gen-cmd-docs",
		Short: "Generates commands reference documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := newGenDocsFormat(formatString)
			if err != nil {
				return err
			}
			c := cmd.Root()
			c.DisableAutoGenTag = true
			destination = filepath.Clean(destination)
			if err := os.MkdirAll(destination, os.ModePerm); err != nil {
				return err
			}
			if format == genDocsManPages {
				header := &doc.GenManHeader{
					Title:   "DOCSITE",
					Manual:  "Docsite Command Reference",
					Section: "1",
				}
				return doc.GenManTree(c, header, destination)
			}
			return doc.GenMarkdownTree(c, destination)
		},
	}
	command.Flags().StringVar(&formatString, "format", "md",
		"Specifies the generated documentation format. Must be one of: `md` (for markdown) or `man` (for man pages).")
	command.Flags().StringVarP(&destination, "destination", "d", "",
		"Path to directory where the documentation will be generated. If it does not exist, it will be created. Required flag.")
	_ = command.MarkFlagRequired("destination")
	return command
}
