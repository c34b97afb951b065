// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"os"
	"path/filepath"

	"github.com/gardener/docsite/cmd/configuration"
	"github.com/spf13/cobra"
)

// Options are the settings of the subcommands
type Options struct {
	ManifestPath      string            `mapstructure:"manifest"`
	Variables         map[string]string `mapstructure:"variables"`
	GitHubOAuthToken  string            `mapstructure:"github-oauth-token"`
	DocsRoot          string            `mapstructure:"docs-root"`
	DestinationPath   string            `mapstructure:"destination"`
	Format            string            `mapstructure:"format"`
	DryRun            bool              `mapstructure:"dry-run"`
	Watch             bool              `mapstructure:"watch"`
	ValidateLinks     bool              `mapstructure:"validate-links"`
	FailFast          bool              `mapstructure:"fail-fast"`
	Workers           int               `mapstructure:"workers"`
	ValidationWorkers int               `mapstructure:"validation-workers"`
	HostsToReport     []string          `mapstructure:"hosts-to-report"`
	MetricsAddress    string            `mapstructure:"metrics-address"`
}

func configurePersistentFlags(command *cobra.Command) {
	command.PersistentFlags().StringP("manifest", "f", "",
		"Site manifest location. A local path, an http(s) URL, a GitHub resource URL, an s3:// or a gs:// object.")
	command.PersistentFlags().StringToString("variables", map[string]string{},
		"Variables applied to parameterized (using Go template) manifest.")
	command.PersistentFlags().String("github-oauth-token", "",
		"GitHub personal token authorizing read access from GitHub.com repositories. For authorization credentials for multiple GitHub instances, see --github-oauth-token-map")
	command.PersistentFlags().StringToString("github-oauth-token-map", map[string]string{},
		"GitHub personal tokens authorizing read access from repositories per GitHub instance. Note that if the GitHub token is already provided by `github-oauth-token` it will be overridden by it.")
	command.PersistentFlags().StringToString("resource-mappings", map[string]string{},
		"Maps URL prefixes to local directories, e.g. https://github.com/org/repo/tree/master/docs=./docs")
	command.PersistentFlags().String("s3-region", "",
		"AWS region of s3:// resources. Defaults to the region of the AWS configuration.")

	cacheDir := ""
	if userHomeDir, err := os.UserHomeDir(); err == nil {
		// default value $HOME/.docsite/cache
		cacheDir = filepath.Join(userHomeDir, configuration.DocsiteHomeDir, "cache")
	}
	command.PersistentFlags().String("cache-dir", cacheDir,
		"Cache directory, used for the GitHub HTTP cache.")
}

func configureResolveFlags(command *cobra.Command) {
	command.Flags().String("docs-root", "",
		"Location of the documentation directory the sidebar pages are resolved against.")
	command.Flags().Int("workers", 25,
		"Number of parallel workers resolving pages.")
	command.Flags().Bool("fail-fast", false,
		"Fail-fast vs fault tolerant operation.")
}

func configureLinkValidationFlags(command *cobra.Command) {
	command.Flags().Bool("validate-links", false,
		"Checks that the absolute links of the navbar and the sidebar are reachable.")
	command.Flags().Int("validation-workers", 10,
		"Number of parallel workers to validate the links.")
	command.Flags().StringSlice("hosts-to-report", []string{},
		"When a link with a host from the given array is broken the command fails, otherwise a warning is logged.")
}

func configureBuildFlags(command *cobra.Command) {
	command.Flags().StringP("destination", "d", "",
		"Site source directory. The configuration is written to its .vuepress directory.")
	command.Flags().String("format", "js",
		"Configuration file format. Must be one of: `js` (config.js) or `yaml` (config.yml).")
	command.Flags().Bool("dry-run", false,
		"Runs the command end-to-end but instead of writing files, it will output the projected file hierarchy to the standard output.")
	command.Flags().Bool("watch", false,
		"Rebuilds when the local manifest changes.")
	command.Flags().String("metrics-address", "",
		"Address to serve Prometheus metrics on while the command runs, e.g. `:9090`. Disabled when empty.")
}
