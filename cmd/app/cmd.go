// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gardener/docsite/cmd/configuration"
	"github.com/gardener/docsite/pkg/registry/repositoryhost"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// EnvPrefix prefixes the environment variables overriding flags
const EnvPrefix = "DOCSITE"

var initKlogFlags sync.Once

// NewCommand creates a new root command and propagates
// the context to the Run callback closures of its subcommands
func NewCommand(ctx context.Context) *cobra.Command {
	return newCommand(ctx, new(configuration.DefaultConfigurationLoader)).root
}

// command holds the state shared by the subcommands
type command struct {
	ctx    context.Context
	vip    *viper.Viper
	config *configuration.Config
	root   *cobra.Command
}

func newCommand(ctx context.Context, loader configuration.Loader) *command {
	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	vip.SetDefault("workers", 25)
	vip.SetDefault("validation-workers", 10)
	c := &command{ctx: ctx, vip: vip, config: &configuration.Config{}}

	cmd := &cobra.Command{
		Use:   "docsite",
		Short: "Forge the configuration of a static documentation site",
		Long: `docsite loads a site manifest, validates it against the schema of the
static site framework, resolves the sidebar against the documentation pages
and renders the framework configuration file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := loader.Load()
			if err != nil {
				return err
			}
			c.config = config
			applyConfiguration(vip, config)
			return nil
		},
	}
	configurePersistentFlags(cmd)

	cmd.AddCommand(
		c.newBuildCmd(),
		c.newValidateCmd(),
		c.newResolveCmd(),
		c.newHeadCmd(),
		NewVersionCmd(),
		newCompletionCmd(),
		NewGenCmdDocs(),
	)

	initKlogFlags.Do(func() { klog.InitFlags(nil) })
	AddFlags(cmd)

	c.root = cmd
	return c
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}

// applyConfiguration sets the configuration file values as defaults
// flags and environment variables override
func applyConfiguration(vip *viper.Viper, config *configuration.Config) {
	if config == nil {
		return
	}
	if config.CacheHome != nil {
		vip.SetDefault("cache-dir", *config.CacheHome)
	}
	if len(config.ResourceMappings) > 0 {
		vip.SetDefault("resource-mappings", config.ResourceMappings)
	}
	if config.S3Region != nil {
		vip.SetDefault("s3-region", *config.S3Region)
	}
	if len(config.HostsToReport) > 0 {
		vip.SetDefault("hosts-to-report", config.HostsToReport)
	}
}

// getOptions binds the flags of the running command and decodes all
// settings into options
func (c *command) getOptions(cmd *cobra.Command) (*options, error) {
	if err := c.vip.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	o := &options{}
	if err := c.vip.Unmarshal(o); err != nil {
		return nil, fmt.Errorf("decoding options fails: %w", err)
	}
	o.Credentials = gatherCredentials(o, c.config)
	if o.Workers < 1 || o.Workers > 100 {
		return nil, fmt.Errorf("workers must be in [1, 100], got %d", o.Workers)
	}
	if o.ValidationWorkers < 1 || o.ValidationWorkers > 100 {
		return nil, fmt.Errorf("validation-workers must be in [1, 100], got %d", o.ValidationWorkers)
	}
	return o, nil
}

func gatherCredentials(o *options, config *configuration.Config) map[string]string {
	credentialsByHost := map[string]string{}
	if config != nil {
		for _, source := range config.Sources {
			token, ok := sourceToken(source)
			if !ok {
				klog.Warningf("configuration is considered incorrect because of missing oauth token for host: %s\n", source.Host)
				continue
			}
			credentialsByHost[source.Host] = token
		}
	}
	// tokens provided by flags override the configuration file
	for instance, token := range o.Credentials {
		if _, ok := credentialsByHost[instance]; ok {
			klog.Warningf("%s token is overridden by the provided token with `--github-oauth-token-map flag`\n", instance)
		}
		credentialsByHost[instance] = stripUsername(token)
	}
	if o.GitHubOAuthToken != "" {
		if _, ok := credentialsByHost["github.com"]; ok {
			klog.Warning("github.com token is overridden by the provided token with `--github-oauth-token flag`\n")
		}
		credentialsByHost["github.com"] = stripUsername(o.GitHubOAuthToken)
	}
	if _, ok := credentialsByHost["github.com"]; !ok {
		klog.V(4).Infof("using unauthenticated github access\n")
		credentialsByHost["github.com"] = ""
	}
	return credentialsByHost
}

func sourceToken(source *configuration.Source) (string, bool) {
	if source.OAuthToken != nil {
		return stripUsername(*source.OAuthToken), true
	}
	if source.OAuthTokenEnv != nil {
		if token, ok := os.LookupEnv(*source.OAuthTokenEnv); ok && token != "" {
			return stripUsername(token), true
		}
	}
	return "", false
}

// credentials may be in the format `username:token`
func stripUsername(credentials string) string {
	if usernameAndToken := strings.Split(credentials, ":"); len(usernameAndToken) == 2 {
		return usernameAndToken[1]
	}
	return credentials
}

type options struct {
	Options                    `mapstructure:",squash"`
	repositoryhost.InitOptions `mapstructure:",squash"`
}
