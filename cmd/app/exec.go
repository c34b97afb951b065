// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gardener/docsite/pkg/linkvalidator"
	"github.com/gardener/docsite/pkg/metrics"
	"github.com/gardener/docsite/pkg/pages"
	"github.com/gardener/docsite/pkg/registry"
	"github.com/gardener/docsite/pkg/render"
	"github.com/gardener/docsite/pkg/site"
	"github.com/gardener/docsite/pkg/util/files"
	"github.com/gardener/docsite/pkg/validate"
	"github.com/gardener/docsite/pkg/writers"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

const configDir = ".vuepress"

func (c *command) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the framework configuration file of a site manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, reg, err := c.setup(cmd)
			if err != nil {
				return err
			}
			if o.DestinationPath == "" && !o.DryRun {
				return errors.New("required flag \"destination\" not set")
			}
			if o.MetricsAddress != "" {
				go func() {
					if err := metrics.Serve(c.ctx, o.MetricsAddress); err != nil {
						klog.Errorf("metrics server failed: %v", err)
					}
				}()
			}
			if err = runBuild(c.ctx, o, reg, cmd.OutOrStdout()); err != nil {
				return err
			}
			if !o.Watch {
				return nil
			}
			return watch(c.ctx, o.ManifestPath, func() error {
				return runBuild(c.ctx, o, reg, cmd.OutOrStdout())
			})
		},
	}
	configureResolveFlags(cmd)
	configureLinkValidationFlags(cmd)
	configureBuildFlags(cmd)
	return cmd
}

func (c *command) newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a site manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, reg, err := c.setup(cmd)
			if err != nil {
				return err
			}
			if _, err = check(c.ctx, o, reg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", o.ManifestPath)
			return nil
		},
	}
	configureResolveFlags(cmd)
	configureLinkValidationFlags(cmd)
	return cmd
}

func (c *command) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the sidebar and navigation pages of a site resolved against its docs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, reg, err := c.setup(cmd)
			if err != nil {
				return err
			}
			if o.DocsRoot == "" {
				return errors.New("required flag \"docs-root\" not set")
			}
			cfg, err := loadSite(c.ctx, reg, o.ManifestPath, o.Variables)
			if err != nil {
				return err
			}
			resolved, err := resolve(c.ctx, o, reg, cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), resolved.String())
			if unresolved := resolved.Unresolved(); len(unresolved) > 0 {
				klog.Warningf("%d pages are not resolved", len(unresolved))
			}
			if len(resolved.Unlisted) > 0 {
				klog.Infof("%d markdown files under %s are not linked", len(resolved.Unlisted), o.DocsRoot)
			}
			return nil
		},
	}
	configureResolveFlags(cmd)
	return cmd
}

func (c *command) newHeadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "head",
		Short: "Print the head tags of a site manifest as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, reg, err := c.setup(cmd)
			if err != nil {
				return err
			}
			cfg, err := loadSite(c.ctx, reg, o.ManifestPath, o.Variables)
			if err != nil {
				return err
			}
			head, err := render.Head(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(head)
			return err
		},
	}
}

func (c *command) setup(cmd *cobra.Command) (*options, registry.Interface, error) {
	o, err := c.getOptions(cmd)
	if err != nil {
		return nil, nil, err
	}
	if o.ManifestPath == "" {
		return nil, nil, errors.New("required flag \"manifest\" not set")
	}
	klog.Infof("Manifest: %s", o.ManifestPath)
	reg, err := initRegistry(o.InitOptions)
	if err != nil {
		return nil, nil, err
	}
	return o, reg, nil
}

// loadSite reads the site manifest from any repository host and decodes it
func loadSite(ctx context.Context, reg registry.Interface, manifestPath string, vars map[string]string) (*site.Config, error) {
	content, err := reg.Read(ctx, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s fails: %w", manifestPath, err)
	}
	cfg, err := site.Parse(content, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", manifestPath, err)
	}
	cfg.SetDefaults()
	return cfg, nil
}

func resolve(ctx context.Context, o *options, reg registry.Interface, cfg *site.Config) (*pages.Resolved, error) {
	resolver := &pages.Resolver{
		Registry: reg,
		DocsRoot: o.DocsRoot,
		Workers:  o.Workers,
		FailFast: o.FailFast,
	}
	resolved, err := resolver.Resolve(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pages of %s: %w", o.ManifestPath, err)
	}
	klog.V(4).Infof("resolved pages:\n%s", resolved)
	return resolved, nil
}

// check loads and validates the manifest. Pages are checked when a docs
// root is set and links when link validation is enabled
func check(ctx context.Context, o *options, reg registry.Interface) (*site.Config, error) {
	cfg, err := loadSite(ctx, reg, o.ManifestPath, o.Variables)
	if err != nil {
		return nil, err
	}
	if err = validate.Config(cfg); err != nil {
		return nil, fmt.Errorf("manifest %s is invalid: %w", o.ManifestPath, err)
	}
	if o.DocsRoot != "" {
		resolved, err := resolve(ctx, o, reg, cfg)
		if err != nil {
			return nil, err
		}
		if err = validate.Pages(resolved); err != nil {
			return nil, fmt.Errorf("manifest %s links missing pages: %w", o.ManifestPath, err)
		}
	}
	if o.ValidateLinks {
		validator, err := linkvalidator.NewValidator(reg, o.HostsToReport)
		if err != nil {
			return nil, err
		}
		if err = validator.ValidateNav(ctx, cfg, o.ValidationWorkers, o.FailFast); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runBuild(ctx context.Context, o *options, reg registry.Interface, out io.Writer) (err error) {
	defer func() { metrics.BuildFinished(err) }()
	format, err := render.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	cfg, err := check(ctx, o, reg)
	if err != nil {
		return err
	}
	content, err := render.Config(cfg, format)
	if err != nil {
		return err
	}
	if o.DryRun {
		dryRunWriters := writers.NewDryRunWritersFactory(out)
		if err = dryRunWriters.GetWriter(o.DestinationPath).Write(format.FileName(), configDir, content); err != nil {
			return err
		}
		dryRunWriters.Flush()
		return nil
	}
	w := &writers.FSWriter{Root: o.DestinationPath}
	if err = w.Write(format.FileName(), configDir, content); err != nil {
		return err
	}
	klog.Infof("Output: %s", filepath.Join(o.DestinationPath, configDir, format.FileName()))
	reg.LogRateLimits(ctx)
	return nil
}

func watch(ctx context.Context, manifestPath string, rebuild func() error) error {
	path := strings.TrimPrefix(manifestPath, "file://")
	if strings.Contains(path, "://") {
		return fmt.Errorf("--watch requires a local manifest, got %s", manifestPath)
	}
	w := files.NewFileWatcher()
	if err := w.AddToWatch(path); err != nil {
		return err
	}
	klog.Infof("Watching %s", path)
	return w.Watch(ctx, rebuild)
}
