// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/gardener/docsite/pkg/site"
	"github.com/hashicorp/go-multierror"
)

var (
	headTags = map[string]struct{}{
		"meta":     {},
		"link":     {},
		"script":   {},
		"style":    {},
		"base":     {},
		"title":    {},
		"noscript": {},
	}
	linkSchemes = map[string]struct{}{
		"http":   {},
		"https":  {},
		"mailto": {},
	}
	// npm package name, optionally scoped
	pluginName = regexp.MustCompile(`^(@[a-z0-9-~][a-z0-9-._~]*(/[a-z0-9-~][a-z0-9-._~]*)?|[a-z0-9-~][a-z0-9-._~]*)$`)
	// attributes a head tag is useless without
	requiredAttrs = map[string][]string{
		"link": {"rel", "href"},
		"base": {"href"},
	}
)

// Config checks the site configuration against the schema the
// framework expects. All violations are reported at once
func Config(cfg *site.Config) error {
	var errs *multierror.Error
	if cfg == nil {
		return fmt.Errorf("site configuration is nil")
	}
	if strings.TrimSpace(cfg.Title) == "" {
		errs = multierror.Append(errs, fmt.Errorf("title must not be empty"))
	}
	if cfg.Base != "" && (!strings.HasPrefix(cfg.Base, "/") || !strings.HasSuffix(cfg.Base, "/")) {
		errs = multierror.Append(errs, fmt.Errorf("base %q must start and end with /", cfg.Base))
	}
	for i, tag := range cfg.Head {
		errs = validateHeadTag(i, tag, errs)
	}
	if t := cfg.ThemeConfig; t != nil {
		if t.EditLinks && t.Repo == "" && t.DocsRepo == "" {
			errs = multierror.Append(errs, fmt.Errorf("themeConfig.editLinks requires themeConfig.repo or themeConfig.docsRepo"))
		}
		if t.Repo != "" && site.IsOutbound(t.Repo) {
			errs = validateURL("themeConfig.repo", t.Repo, errs)
		}
		for i, item := range t.Nav {
			errs = validateNavItem(fmt.Sprintf("themeConfig.nav[%d]", i), item, errs)
		}
		if t.Sidebar != nil {
			errs = validateSidebar(t.Sidebar, errs)
		}
	}
	seen := map[string]string{}
	for i, p := range cfg.Plugins {
		if !pluginName.MatchString(p.Name) {
			errs = multierror.Append(errs, fmt.Errorf("plugins[%d]: %q is not a valid plugin identifier", i, p.Name))
			continue
		}
		name := PluginPackage(p.Name)
		if first, ok := seen[name]; ok {
			errs = multierror.Append(errs, fmt.Errorf("plugins[%d]: plugin %s is declared more than once (as %s)", i, p.Name, first))
			continue
		}
		seen[name] = p.Name
	}
	return errs.ErrorOrNil()
}

// PluginPackage expands the short forms of a plugin identifier into the
// npm package the framework loads:
// `@vuepress/x` is `@vuepress/plugin-x`, `@org/x` is `@org/vuepress-plugin-x`,
// `@org` is `@org/vuepress-plugin` and `x` is `vuepress-plugin-x`
func PluginPackage(name string) string {
	const prefix = "vuepress-plugin"
	if !strings.HasPrefix(name, "@") {
		if strings.HasPrefix(name, prefix+"-") {
			return name
		}
		return prefix + "-" + name
	}
	scope, pkg, ok := strings.Cut(name, "/")
	switch {
	case !ok:
		return scope + "/" + prefix
	case scope == "@vuepress":
		if strings.HasPrefix(pkg, "plugin-") {
			return name
		}
		return scope + "/plugin-" + pkg
	case pkg == prefix || strings.HasPrefix(pkg, prefix+"-"):
		return name
	}
	return scope + "/" + prefix + "-" + pkg
}

func validateHeadTag(i int, tag site.HeadTag, errs *multierror.Error) *multierror.Error {
	if _, ok := headTags[strings.ToLower(tag.Tag)]; !ok {
		errs = multierror.Append(errs, fmt.Errorf("head[%d]: %q is not a head tag", i, tag.Tag))
	}
	names := map[string]struct{}{}
	for _, a := range tag.Attributes {
		if a.Name == "" {
			errs = multierror.Append(errs, fmt.Errorf("head[%d]: attribute name must not be empty", i))
			continue
		}
		if _, ok := names[strings.ToLower(a.Name)]; ok {
			errs = multierror.Append(errs, fmt.Errorf("head[%d]: attribute %s is declared more than once", i, a.Name))
		}
		names[strings.ToLower(a.Name)] = struct{}{}
	}
	for _, name := range requiredAttrs[strings.ToLower(tag.Tag)] {
		if v, ok := tag.Attr(name); !ok || strings.TrimSpace(v) == "" {
			errs = multierror.Append(errs, fmt.Errorf("head[%d]: %s tag requires attribute %s", i, tag.Tag, name))
		}
	}
	if len(tag.Attributes) == 0 && tag.Content == "" {
		errs = multierror.Append(errs, fmt.Errorf("head[%d]: %s tag has neither attributes nor content", i, tag.Tag))
	}
	return errs
}

func validateNavItem(field string, item site.NavItem, errs *multierror.Error) *multierror.Error {
	if strings.TrimSpace(item.Text) == "" {
		errs = multierror.Append(errs, fmt.Errorf("%s: text must not be empty", field))
	}
	switch {
	case item.Link != "" && len(item.Items) > 0:
		errs = multierror.Append(errs, fmt.Errorf("%s: link and items are mutually exclusive", field))
	case item.Link == "" && len(item.Items) == 0:
		errs = multierror.Append(errs, fmt.Errorf("%s: either link or items must be set", field))
	case item.Link != "":
		errs = validateLink(field+".link", item.Link, errs)
	}
	for i, child := range item.Items {
		errs = validateNavItem(fmt.Sprintf("%s.items[%d]", field, i), child, errs)
	}
	return errs
}

func validateSidebar(sidebar *site.Sidebar, errs *multierror.Error) *multierror.Error {
	sections := map[string]struct{}{}
	for _, section := range sidebar.Sections {
		field := fmt.Sprintf("themeConfig.sidebar[%s]", section.Path)
		if !strings.HasPrefix(section.Path, "/") || !strings.HasSuffix(section.Path, "/") {
			errs = multierror.Append(errs, fmt.Errorf("%s: section path must start and end with /", field))
		}
		if _, ok := sections[section.Path]; ok {
			errs = multierror.Append(errs, fmt.Errorf("%s: section is declared more than once", field))
		}
		sections[section.Path] = struct{}{}
		pages := map[string]struct{}{}
		for i, group := range section.Groups {
			if strings.TrimSpace(group.Title) == "" {
				errs = multierror.Append(errs, fmt.Errorf("%s[%d]: group title must not be empty", field, i))
			}
			if group.SidebarDepth != nil && *group.SidebarDepth < 0 {
				errs = multierror.Append(errs, fmt.Errorf("%s[%d]: sidebarDepth must not be negative", field, i))
			}
			for _, child := range group.Children {
				if site.IsOutbound(child.Path) {
					errs = validateURL(fmt.Sprintf("%s[%d]", field, i), child.Path, errs)
					continue
				}
				if strings.HasPrefix(child.Path, "/") && !strings.HasPrefix(child.Path, section.Path) {
					errs = multierror.Append(errs, fmt.Errorf("%s[%d]: page %s is outside of the section", field, i, child.Path))
				}
				if _, ok := pages[child.Path]; ok {
					errs = multierror.Append(errs, fmt.Errorf("%s[%d]: page %q is listed more than once", field, i, child.Path))
				}
				pages[child.Path] = struct{}{}
			}
		}
	}
	return errs
}

// validateLink accepts absolute URLs, site paths and page ids relative
// to the site root
func validateLink(field string, link string, errs *multierror.Error) *multierror.Error {
	if site.IsOutbound(link) {
		return validateURL(field, link, errs)
	}
	u, err := url.Parse(link)
	if err != nil {
		return multierror.Append(errs, fmt.Errorf("%s: %w", field, err))
	}
	if u.Host != "" {
		return multierror.Append(errs, fmt.Errorf("%s: %q has a host but no scheme", field, link))
	}
	if strings.TrimSpace(u.Path) == "" && u.Fragment == "" {
		return multierror.Append(errs, fmt.Errorf("%s: %q has no path", field, link))
	}
	return errs
}

func validateURL(field string, link string, errs *multierror.Error) *multierror.Error {
	u, err := url.Parse(link)
	if err != nil {
		return multierror.Append(errs, fmt.Errorf("%s: %w", field, err))
	}
	if _, ok := linkSchemes[u.Scheme]; !ok {
		return multierror.Append(errs, fmt.Errorf("%s: unsupported scheme %s in %s", field, u.Scheme, link))
	}
	if u.Scheme != "mailto" && u.Host == "" {
		return multierror.Append(errs, fmt.Errorf("%s: %s has no host", field, link))
	}
	return errs
}
