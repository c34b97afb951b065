// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"fmt"

	"github.com/gardener/docsite/pkg/pages"
	"github.com/hashicorp/go-multierror"
)

// Pages reports every sidebar page and navigation link whose markdown
// file does not exist
func Pages(resolved *pages.Resolved) error {
	var errs *multierror.Error
	if resolved == nil {
		return nil
	}
	for _, s := range resolved.Sections {
		for i, g := range s.Groups {
			for _, p := range g.Pages {
				if !p.Resolved() {
					errs = multierror.Append(errs, fmt.Errorf("themeConfig.sidebar[%s][%d]: page %q has no file %s", s.Path, i, p.ID, p.File))
				}
			}
		}
	}
	for _, p := range resolved.Nav {
		if !p.Resolved() {
			errs = multierror.Append(errs, fmt.Errorf("themeConfig.nav: link %s has no file %s", p.ID, p.File))
		}
	}
	return errs.ErrorOrNil()
}
