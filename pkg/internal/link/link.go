// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package link

import (
	"fmt"
	"net/url"
	"strings"
)

// Build joins the elements of a resource location or site path. Repeated
// slashes are collapsed, a leading and a trailing slash are kept, and
// spaces are escaped as %20
func Build(elem ...string) (string, error) {
	if len(elem) == 0 {
		return "", nil
	}
	joined, err := url.JoinPath(elem[0], elem[1:]...)
	if err != nil {
		return "", fmt.Errorf("failed to join %v: %w", elem, err)
	}
	if joined == "" {
		return ".", nil
	}
	unescaped, err := url.QueryUnescape(joined)
	if err != nil {
		return "", fmt.Errorf("failed to unescape %s: %w", joined, err)
	}
	return strings.ReplaceAll(unescaped, " ", "%20"), nil
}
