// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package version

const unset = "binary was not built properly"

// Version is set at build time via -ldflags. It is printed by the version
// command.
var Version = unset

// Get returns the version stamped into generated files, dev when the
// binary was built without a version
func Get() string {
	if Version == unset || Version == "" {
		return "dev"
	}
	return Version
}
