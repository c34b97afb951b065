// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

// Config is the docsite configuration file. Values are defaults that
// command line flags override
type Config struct {
	// CacheHome is the directory of the GitHub HTTP cache
	CacheHome *string `yaml:"cacheHome,omitempty"`
	// Sources are the credentials per GitHub instance
	Sources []*Source `yaml:"sources,omitempty"`
	// ResourceMappings map URL prefixes to local directories
	ResourceMappings map[string]string `yaml:"resourceMappings,omitempty"`
	// S3Region is the region of s3:// resources
	S3Region *string `yaml:"s3Region,omitempty"`
	// HostsToReport are hosts whose broken links fail link validation
	HostsToReport []string `yaml:"hostsToReport,omitempty"`
}

// Source is a GitHub instance
type Source struct {
	Host        string `yaml:"host"`
	Credentials `yaml:"credentials"`
}

// Credentials holds repository credential data
type Credentials struct {
	Username *string `yaml:"username,omitempty"`
	// OAuthToken is the token itself
	OAuthToken *string `yaml:"oauthToken,omitempty"`
	// OAuthTokenEnv is the environment variable holding the token
	OAuthTokenEnv *string `yaml:"oauthTokenEnv,omitempty"`
}
