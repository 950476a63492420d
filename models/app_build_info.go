// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo carries immutable build-time metadata embedded into the client
// binary with linker flags. Empty values are reported as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// Version returns the semantic version of the build or "N/A".
func (a AppBuildInfo) Version() string { return orNA(a.version) }

// Date returns the build timestamp or "N/A".
func (a AppBuildInfo) Date() string { return orNA(a.date) }

// Commit returns the source-control commit of the build or "N/A".
func (a AppBuildInfo) Commit() string { return orNA(a.commit) }

func orNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

// WithVersion returns a copy of a whose version is v when a carries no
// version of its own.
func (a AppBuildInfo) WithVersion(v string) AppBuildInfo {
	if strings.TrimSpace(a.version) != "" {
		return a
	}
	a.version = v
	return a
}
