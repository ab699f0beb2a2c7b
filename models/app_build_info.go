// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable stands in for build metadata the linker did not set.
const notAvailable = "N/A"

// AppBuildInfo is the version metadata injected with -ldflags at build time.
// The version stays empty when unset so callers can refuse to serve an
// unversioned build; date and commit default to "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	if buildDate == "" {
		buildDate = notAvailable
	}
	if buildCommit == "" {
		buildCommit = notAvailable
	}

	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String formats the metadata for startup banners.
func (a AppBuildInfo) String() string {
	version := a.buildVersion
	if version == "" {
		version = notAvailable
	}
	return fmt.Sprintf("version %s, built %s, commit %s", version, a.buildDate, a.buildCommit)
}
