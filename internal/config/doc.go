// SPDX-License-Identifier: EPL-2.0

// Package config loads ttswav settings from a YAML file, .env files and
// TTSWAV_* environment variables, and validates each section.
package config
