// Package config defines the format-agnostic generator settings, their
// defaults, and the Loader interface for reading settings from a file.
//
// The `config.Settings` value is the single source of truth for the app
// package. The HCL implementation of Loader lives in the hcl package.
package config
