// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources, merged in order with
// earlier sources winning for every field they set:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path taken from sources 1 and 2)
//
// The main entry point is [GetStructuredConfig].
package config
