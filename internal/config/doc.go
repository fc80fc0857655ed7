// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Remaining zero fields are filled with defaults before validation. The main
// entry point is [GetStructuredConfig], shared by the web server and the
// terminal client.
package config
