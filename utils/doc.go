// Package utils provides display helpers shared by the HTTP API and the CLI.
//
// It contains:
//   - Traffic number formatting with a space as thousands separator
//   - Station name title casing
package utils
