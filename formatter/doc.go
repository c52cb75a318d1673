// Package formatter provides response serialization for the dashboard.
//
// This package is organized into:
// - json.go: JSON serialization of API payloads
// - csv.go: CSV export of a filtered traffic table
package formatter
