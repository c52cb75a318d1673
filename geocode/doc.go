// Package geocode loads the pre-geocoded station table.
//
// The file is a conventional comma-delimited CSV with at least the columns
// station, lat and lon. The columns reseau, trafic and nb_corr are carried
// through for map hover text when present. Rows whose coordinates are missing
// or out of range are kept; consumers that draw a map filter them out with
// GeoStation.HasCoordinates.
package geocode
