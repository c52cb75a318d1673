// Package views computes what the dashboard shows from the loaded tables:
// network and arrondissement filters, key figures, traffic share per network,
// the stations with the most correspondences and the map points.
//
// Every function returns new slices and leaves its input untouched. An empty
// input is always valid and yields empty results or zero-valued figures.
package views
