// Package trafficdash serves the RATP annual station traffic tables.
//
// TableCache loads the traffic and geocoded station files on demand and
// keeps the parsed tables keyed by file content, optionally reloading them
// when the files change on disk. Server exposes the dashboard views
// (key figures, traffic share, top correspondences, arrondissement
// drill-down and map layer) as a JSON API built on chi.
package trafficdash
