/*
Package config loads the dashboard configuration from YAML.

A missing key keeps its default value (see Default), so a minimal file only
needs to name what differs:

	server:
	  port: 8080
	data:
	  ridershipPath: /srv/data/data_ratp.csv
	  geocodePath: /srv/data/stations_geocode.csv
	  watch: true
	schema:
	  correspondences: [correspondance_1, correspondance_2, correspondance_3]
	networks:
	  aliases:
	    "Métro": Metro

The environment variables PORT, DASHBOARD_RIDERSHIP_PATH and
DASHBOARD_GEOCODE_PATH override the file. The merged result is validated
with go-playground/validator.
*/
package config
