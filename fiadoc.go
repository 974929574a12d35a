// Package fiadoc provides an HTTP API for retrieving official FIA documents
// (race results, stewards' decisions, technical notices). It drives a headless
// browser against the FIA document portal, extracts structured metadata from
// the rendered listing, and serves it as JSON with optional season,
// championship, and event filtering, plus a pass-through download endpoint.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, resty/).
package fiadoc
