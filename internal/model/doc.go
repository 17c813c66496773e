// Package model defines the data structures shared across stkscan.
//
// This package contains the following main types:
//   - World, Board, Element: the decoded shape of a ZZT world file
//   - WorldStats: standard and non-standard (STK) color counts for a world
//   - DetailRecord: one non-standard element with its board position
//   - CorruptionWarning: a board whose scan stopped on an unknown element id
//   - WorldReport: everything produced for one audited world
//
// The models are kept apart from the parser, the classifier and the report
// writers so that each of those packages depends only on this one.
// They serialize to JSON for report output and history storage.
package model
