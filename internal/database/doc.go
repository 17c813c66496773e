// Package database stores audit history in SQLite.
//
// Every successfully audited world is saved as one row holding its counts,
// the digest of the world file and the full report as JSON. The history
// command reads the rows back to show how a world's STK share changed
// between runs.
//
// The pure Go modernc.org/sqlite driver is used so the binary builds
// without cgo.
package database
