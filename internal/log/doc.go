// Package log builds the slog loggers used by stkscan.
//
// Log records go to stderr so they never mix with report lines on stdout.
// The PathHandler wrapper rewrites the user's home directory in attribute
// values to "~", which keeps shared logs free of account names:
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("world loaded", "path", "/home/alice/zzt/TOWN.ZZT")
//	// ... path=~/zzt/TOWN.ZZT
package log
