// Package audit classifies the colors of world elements against the
// standard palette table and aggregates the results per world.
//
// The work is layered leaf-first:
//   - Classifier decides the outcome for a single element
//   - Scanner.ScanBoard walks one board and stops that board, and only that
//     board, at the first element whose id is outside the format
//   - Scanner.Aggregate runs every board of a world and sums the counts
//   - Runner loads and aggregates a list of worlds strictly one after another
//
// Progress, detail records and corruption warnings are pushed to an Observer
// as they happen, so callers can stream them in order.
package audit
