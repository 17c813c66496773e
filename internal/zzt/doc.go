// Package zzt reads ZZT world files.
//
// A world file starts with a fixed 512-byte header followed by the boards.
// Each board stores its title, its 60x25 tile grid compressed as
// (count, element, color) runs, and trailing board settings and stats.
// Only the title and the tile grid are decoded; everything else is skipped
// using the size prefix every board carries.
//
// Discover lists world files in a directory. Loader adapts the reader to
// the audit runner.
package zzt
