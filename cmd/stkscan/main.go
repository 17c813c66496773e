// Package main provides the entry point for the stkscan CLI.
//
// stkscan audits ZZT world files for elements drawn in colors the ZZT
// editor cannot produce for their type (STK colors), and reports per-world
// statistics.
//
// Usage:
//
//	stkscan world WORLD.ZZT
//	stkscan detail WORLD.ZZT
//	stkscan all
//	stkscan dir SUBDIR
//
// See --help for all available options.
package main

// main is the entry point for stkscan.
func main() {
	Execute()
}
