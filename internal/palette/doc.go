// Package palette defines which color codes are considered standard for each
// ZZT element type.
//
// The table is hand-curated and built once from literal data. Most element
// types share one of a few recurring palettes:
//   - StandardHack: the colors an unmodified editor produces for most types
//   - Passage: the background-colored variants a passage can take
//   - Single: one fixed color for elements whose look never changes
//   - Unrestricted: no restriction, every color is standard
//
// Element types outside [0, MaxType) are not part of the format. Looking them
// up yields an *UnknownTypeError, which callers treat as a sign of a corrupted
// board rather than as an unrestricted type.
package palette
