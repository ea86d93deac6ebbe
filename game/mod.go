// Package game holds the rules of Ludo: track geometry, piece positions,
// move resolution, legality, captures and win detection. Every function is
// pure and works on Board snapshots.
package game
