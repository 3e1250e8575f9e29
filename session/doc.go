// Package session drives the insert-then-rebuild cycle over a point set.
//
// A Session stands in for the presentation layer of an interactive MST viewer: each
// Add appends one point, rebuilds the MST from scratch and replaces the stored edge
// list with the new result. Nothing here renders; callers translate edges into
// whatever primitives they draw.
//
// A Session is owned by one caller. Add must not be called concurrently.
package session
