// Package workspace locates the workspace root: the nearest ancestor of a
// starting directory that contains one of the marker entries in [Markers].
package workspace
