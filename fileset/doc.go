// Package fileset resolves command-line paths to regular
// files with a depth-limited recursive directory search,
// and concatenates file contents into a single message
// buffer for checksumming.
package fileset
