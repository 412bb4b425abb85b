// Package format renders checksum result rows, either
// through a template with {digest}, {path} and {algorithm}
// placeholders or as a JSON array.
package format
