// Package config loads run defaults for the checksum tool
// from a YAML file. Fields absent from the file keep the
// built-in defaults.
package config
