// Package store reads and writes the alias file (~/.config/ga/aliases.json).
// The file is validated against an embedded JSON schema on load and replaced
// as a whole on save, so readers never observe a half-written document.
package store
