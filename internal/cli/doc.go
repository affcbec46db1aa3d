// Package cli defines the ga command line. There is a single root command;
// flags select the mode (show, add/update) and an optional positional
// argument selects run mode. Business logic lives in the store, alias and
// launcher packages; this package wires them together and maps errors to
// exit codes.
package cli
