// Package launcher runs a resolved command in the user's shell.
//
// Most commands run in a throwaway interactive subshell (`$SHELL -i -c cmd`)
// whose exit status becomes ga's. A `cd <dir>` command instead changes the
// working directory and replaces the ga process with a login shell, so the
// user ends up in a fresh shell sitting in the new directory.
package launcher
