// Package shell provides shell integration for rualdi.
// It renders the wrapper functions (bash, zsh, fish) that turn
// "rualdi resolve" output into a cd in the calling shell, and installs the
// eval line that loads them into the user's rc file.
package shell
