// Package types defines the Catalog interface, the game catalog entities,
// and the standard errors shared by the storage backend, the interactive
// shell, and the command-line interface.
package types
