// Package types defines the Store interface that persists AAC boards, the
// Config that selects and parameterizes a Store backend, and the standard
// configuration and storage errors.
package types
