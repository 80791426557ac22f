// Package types defines the cereal record, the uniform response envelope,
// the filter builder, and standard errors shared by the store and the
// HTTP layer.
package types
