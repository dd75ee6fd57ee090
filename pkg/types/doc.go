// Package types defines the scalar value variant, result envelopes,
// pagination bounds, and standard errors shared by the glance engine,
// CLI, and HTTP surface.
package types
