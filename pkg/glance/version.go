// Package glance exposes build metadata for the glance tool.
package glance

// Version is the current glance release.
const Version = "0.1.0"
