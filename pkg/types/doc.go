// Package types defines the entity types, the DocumentStore interface,
// configuration, and standard errors for the price calculator storage core.
package types
