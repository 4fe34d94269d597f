// Package registry holds the in-memory representation of all parsed
// environment definitions: load-once lookup by name, and placeholder
// resolution of command lines against caller-supplied posargs and paths.
package registry
