// Package deps models the dependency specifiers an environment declares:
// registry packages with optional version pins, local requirements files,
// and version-control source references. Installation itself is delegated
// to pip; mosrun only classifies specifiers and forwards them.
package deps
