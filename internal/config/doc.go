// Package config reads the tox.ini-style configuration file that declares
// the test environments mosrun can run.
//
// The format is INI with section headers [tox], [testenv], [testenv:<name>]
// and [flake8]. Values may span multiple lines via indented continuation
// lines, and newline-separated values represent ordered lists.
package config
