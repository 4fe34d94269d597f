package config

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	mosrunerrors "mosrun.dev/mosrun/internal/errors"
)

// sectionHeaderRegex matches a well-formed section header line, e.g. [testenv:neutron]
var sectionHeaderRegex = regexp.MustCompile(`^\[([^\[\]]+)\]$`)

// iniKey is a single key with its (possibly multi-line) value, in source order
type iniKey struct {
	Name  string
	Value string
	Line  int
}

// iniSection is a named section with its keys in source order
type iniSection struct {
	Name string
	Line int
	Keys []*iniKey
}

// Value returns the value for a key and whether it was declared
func (s *iniSection) Value(name string) (string, bool) {
	// Last declaration wins, matching tox behavior
	for i := len(s.Keys) - 1; i >= 0; i-- {
		if s.Keys[i].Name == name {
			return s.Keys[i].Value, true
		}
	}
	return "", false
}

// iniFile is the parsed representation of an INI file
type iniFile struct {
	Path     string
	Sections []*iniSection
}

// Section returns the section with the given name, or nil
func (f *iniFile) Section(name string) *iniSection {
	for _, s := range f.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// parseINI reads an INI document, preserving section and key order.
// Duplicate section names and malformed headers are ParseErrors.
func parseINI(path string, r io.Reader) (*iniFile, error) {
	file := &iniFile{Path: path}
	seen := map[string]bool{}

	var current *iniSection
	var lastKey *iniKey

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		// Blank lines end any continuation in progress
		if trimmed == "" {
			lastKey = nil
			continue
		}

		// Comment lines
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}

		// Continuation: an indented line belonging to the previous key
		if line != trimmed && (line[0] == ' ' || line[0] == '\t') {
			if lastKey == nil {
				return nil, mosrunerrors.NewParseError(path, lineNum, "continuation line without a preceding key")
			}
			lastKey.Value += "\n" + trimmed
			continue
		}

		// Section header
		if strings.HasPrefix(trimmed, "[") {
			m := sectionHeaderRegex.FindStringSubmatch(trimmed)
			if m == nil {
				return nil, mosrunerrors.NewParseError(path, lineNum, "malformed section header %q", trimmed)
			}
			name := strings.TrimSpace(m[1])
			if name == "" {
				return nil, mosrunerrors.NewParseError(path, lineNum, "empty section name")
			}
			if seen[name] {
				return nil, mosrunerrors.NewParseError(path, lineNum, "duplicate section [%s]", name)
			}
			seen[name] = true
			current = &iniSection{Name: name, Line: lineNum}
			file.Sections = append(file.Sections, current)
			lastKey = nil
			continue
		}

		// Key = value
		eq := strings.Index(line, "=")
		if eq < 0 {
			return nil, mosrunerrors.NewParseError(path, lineNum, "expected 'key = value', got %q", trimmed)
		}
		if current == nil {
			return nil, mosrunerrors.NewParseError(path, lineNum, "key %q declared before any section", strings.TrimSpace(line[:eq]))
		}
		key := strings.TrimSpace(line[:eq])
		if key == "" {
			return nil, mosrunerrors.NewParseError(path, lineNum, "empty key name")
		}
		lastKey = &iniKey{
			Name:  key,
			Value: strings.TrimSpace(line[eq+1:]),
			Line:  lineNum,
		}
		current.Keys = append(current.Keys, lastKey)
	}

	if err := scanner.Err(); err != nil {
		return nil, mosrunerrors.NewParseError(path, 0, "read failed: %v", err)
	}

	return file, nil
}

// splitList splits a newline-separated list value, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitEnvList splits the [tox] envlist value, which allows both
// newline and comma separators
func splitEnvList(value string) []string {
	var out []string
	for _, line := range strings.Split(value, "\n") {
		for _, name := range strings.Split(line, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}
