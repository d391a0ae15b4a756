// Package aips establishes the process environment required by the
// AIPS package before ParselTongue or any AIPS task runs.
//
// The bootstrap mirrors what a classic AIPS login shell does: source
// the LOGIN.SH procedure once, then (re-)register data and printer
// devices from the version tree. External scripts are treated as
// opaque environment contributors; their variables are absorbed
// without interpretation.
package aips

import (
	"os"
	"sort"
	"strings"
)

// Environment is a process environment as a name to value mapping.
type Environment map[string]string

// FromOS captures the current process environment.
func FromOS() Environment {
	return FromSlice(os.Environ())
}

// FromSlice builds an Environment from "KEY=VALUE" entries, as
// produced by os.Environ or an env(1) dump. Malformed entries are
// skipped.
func FromSlice(entries []string) Environment {
	env := make(Environment, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Clone returns an independent copy of the environment.
func (e Environment) Clone() Environment {
	clone := make(Environment, len(e))
	for k, v := range e {
		clone[k] = v
	}
	return clone
}

// Get returns the value for key, or "" when unset.
func (e Environment) Get(key string) string {
	return e[key]
}

// Lookup returns the value for key and whether it is set.
func (e Environment) Lookup(key string) (string, bool) {
	value, ok := e[key]
	return value, ok
}

// Set assigns key to value.
func (e Environment) Set(key, value string) {
	e[key] = value
}

// Slice renders the environment as sorted "KEY=VALUE" entries,
// suitable for exec.Cmd.Env.
func (e Environment) Slice() []string {
	entries := make([]string, 0, len(e))
	for k, v := range e {
		entries = append(entries, k+"="+v)
	}
	sort.Strings(entries)
	return entries
}

// Keys returns the sorted variable names.
func (e Environment) Keys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Apply mutates the ambient process environment so that every
// variable in e is set. Variables absent from e are left alone;
// sourced procedures only ever add or overwrite.
func (e Environment) Apply() error {
	for _, k := range e.Keys() {
		if current, ok := os.LookupEnv(k); ok && current == e[k] {
			continue
		}
		if err := os.Setenv(k, e[k]); err != nil {
			return err
		}
	}
	return nil
}

// Diff returns the variables in e that are absent from base or have
// a different value there.
func (e Environment) Diff(base Environment) Environment {
	changed := make(Environment)
	for k, v := range e {
		if baseValue, ok := base[k]; !ok || baseValue != v {
			changed[k] = v
		}
	}
	return changed
}
