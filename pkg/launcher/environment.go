package launcher

import (
	"fmt"
	"os"
)

// Environment is an ordered KEY=VALUE table built from an explicit
// allow-list. Setting a key that is already present replaces its value in
// place, so the rendered table never contains duplicate keys. It is the
// only construction path for the environment handed to exec; the inherited
// process environment is never copied wholesale.
type Environment struct {
	keys   []string
	values map[string]string
}

func NewEnvironment() *Environment {
	return &Environment{
		values: make(map[string]string),
	}
}

// Set adds a variable, or replaces its value if the key is already
// present. Insertion order is preserved across replacement.
func (e *Environment) Set(key, value string) {
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// PassthroughExact copies key from the inherited process environment into
// the table, but only when the inherited value matches want exactly.
// Returns whether the variable was copied. This is the only way an
// inherited value can reach the table.
func (e *Environment) PassthroughExact(key, want string) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v != want {
		return false
	}

	e.Set(key, v)
	return true
}

// Environ renders the table as KEY=VALUE strings in insertion order,
// suitable for the envv argument of an exec call.
func (e *Environment) Environ() []string {
	environ := make([]string, 0, len(e.keys))
	for _, k := range e.keys {
		environ = append(environ, fmt.Sprintf("%s=%s", k, e.values[k]))
	}

	return environ
}
