package execx

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

// Env is a set of environment variables.
type Env map[string]string

func EnvFromEnviron() Env {
	return EnvFromSlice(os.Environ())
}

func NewEnv() Env {
	return Env(make(map[string]string))
}

func EnvFromMap(envMap map[string]string) Env {
	if envMap == nil {
		return NewEnv()
	}
	return Env(envMap)
}

func EnvFromSlice(envSlice []string) Env {
	env := NewEnv()
	for _, x := range envSlice {
		k, v, ok := strings.Cut(x, "=")
		if !ok {
			continue
		}
		env.Set(k, v)
	}
	return env
}

func (e Env) Get(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

func (e Env) Set(key, value string) {
	e[key] = value
}

// Add returns a new Env; other wins on conflicts.
func (e Env) Add(other Env) Env {
	result := maps.Clone(e)
	if result == nil {
		result = NewEnv()
	}
	maps.Copy(result, other)
	return result
}

// IntoSlice converts into os.Environ format, sorted by key.
func (e Env) IntoSlice() []string {
	keys := slices.Sorted(maps.Keys(e))
	result := make([]string, len(keys))
	for i, k := range keys {
		result[i] = fmt.Sprintf("%s=%s", k, e[k])
	}
	return result
}

func (e Env) get(key string) string {
	return e[key]
}

const expandMaxAttempts = 10

// Expand expands environment variables in target.
func (e Env) Expand(target string) string {
	var (
		result string
		count  int
	)
	for result = os.Expand(target, e.get); result != target && count < expandMaxAttempts; count++ {
		target = result
		result = os.Expand(result, e.get)
	}
	return result
}

func (e Env) ExpandStrings(target []string) []string {
	result := make([]string, len(target))
	for i, t := range target {
		result[i] = e.Expand(t)
	}
	return result
}
