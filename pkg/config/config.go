// Package config loads read-only key/value configuration from YAML or
// .properties files, with environment overrides. Every fallible step is
// expressed as a try.Try.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ib-77/tryto/pkg/try"
)

// ErrMissingKey is returned for lookups of keys that are not configured.
var ErrMissingKey = errors.New("config: missing key")

// Config holds configuration values. It is not modified after loading and
// can be shared between goroutines.
type Config struct {
	values map[string]string
	source string
}

// New creates a Config from values.
func New(values map[string]string) *Config {
	c := &Config{values: make(map[string]string, len(values))}
	for k, v := range values {
		c.values[k] = v
	}
	return c
}

// Load reads a configuration file. Files ending in .yaml or .yml are parsed
// as YAML with nested keys joined by dots; anything else is parsed as a
// .properties file.
func Load(path string) try.Try[*Config] {
	var f *os.File
	data := try.To(func() ([]byte, error) {
		var err error
		if f, err = os.Open(path); err != nil {
			return nil, err
		}
		return io.ReadAll(f)
	}, func() error {
		if f == nil {
			return nil
		}
		return f.Close()
	})

	return try.Map(data, func(b []byte) (*Config, error) {
		values, err := parse(path, b)
		if err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		try.Logger().Debug("config: loaded", "path", path, "keys", len(values))
		return &Config{values: values, source: path}, nil
	})
}

// Locate loads path, or defaultPath when path does not exist. When neither
// exists the result is an empty Config. Other errors are kept.
func Locate(path, defaultPath string) try.Try[*Config] {
	missing := func(err error) bool { return errors.Is(err, fs.ErrNotExist) }

	return Load(path).RecoverWith(func(err error) try.Try[*Config] {
		if !missing(err) {
			return try.OfFailure[*Config](err)
		}
		try.Logger().Debug("config: falling back to default", "path", path, "default", defaultPath)
		return Load(defaultPath)
	}).RecoverWith(func(err error) try.Try[*Config] {
		if !missing(err) {
			return try.OfFailure[*Config](err)
		}
		return try.Of(New(nil))
	})
}

func parse(path string, data []byte) (map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseProperties(data)
	}
}

// WithEnv returns a copy of c overridden by environment variables starting
// with prefix and an underscore. APP_HTTP_PORT with prefix APP sets
// http.port.
func (c *Config) WithEnv(prefix string) *Config {
	out := New(c.values)
	out.source = c.source

	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(key, prefix+"_") {
				continue
			}
			key = strings.TrimPrefix(key, prefix+"_")
		}
		out.values[strings.ToLower(strings.ReplaceAll(key, "_", "."))] = value
	}
	return out
}

// Source is the file the values were read from, empty if none.
func (c *Config) Source() string {
	return c.source
}

func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Property looks up key.
func (c *Config) Property(key string) try.Option[string] {
	if v, ok := c.values[key]; ok {
		return try.Some(v)
	}
	return try.None[string]()
}

// PropertyOr looks up key, returning def when it is missing.
func (c *Config) PropertyOr(key, def string) string {
	return c.Property(key).OrElse(def)
}

// String looks up key, failing with ErrMissingKey when it is missing.
func (c *Config) String(key string) try.Try[string] {
	return c.Property(key).ToTry(fmt.Errorf("%w: %s", ErrMissingKey, key))
}

func (c *Config) Int(key string) try.Try[int] {
	return convert(c.String(key), key, strconv.Atoi)
}

func (c *Config) Bool(key string) try.Try[bool] {
	return convert(c.String(key), key, strconv.ParseBool)
}

func (c *Config) Duration(key string) try.Try[time.Duration] {
	return convert(c.String(key), key, time.ParseDuration)
}

func convert[T any](raw try.Try[string], key string, parse func(string) (T, error)) try.Try[T] {
	return try.Map(raw, func(s string) (T, error) {
		v, err := parse(strings.TrimSpace(s))
		if err != nil {
			return v, fmt.Errorf("config: key %s: %w", key, err)
		}
		return v, nil
	})
}
