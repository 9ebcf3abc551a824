package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

const (
	APP_NAME = "sexpc"
	ENV_FILE = "env"
)

var DEFAULT_ENV_FILE string = `SEXPC_EMIT=c
SEXPC_DUMP=0
`

type Envs struct {
	EMIT string `env:"SEXPC_EMIT"`
	DUMP string `env:"SEXPC_DUMP"`
}

func (e *Envs) Emit() (EmitType, error) {
	return ParseEmitType(e.EMIT)
}

func (e *Envs) Dump() bool {
	return e.DUMP == "1" || e.DUMP == "true"
}

// vars returns the settable string fields of e keyed by their env tag, in
// declaration order.
func (e *Envs) vars() ([]string, map[string]reflect.Value) {
	v := reflect.ValueOf(e).Elem()
	keys := make([]string, 0, v.NumField())
	fields := make(map[string]reflect.Value, v.NumField())

	for i := 0; i < v.NumField(); i++ {
		key := v.Type().Field(i).Tag.Get("env")
		if key == "" || v.Field(i).Kind() != reflect.String {
			continue
		}
		keys = append(keys, key)
		fields[key] = v.Field(i)
	}
	return keys, fields
}

func (e *Envs) ShowAll(w io.Writer) {
	keys, fields := e.vars()
	for _, key := range keys {
		fmt.Fprintf(w, "%s='%s'\n", key, fields[key].String())
	}
}

// set reads KEY=VALUE lines into e. Blank lines, comments and keys e has no
// field for are skipped.
func (e *Envs) set(r io.Reader) error {
	_, fields := e.vars()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if field, found := fields[strings.TrimSpace(key)]; found {
			field.SetString(strings.TrimSpace(value))
		}
	}
	return scanner.Err()
}

// SetupEnvFile loads the env file from the config directory, creating it
// with the defaults on first use.
func SetupEnvFile() (*Envs, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	return LoadEnvFile(filepath.Join(dir, ENV_FILE))
}

func LoadEnvFile(path string) (*Envs, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		content = []byte(DEFAULT_ENV_FILE)
		err = os.WriteFile(path, content, 0644)
	}
	if err != nil {
		return nil, err
	}

	envs := &Envs{}
	if err := envs.set(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return envs, nil
}

// configDir is $XDG_CONFIG_HOME/sexpc when set, otherwise the platform's
// user config directory.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		var err error
		if base, err = os.UserConfigDir(); err != nil {
			return "", fmt.Errorf("could not determine config directory: %w", err)
		}
	}

	dir := filepath.Join(base, APP_NAME)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
