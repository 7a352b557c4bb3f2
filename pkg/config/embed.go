package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/settings.toml
var defaultSettings []byte

// Template returns the commented default settings file.
func Template() string {
	return string(defaultSettings)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
