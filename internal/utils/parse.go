package utils

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes a TOML file into dst. Keys missing from the file keep the values already in dst.
func LoadTOMLFile(configPath string, dst any) error {
	meta, err := toml.DecodeFile(configPath, dst)
	if err != nil {
		log.Warnf("TOML parsing error in %s: %v. Attempting partial recovery...", configPath, err)
		return fmt.Errorf("decode %s: %w", configPath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Debugf("Ignoring unknown config keys in %s: %v", configPath, undecoded)
	}
	return nil
}

// ParseTOMLWithRecovery decodes a TOML file into a generic map, so sections
// with mistyped values can still be picked apart key by key.
func ParseTOMLWithRecovery(configPath string) (map[string]any, error) {
	raw := make(map[string]any)
	if _, err := toml.DecodeFile(configPath, &raw); err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v", configPath, err)
		return nil, err
	}
	return raw, nil
}

// ExtractSection returns a table from parsed TOML data
func ExtractSection(data map[string]any, sectionName string) (map[string]any, bool) {
	section, ok := data[sectionName].(map[string]any)
	return section, ok
}

// ExtractInt64 reads an integer key; TOML integers decode as int64
func ExtractInt64(data map[string]any, key string) (int, bool) {
	if val, ok := data[key].(int64); ok {
		return int(val), true
	}
	return 0, false
}

// ExtractString reads a string key
func ExtractString(data map[string]any, key string) (string, bool) {
	val, ok := data[key].(string)
	return val, ok
}

// ExtractBool reads a bool key
func ExtractBool(data map[string]any, key string) (bool, bool) {
	val, ok := data[key].(bool)
	return val, ok
}
