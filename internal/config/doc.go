// Package config manages user-level settings stored at ~/.fastforge/config.yaml.
// It provides functions to load, read, and write configuration keys such as the
// default database URL substituted into generated projects.
package config
