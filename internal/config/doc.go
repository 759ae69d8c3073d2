// Package config manages user-level settings stored at ~/.shellsmith/config.yaml.
// It provides functions to load, read, and write configuration keys such as the
// default author name and output directory used by script generation.
package config
