// Package config loads printer configuration from embedded defaults, the
// user's XDG config file, an explicit file and the environment.
package config
