// Package config holds application configuration structures and their
// validation. Settings are validated before use so misconfiguration surfaces
// at startup rather than mid-operation.
package config
