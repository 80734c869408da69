// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file and RSA_VISUALIZER_* environment variables,
// validated, and handed to the logger, the RSA engine and the REST layer.
package config
