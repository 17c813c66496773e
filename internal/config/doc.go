// Package config provides configuration structures and utilities for stkscan.
// It defines the audit options, report format selection and the history
// database location, and loads the optional .stkscan YAML file.
package config
