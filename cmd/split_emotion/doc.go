// Package main provides the program which splits a RAVDESS directory into
// train, validation and test lists and saves them as a YAML manifest, so
// that training runs can share one split.
package main
