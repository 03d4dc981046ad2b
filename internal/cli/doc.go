// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It merges
// flags, positional edge-list paths and an optional HCL job file into a
// single config.Config.
package cli
