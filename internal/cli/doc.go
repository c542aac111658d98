// Package cli is responsible for parsing command-line arguments, merging
// them over the YAML config, configuring logging, and running the beam
// simulation on the chosen input. It also owns process-level concerns such
// as exit codes.
package cli
