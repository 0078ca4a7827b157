// Package cli assembles the repostatus command tree, wiring configuration
// loading and structured logging into the individual subcommands.
package cli
