// Package utils groups shared infrastructure for the repostatus CLI:
// a zap logger factory, a Viper-backed configuration loader, and helpers for
// passing values through cobra command contexts.
package utils
