//go:build !romtrace

package config

const TraceEvery = 0
