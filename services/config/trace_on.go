//go:build romtrace

package config

// TraceEvery is the trace period in iterations. At roughly 10M iterations a
// second on a 125MHz RP2040 this is about ten lines a second.
const TraceEvery = 1 << 20
