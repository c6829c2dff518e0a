//go:build release

package pplog

// Enabled is false in release builds. Every package entry point is guarded
// by it, so the compiler drops their bodies entirely.
const Enabled = false
