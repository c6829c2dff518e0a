//go:build !release

package pplog

// Enabled is true in development builds: the package entry points log.
const Enabled = true
