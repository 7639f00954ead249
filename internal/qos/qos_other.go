//go:build !darwin

package qos

// Apply is a no-op on platforms without per-thread QoS classes.
func Apply(Class) {}
