// Package core holds the types and helpers shared by the integrator models:
// the error taxonomy, the declared sample format of the hardware input port,
// and small generic slice utilities.
package core
