// Package core holds numeric helpers shared by the seismic and rock-physics
// packages, and the [DomainError] type used to flag samples where a
// closed-form formula leaves its valid input domain.
package core
