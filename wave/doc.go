// Package wave implements the discrete water-ripple simulation: a height
// field with double-buffered state and the finite-difference solver that
// steps and perturbs it.
//
// The package is renderer agnostic. A driver calls Step once per tick and
// reads the current heights; input adapters translate pointer events into
// grid coordinates and call Inject.
package wave
