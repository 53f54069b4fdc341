/*
Package polynomials is a pure Go library of univariate polynomials over a generic coefficient ring.
Package ring defines the coefficient capability and its instances (machine numbers, big integers,
rationals, big floats and integers modulo p), package polynomial implements the polynomial value
type and its operations.
*/
package polynomials
