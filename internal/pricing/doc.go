// Package pricing holds the numerical core: the Black-Scholes call price,
// its implied-volatility inversion by bisection, and an annualized
// volatility estimate of the underlying from its quote spread.
package pricing
