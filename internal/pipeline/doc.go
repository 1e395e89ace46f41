// Package pipeline sequences the per-record transform: gap filling, time
// to expiration, mid prices, the realized-volatility estimate, and the
// implied-volatility inversion, producing one normalized Record per quote
// in input order.
package pipeline
