// Package batch splits a slice into fixed-size chunks and runs a callback over
// them, either in order or on a bounded pool of goroutines.
//
// The engine uses it to evaluate long measurement series: each chunk carries
// the offset of its first element, so callbacks can write results into a
// pre-sized slice without coordination and the caller keeps the input order.
package batch
