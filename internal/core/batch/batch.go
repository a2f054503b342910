// Package batch splits work into bounded, order-preserving chunks.
package batch

import "fmt"

const (
	// MaxWriteBatch is the largest number of rows committed in one store
	// transaction.
	MaxWriteBatch = 500

	// MaxSendBatch is the largest number of messages handed to a Sender in
	// one call.
	MaxSendBatch = 500
)

// Reduce folds fn over consecutive chunks of items, each holding at most
// batchSize elements. Chunks are visited in order and only the last one may
// be shorter than batchSize. An empty items slice returns initial untouched.
//
// Each chunk is a capped view of items: fn may read it but must not retain it
// past the call if items is later mutated. Reduce panics when batchSize is
// not positive.
func Reduce[T, R any](batchSize int, items []T, fn func(acc R, chunk []T) R, initial R) R {
	if batchSize <= 0 {
		panic(fmt.Sprintf("batch: invalid batch size %d", batchSize))
	}

	acc := initial
	for lo := 0; lo < len(items); lo += batchSize {
		hi := min(lo+batchSize, len(items))
		acc = fn(acc, items[lo:hi:hi])
	}
	return acc
}

// Split partitions items into consecutive chunks of at most batchSize
// elements. Concatenating the result reproduces items. Split panics when
// batchSize is not positive.
func Split[T any](batchSize int, items []T) [][]T {
	if batchSize <= 0 {
		panic(fmt.Sprintf("batch: invalid batch size %d", batchSize))
	}

	chunks := make([][]T, 0, (len(items)+batchSize-1)/batchSize)
	return Reduce(batchSize, items, func(acc [][]T, chunk []T) [][]T {
		return append(acc, chunk)
	}, chunks)
}
