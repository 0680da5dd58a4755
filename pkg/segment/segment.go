// Package segment splits a byte stream into fixed-size chunks and joins
// decoded chunks back together.
package segment

import (
	"io"
	"iter"
)

// Padding returns how many zero bytes complete the last chunk of an n-byte
// stream.
func Padding(n, size int) int {
	return (size - n%size) % size
}

// Count returns the number of chunks an n-byte stream splits into.
func Count(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Chunks yields the chunks of data in order. Every chunk is exactly size
// bytes; the last one is a zero-padded copy, the others share memory with
// data. Empty data yields nothing.
func Chunks(data []byte, size int) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		if size <= 0 {
			return
		}
		for i, off := 0, 0; off < len(data); i, off = i+1, off+size {
			end := off + size
			if end > len(data) {
				last := make([]byte, size)
				copy(last, data[off:])
				yield(i, last)
				return
			}
			if !yield(i, data[off:end:end]) {
				return
			}
		}
	}
}

// Reassemble writes chunks to w in order and returns the number of bytes
// written. Padding is not stripped.
func Reassemble(w io.Writer, chunks iter.Seq[[]byte]) (int64, error) {
	var total int64
	for chunk := range chunks {
		n, err := w.Write(chunk)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Join concatenates chunks into a single buffer.
func Join(chunks [][]byte) []byte {
	n := 0
	for _, c := range chunks {
		n += len(c)
	}
	out := make([]byte, 0, n)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
