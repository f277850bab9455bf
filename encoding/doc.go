// Package encoding implements the wire-level building blocks of the tiny
// layout: the length prefix written ahead of every sequence, bit-packed
// boolean arrays and the text codecs selected by format.StringEncoding.
//
// Everything here writes into caller-provided, pre-sized windows and reads
// from plain byte slices. Nothing allocates on the write path except the text
// codecs that delegate to golang.org/x/text.
//
// # Length prefix
//
// A sequence length n, where -1 marks an absent value, is written either as a
// fixed 4-byte signed integer or, in variable mode, in the smallest of three
// widths:
//
//	-1 <= n <= 127         1 byte   int8(n)
//	n fits in int16        3 bytes  0xFE, int16(n)
//	otherwise              5 bytes  0xFC, int32(n)
//
// Multi-byte integers use the byte order of the supplied endian.EndianEngine.
//
// For text the prefix counts UTF-16 code units, not payload bytes, under every
// scheme. The payload size follows from the scheme and the text itself.
//
// # Boolean packing
//
// Packed booleans occupy ceil(n/8) bytes. Element i lives in byte i/8 at bit
// 7-(i%8), so the first element is the most significant bit. Unused trailing
// bits are zero.
package encoding
