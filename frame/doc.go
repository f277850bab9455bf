// Package frame wraps serialized payloads in a small self-describing envelope
// for storage and transport.
//
// The core serializer layout has no header and trusts the reader to know the
// settings and the byte order of the writer. A frame records enough to reject
// data that cannot be read safely: a magic number, a format version, the byte
// order of the writing host, the compression applied to the payload, and an
// optional xxHash64 checksum of the uncompressed payload.
//
// Frame layout:
//
//	offset  size  field
//	0       2     magic 0x7A51, little-endian
//	2       1     version
//	3       1     flags (bit 0: big-endian writer, bit 1: checksum present)
//	4       1     compression (format.CompressionType)
//	5       3     reserved, zero
//	8       4     raw payload size, little-endian
//	12      4     stored payload size, little-endian
//	16      n     stored payload
//	16+n    8     xxHash64 of the raw payload, little-endian (optional)
//
// Frames can be concatenated; Header.FrameSize reports where the next one
// starts.
package frame
