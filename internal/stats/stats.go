// Package stats holds the process-wide counters exported by tiny.
package stats

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

var set = metrics.NewSet()

var (
	SerializeTotal      = set.NewCounter("tiny_serialize_total")
	SerializeBytesTotal = set.NewCounter("tiny_serialize_bytes_total")
	DeserializeTotal    = set.NewCounter("tiny_deserialize_total")
	BufferGrowTotal     = set.NewCounter("tiny_buffer_grow_total")
	ResolverHitsTotal   = set.NewCounter("tiny_resolver_hits_total")
	ErrorsTotal         = set.NewCounter("tiny_errors_total")
	FramesEncodedTotal  = set.NewCounter("tiny_frames_encoded_total")
	FramesDecodedTotal  = set.NewCounter("tiny_frames_decoded_total")
)

// WritePrometheus writes every counter to w in Prometheus text format.
func WritePrometheus(w io.Writer) {
	set.WritePrometheus(w)
}
