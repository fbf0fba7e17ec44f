package telemetry

import (
	"reflect"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/log"
	"golang.org/x/exp/constraints"
)

// Attr is an attribute that can be attached to spans, measurements and log
// records alike.
type Attr struct {
	kv attribute.KeyValue
}

var (
	// ReadDirection marks an I/O measurement as a read from a store.
	ReadDirection = String("io.direction", "read")

	// WriteDirection marks an I/O measurement as a write to a store.
	WriteDirection = String("io.direction", "write")
)

// String returns a string attribute.
func String[T ~string](k string, v T) Attr {
	return Attr{attribute.String(k, string(v))}
}

// Bool returns a boolean attribute.
func Bool[T ~bool](k string, v T) Attr {
	return Attr{attribute.Bool(k, bool(v))}
}

// Int returns an integer attribute.
func Int[T constraints.Integer](k string, v T) Attr {
	return Attr{attribute.Int64(k, int64(v))}
}

// Type returns a string attribute containing the name of the dynamic type of
// v, with any pointer indirection removed.
func Type(k string, v any) Attr {
	t := reflect.TypeOf(v)
	if t == nil {
		return String(k, "<nil>")
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return String(k, t.String())
}

func attrs(in []Attr) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(in))
	for _, a := range in {
		if a.kv.Valid() {
			out = append(out, a.kv)
		}
	}
	return out
}

func logAttrs(in []Attr) []log.KeyValue {
	out := make([]log.KeyValue, 0, len(in))

	for _, a := range in {
		k := string(a.kv.Key)
		v := a.kv.Value

		switch v.Type() {
		case attribute.STRING:
			out = append(out, log.String(k, v.AsString()))
		case attribute.BOOL:
			out = append(out, log.Bool(k, v.AsBool()))
		case attribute.INT64:
			out = append(out, log.Int64(k, v.AsInt64()))
		}
	}

	return out
}
