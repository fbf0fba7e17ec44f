package marshaler_test

import (
	"testing"

	. "github.com/dogmatiq/setkit/marshaler"
	"github.com/google/go-cmp/cmp"
)

func TestNewJSONArray(t *testing.T) {
	m := NewJSONArray[int]()

	t.Run("it marshals a nil slice as an empty array", func(t *testing.T) {
		data, err := m.Marshal(nil)
		if err != nil {
			t.Fatal(err)
		}

		if got, want := string(data), `[]`; got != want {
			t.Fatalf("unexpected JSON: got %s, want %s", got, want)
		}
	})

	t.Run("it preserves element order", func(t *testing.T) {
		data, err := m.Marshal([]int{3, 1, 10})
		if err != nil {
			t.Fatal(err)
		}

		if got, want := string(data), `[3,1,10]`; got != want {
			t.Fatalf("unexpected JSON: got %s, want %s", got, want)
		}

		v, err := m.Unmarshal(data)
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]int{3, 1, 10}, v); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it unmarshals null as an empty slice", func(t *testing.T) {
		v, err := m.Unmarshal([]byte(`null`))
		if err != nil {
			t.Fatal(err)
		}

		if v == nil || len(v) != 0 {
			t.Fatalf("unexpected slice: got %#v, want empty non-nil slice", v)
		}
	})

	t.Run("it returns an error if the document is malformed", func(t *testing.T) {
		cases := map[string]string{
			"empty document":     ``,
			"truncated array":    `[1,2`,
			"object":             `{"a":1}`,
			"wrong element type": `["a"]`,
		}

		for name, doc := range cases {
			t.Run(name, func(t *testing.T) {
				if _, err := m.Unmarshal([]byte(doc)); err == nil {
					t.Fatal("expected an error")
				}
			})
		}
	})
}
