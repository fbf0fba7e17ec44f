package blob

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/dogmatiq/setkit/internal/x/xtesting"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rapid"
)

// RunTests runs tests that confirm a [Store] implementation behaves correctly.
func RunTests(
	t *testing.T,
	store Store,
) {
	save := func(t *testing.T, name string, data []byte) {
		t.Helper()

		if err := store.Save(t.Context(), name, data); err != nil {
			t.Fatal(err)
		}
	}

	load := func(t *testing.T, name string) []byte {
		t.Helper()

		data, err := store.Load(t.Context(), name)
		if err != nil {
			t.Fatal(err)
		}

		return data
	}

	t.Run("Load", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns a NotFoundError if the blob has never been saved", func(t *testing.T) {
			t.Parallel()

			name := xtesting.SequentialName("blob")

			_, err := store.Load(t.Context(), name)
			if !IsNotFound(err) {
				t.Fatalf("unexpected error: got %v, want NotFoundError", err)
			}

			want := NotFoundError{Name: name}
			if err != want {
				t.Fatalf("unexpected error: got %#v, want %#v", err, want)
			}
		})

		t.Run("it returns the saved content", func(t *testing.T) {
			t.Parallel()

			name := xtesting.SequentialName("blob")
			save(t, name, []byte(`[1,2,3]`))

			if got, want := load(t, name), []byte(`[1,2,3]`); !bytes.Equal(got, want) {
				t.Fatalf("unexpected content: got %q, want %q", got, want)
			}
		})

		t.Run("it returns the most recently saved content", func(t *testing.T) {
			t.Parallel()

			name := xtesting.SequentialName("blob")
			save(t, name, []byte(`[1,2,3]`))
			save(t, name, []byte(`[4]`))

			if got, want := load(t, name), []byte(`[4]`); !bytes.Equal(got, want) {
				t.Fatalf("unexpected content: got %q, want %q", got, want)
			}
		})

		t.Run("it returns a slice that the caller may modify", func(t *testing.T) {
			t.Parallel()

			name := xtesting.SequentialName("blob")
			save(t, name, []byte(`[1]`))

			data := load(t, name)
			data[0] = 'X'

			if got, want := load(t, name), []byte(`[1]`); !bytes.Equal(got, want) {
				t.Fatalf("unexpected content: got %q, want %q", got, want)
			}
		})
	})

	t.Run("Save", func(t *testing.T) {
		t.Parallel()

		t.Run("it does not keep a reference to the data slice", func(t *testing.T) {
			t.Parallel()

			name := xtesting.SequentialName("blob")
			data := []byte(`[1]`)
			save(t, name, data)

			data[0] = 'X'

			if got, want := load(t, name), []byte(`[1]`); !bytes.Equal(got, want) {
				t.Fatalf("unexpected content: got %q, want %q", got, want)
			}
		})

		t.Run("it can save an empty blob", func(t *testing.T) {
			t.Parallel()

			name := xtesting.SequentialName("blob")
			save(t, name, nil)

			if got := load(t, name); len(got) != 0 {
				t.Fatalf("unexpected content: got %q, want empty", got)
			}
		})

		t.Run("it supports hierarchical names", func(t *testing.T) {
			t.Parallel()

			name := xtesting.SequentialName("nested") + "/" + xtesting.SequentialName("blob")
			save(t, name, []byte(`[1]`))

			if got, want := load(t, name), []byte(`[1]`); !bytes.Equal(got, want) {
				t.Fatalf("unexpected content: got %q, want %q", got, want)
			}
		})

		t.Run("it does not affect other blobs", func(t *testing.T) {
			t.Parallel()

			name1 := xtesting.SequentialName("blob")
			name2 := xtesting.SequentialName("blob")

			save(t, name1, []byte(`[1]`))
			save(t, name2, []byte(`[2]`))

			if got, want := load(t, name1), []byte(`[1]`); !bytes.Equal(got, want) {
				t.Fatalf("unexpected content: got %q, want %q", got, want)
			}
		})

		t.Run("it isolates concurrent saves to different blobs", func(t *testing.T) {
			t.Parallel()

			const n = 8
			names := make([]string, n)
			for i := range names {
				names[i] = xtesting.SequentialName("blob")
			}

			g, ctx := errgroup.WithContext(t.Context())
			for i, name := range names {
				g.Go(func() error {
					return store.Save(ctx, name, fmt.Appendf(nil, "[%d]", i))
				})
			}

			if err := g.Wait(); err != nil {
				t.Fatal(err)
			}

			for i, name := range names {
				if got, want := load(t, name), fmt.Appendf(nil, "[%d]", i); !bytes.Equal(got, want) {
					t.Fatalf("unexpected content for %q: got %q, want %q", name, got, want)
				}
			}
		})
	})

	t.Run("property-based", func(t *testing.T) {
		t.Parallel()

		ctx := t.Context()

		rapid.Check(t, func(t *rapid.T) {
			prefix := xtesting.SequentialName("blob")
			names := []string{prefix + "-a", prefix + "-b", prefix + "-c"}
			content := map[string][]byte{}

			t.Repeat(
				map[string]func(*rapid.T){
					"Load": func(t *rapid.T) {
						name := rapid.SampledFrom(names).Draw(t, "name")

						data, err := store.Load(ctx, name)

						want, ok := content[name]
						if !ok {
							if !IsNotFound(err) {
								t.Fatalf("unexpected error for %q: got %v, want NotFoundError", name, err)
							}
							return
						}

						if err != nil {
							t.Fatal(err)
						}

						if !bytes.Equal(data, want) {
							t.Fatalf("unexpected content for %q: got %q, want %q", name, data, want)
						}
					},
					"Save": func(t *rapid.T) {
						name := rapid.SampledFrom(names).Draw(t, "name")
						data := rapid.SliceOfN(rapid.Byte(), 1, 64).Draw(t, "data")

						if err := store.Save(ctx, name, data); err != nil {
							t.Fatal(err)
						}

						content[name] = bytes.Clone(data)
					},
				},
			)
		})
	})
}
