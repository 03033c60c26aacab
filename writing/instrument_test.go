package writing_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkworks/scribe/writing"
)

//
// -----------------------------------------------------------------------------
// Instrument implementations
// -----------------------------------------------------------------------------

// TestInstruments_EmitExpectedLine verifies each implementation formats and
// emits exactly one line for a given topic.
func TestInstruments_EmitExpectedLine(t *testing.T) {
	t.Parallel()

	const topic = "the dependency inversion principle"

	cases := []struct {
		name string
		make func(out *bytes.Buffer) writing.Instrument
		want string
	}{
		{
			name: "pen",
			make: func(out *bytes.Buffer) writing.Instrument { return writing.NewPen(out) },
			want: "inking an essay about the dependency inversion principle with a fountain pen\n",
		},
		{
			name: "pencil",
			make: func(out *bytes.Buffer) writing.Instrument { return writing.NewPencil(out) },
			want: "sketching an essay about the dependency inversion principle with a No. 2 pencil\n",
		},
		{
			name: "typewriter",
			make: func(out *bytes.Buffer) writing.Instrument { return writing.NewTypewriter(out) },
			want: "hammering out an essay about the dependency inversion principle on a typewriter\n",
		},
		{
			name: "keyboard",
			make: func(out *bytes.Buffer) writing.Instrument { return writing.NewKeyboard(out) },
			want: "typing an essay about the dependency inversion principle on a clacky keyboard\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			inst := tc.make(&out)

			require.NoError(t, inst.WriteAbout(topic))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

// TestInstruments_SinkErrorPropagates verifies a failing sink surfaces its
// error to the caller.
func TestInstruments_SinkErrorPropagates(t *testing.T) {
	t.Parallel()

	pen := writing.NewPen(failingWriter{})
	err := pen.WriteAbout("anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, errSinkClosed)
}

//
// -----------------------------------------------------------------------------
// New / Kinds
// -----------------------------------------------------------------------------

// TestNew_ResolvesEveryKnownKind verifies New constructs an instrument for
// every kind reported by Kinds.
func TestNew_ResolvesEveryKnownKind(t *testing.T) {
	t.Parallel()

	for _, kind := range writing.Kinds() {
		var out bytes.Buffer
		inst, err := writing.New(kind, &out)
		require.NoError(t, err, "kind %q", kind)
		require.NotNil(t, inst)

		require.NoError(t, inst.WriteAbout("go"))
		assert.NotEmpty(t, out.String())
	}
}

// TestNew_UnknownKind verifies New fails with a typed UnknownKindError.
func TestNew_UnknownKind(t *testing.T) {
	t.Parallel()

	inst, err := writing.New("quill", nil)
	require.Error(t, err)
	assert.Nil(t, inst)

	var unknown writing.UnknownKindError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, writing.Kind("quill"), unknown.Kind)
	assert.Contains(t, unknown.Error(), `"quill"`)
}

// TestKinds_Sorted verifies Kinds returns all four kinds in sorted order.
func TestKinds_Sorted(t *testing.T) {
	t.Parallel()

	got := writing.Kinds()
	want := []writing.Kind{
		writing.KindKeyboard,
		writing.KindPen,
		writing.KindPencil,
		writing.KindTypewriter,
	}
	assert.Equal(t, want, got)
}

//
// -----------------------------------------------------------------------------
// Test helpers
// -----------------------------------------------------------------------------

var errSinkClosed = errors.New("sink closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errSinkClosed }
