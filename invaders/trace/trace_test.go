package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeKnownValues(t *testing.T) {
	cases := []struct {
		name    string
		codec   Codec
		actions []Action
		hex     string
	}{
		{"empty", Frame10, nil, ""},
		{"single", Frame10, []Action{{Frame: 5, Dir: Right}}, "0141"},
		{"single12", Frame12, []Action{{Frame: 5, Dir: Right}}, "0051"},
		{"last frame", Frame10, []Action{{Frame: 1023, Dir: Right}}, "FFC1"},
		{"last frame12", Frame12, []Action{{Frame: 1023, Dir: Right}}, "3FF1"},
		{"sequence", Frame10, []Action{{Frame: 1023, Dir: Left}, {Frame: 0, Dir: Right}, {Frame: 512, Dir: Right}}, "FFC000018001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.codec, tc.actions)
			require.NoError(t, err)
			require.Equal(t, tc.hex, got)
			require.Len(t, got, 4*len(tc.actions))

			back, err := Decode(tc.codec, got)
			require.NoError(t, err)
			if len(tc.actions) == 0 {
				require.Empty(t, back)
			} else {
				require.Equal(t, tc.actions, back)
			}
		})
	}
}

func TestRoundTripAllActions(t *testing.T) {
	for _, c := range []Codec{Frame10, Frame12} {
		t.Run(c.Name(), func(t *testing.T) {
			var actions []Action
			for f := uint16(0); f <= 1023; f++ {
				actions = append(actions, Action{Frame: f, Dir: Direction(f % 2)}, Action{Frame: f, Dir: Direction(1 - f%2)})
			}
			enc, err := Encode(c, actions)
			require.NoError(t, err)
			dec, err := Decode(c, enc)
			require.NoError(t, err)
			require.Equal(t, actions, dec)
		})
	}
}

func TestFrame12Range(t *testing.T) {
	a := Action{Frame: 4095, Dir: Left}
	enc, err := Encode(Frame12, []Action{a})
	require.NoError(t, err)
	require.Equal(t, "FFF0", enc)
	dec, err := Decode(Frame12, enc)
	require.NoError(t, err)
	require.Equal(t, []Action{a}, dec)
}

func TestEncodeRangeViolation(t *testing.T) {
	_, err := Encode(Frame10, []Action{{Frame: 1, Dir: Left}, {Frame: 1024, Dir: Left}})
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorContains(t, err, "action 1")

	_, err = Encode(Frame12, []Action{{Frame: 4096, Dir: Left}})
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = Encode(Frame10, []Action{{Frame: 3, Dir: 2}})
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestDecodeMalformed(t *testing.T) {
	for _, s := range []string{"0", "014", "01410", "ZZ41", "01 1", "0102"} {
		_, err := Decode(Frame10, s)
		require.ErrorIs(t, err, ErrMalformedTrace, "input %q", s)
	}
	_, err := Decode(Frame12, "0002")
	require.ErrorIs(t, err, ErrMalformedTrace)
}

func TestDecodeLowerCase(t *testing.T) {
	dec, err := Decode(Frame10, "ffc1")
	require.NoError(t, err)
	require.Equal(t, []Action{{Frame: 1023, Dir: Right}}, dec)
}

func TestVariantsDisagree(t *testing.T) {
	enc, err := Encode(Frame12, []Action{{Frame: 5, Dir: Right}})
	require.NoError(t, err)
	_, err = Decode(Frame10, enc)
	require.ErrorIs(t, err, ErrMalformedTrace, "frame12 output must not be read as frame10")
}

func TestVariantsAmbiguous(t *testing.T) {
	// frames that are multiples of 4 leave no reserved bits set in either layout
	wide, err := Encode(Frame12, []Action{{Frame: 4, Dir: Right}})
	require.NoError(t, err)
	require.Equal(t, "0041", wide)

	narrow, err := Decode(Frame10, wide)
	require.NoError(t, err)
	require.Equal(t, []Action{{Frame: 1, Dir: Right}}, narrow)
	reencoded, err := Encode(Frame10, narrow)
	require.NoError(t, err)
	require.Equal(t, wide, reencoded)
}

func TestConvert(t *testing.T) {
	out, err := Convert(Frame10, Frame12, "000005410A81")
	require.NoError(t, err)
	require.Equal(t, "0000015102A1", out)

	back, err := Convert(Frame12, Frame10, out)
	require.NoError(t, err)
	require.Equal(t, "000005410A81", back)

	_, err = Convert(Frame12, Frame10, "FFF0")
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestBytes(t *testing.T) {
	b, err := Bytes(Frame10, "FFC1")
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xC1}, b)

	_, err = Bytes(Frame10, "FFC")
	require.ErrorIs(t, err, ErrMalformedTrace)
}

func TestLookup(t *testing.T) {
	c, err := Lookup("frame10")
	require.NoError(t, err)
	require.Equal(t, Frame10, c)
	c, err = Lookup("frame12")
	require.NoError(t, err)
	require.Equal(t, Frame12, c)
	_, err = Lookup("")
	require.ErrorIs(t, err, ErrUnknownCodec)
	require.Equal(t, []string{"frame10", "frame12"}, Names())
}

func TestDirection(t *testing.T) {
	require.Equal(t, int32(-1), Left.Displacement())
	require.Equal(t, int32(1), Right.Displacement())
	require.Equal(t, "left", Left.String())
	require.Equal(t, "5:1", Action{Frame: 5, Dir: Right}.String())
}

func TestParseActions(t *testing.T) {
	actions, err := ParseActions("5:1, 7:0,1023:1")
	require.NoError(t, err)
	require.Equal(t, []Action{{Frame: 5, Dir: Right}, {Frame: 7, Dir: Left}, {Frame: 1023, Dir: Right}}, actions)

	actions, err = ParseActions("  ")
	require.NoError(t, err)
	require.Empty(t, actions)

	for _, bad := range []string{"5", "x:1", "5:y", "70000:1"} {
		_, err := ParseActions(bad)
		require.Error(t, err, "input %q", bad)
	}

	// range is checked by the codec, not the parser
	actions, err = ParseActions("5:2")
	require.NoError(t, err)
	_, err = Encode(Frame10, actions)
	require.ErrorIs(t, err, ErrOutOfRange)
}
