package record

import (
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/zkarcade/invaders/invaders/trace"
)

func TestValidate(t *testing.T) {
	good := &Record{Score: 5, Win: false, EndFrame: 289, Inputs: "0141FFC0"}
	require.NoError(t, good.Validate(trace.Frame10))

	tagged := *good
	tagged.Codec = "frame10"
	require.NoError(t, tagged.Validate(trace.Frame10))
	require.ErrorIs(t, tagged.Validate(trace.Frame12), ErrCodecMismatch)

	late := *good
	late.EndFrame = 1024
	require.ErrorIs(t, late.Validate(trace.Frame10), ErrInvalidRecord)

	short := *good
	short.Inputs = "014"
	err := short.Validate(trace.Frame10)
	require.ErrorIs(t, err, ErrInvalidRecord)
	require.ErrorIs(t, err, trace.ErrMalformedTrace)

	empty := &Record{}
	require.NoError(t, empty.Validate(trace.Frame12))
}

func TestPublicInput(t *testing.T) {
	r := &Record{Score: 100, Win: true, EndFrame: 961, Inputs: "0141"}
	pub, err := r.PublicInput(trace.Frame10)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x41, 100, 0x01, 0x03, 0xC1}, pub)

	c, err := r.Commitment(trace.Frame10)
	require.NoError(t, err)
	require.Equal(t, crypto.Keccak256Hash(pub), c)

	lost := *r
	lost.Win = false
	c2, err := lost.Commitment(trace.Frame10)
	require.NoError(t, err)
	require.NotEqual(t, c, c2)

	bad := &Record{Inputs: "01"}
	_, err = bad.PublicInput(trace.Frame10)
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestParse(t *testing.T) {
	r, err := Parse(`{"score":20,"win":false,"end_frame":1023,"inputs":""}`)
	require.NoError(t, err)
	require.Equal(t, &Record{Score: 20, EndFrame: 1023}, r)

	r, err = Parse(`{"score":5,"win":true,"end_frame":7,"inputs":"0141","codec":"frame10"}`)
	require.NoError(t, err)
	require.Equal(t, "frame10", r.Codec)

	_, err = Parse(`{"score":5,"extra":1}`)
	require.ErrorIs(t, err, ErrInvalidRecord)
	_, err = Parse(`{"score":256}`)
	require.ErrorIs(t, err, ErrInvalidRecord)
	_, err = Parse(`not json`)
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestStoreLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	r := &Record{Score: 100, Win: true, EndFrame: 961, Inputs: "0141", Codec: "frame10"}
	require.NoError(t, r.Store(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, r, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
