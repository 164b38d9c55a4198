package record

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	cannoncmd "github.com/ethereum-optimism/optimism/cannon/cmd"
	"github.com/ethereum-optimism/optimism/op-service/jsonutil"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/zkarcade/invaders/invaders/trace"
)

// MaxEndFrame is the largest end frame a record can carry.
const MaxEndFrame = 1023

var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrCodecMismatch = errors.New("record codec does not match selected codec")
)

// Record is the outcome of a session as exchanged with the proving glue.
// Codec optionally tags which trace layout Inputs uses.
type Record struct {
	Score    uint8  `json:"score"`
	Win      bool   `json:"win"`
	EndFrame uint16 `json:"end_frame"`
	Inputs   string `json:"inputs"`
	Codec    string `json:"codec,omitempty"`
}

// Validate checks the record against the selected trace codec.
func (r *Record) Validate(c trace.Codec) error {
	if r.EndFrame > MaxEndFrame {
		return fmt.Errorf("%w: end frame %d exceeds %d", ErrInvalidRecord, r.EndFrame, MaxEndFrame)
	}
	if r.Codec != "" && r.Codec != c.Name() {
		return fmt.Errorf("%w: record uses %q, selected %q", ErrCodecMismatch, r.Codec, c.Name())
	}
	if _, err := trace.Decode(c, r.Inputs); err != nil {
		return fmt.Errorf("%w: inputs: %w", ErrInvalidRecord, err)
	}
	return nil
}

// PublicInput is the byte string committed to by a proof of this record:
// trace bytes, score, win flag, then the end frame as big-endian u16.
func (r *Record) PublicInput(c trace.Codec) ([]byte, error) {
	inputs, err := trace.Bytes(c, r.Inputs)
	if err != nil {
		return nil, fmt.Errorf("%w: inputs: %w", ErrInvalidRecord, err)
	}
	out := make([]byte, 0, len(inputs)+4)
	out = append(out, inputs...)
	out = append(out, r.Score)
	if r.Win {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}
	return binary.BigEndian.AppendUint16(out, r.EndFrame), nil
}

// Commitment is the keccak256 hash of the public input.
func (r *Record) Commitment(c trace.Codec) (common.Hash, error) {
	pub, err := r.PublicInput(c)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(pub), nil
}

func (r *Record) String() string {
	return fmt.Sprintf("score=%d win=%t end_frame=%d inputs=%q", r.Score, r.Win, r.EndFrame, r.Inputs)
}

// Parse decodes a record from its JSON form. Unknown fields are rejected.
func Parse(data string) (*Record, error) {
	var r Record
	dec := json.NewDecoder(strings.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return &r, nil
}

func Load(path string) (*Record, error) {
	r, err := cannoncmd.LoadJSON[Record](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load record %q: %w", path, err)
	}
	return r, nil
}

func (r *Record) Store(path string) error {
	if err := jsonutil.WriteJSON(path, r); err != nil {
		return fmt.Errorf("failed to write record %q: %w", path, err)
	}
	return nil
}
