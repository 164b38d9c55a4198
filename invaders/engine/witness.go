package engine

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/zkarcade/invaders/invaders/geom"
)

// EncodeWitness serializes every field of the state, big-endian, sequences length-prefixed.
// Two states are bit-identical exactly when their witnesses are equal.
func (s *State) EncodeWitness() []byte {
	out := make([]byte, 0, 64+8*(len(s.ShipShots)+len(s.Enemies)+len(s.EnemyShots))+3*len(s.InputLog))
	out = appendVec(out, s.Dimension)
	out = appendVec(out, s.Ship)
	out = binary.BigEndian.AppendUint16(out, s.LastShotFrame)
	out = binary.BigEndian.AppendUint16(out, s.LastFormationMove)
	out = binary.BigEndian.AppendUint16(out, s.LastEnemyShot)
	out = binary.BigEndian.AppendUint32(out, uint32(s.Formation.Dir))
	if s.Formation.JustDescended {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}
	out = binary.BigEndian.AppendUint32(out, s.Lives)
	out = append(out, s.Score)
	out = appendVecs(out, s.ShipShots)
	out = appendVecs(out, s.Enemies)
	out = appendVecs(out, s.EnemyShots)
	out = binary.BigEndian.AppendUint32(out, uint32(len(s.InputLog)))
	for _, a := range s.InputLog {
		out = binary.BigEndian.AppendUint16(out, a.Frame)
		out = append(out, byte(a.Dir))
	}
	return out
}

// StateHash is the keccak256 hash of the state witness.
func (s *State) StateHash() common.Hash {
	return crypto.Keccak256Hash(s.EncodeWitness())
}

func appendVec(out []byte, v geom.Vec2) []byte {
	out = binary.BigEndian.AppendUint32(out, uint32(v.X))
	return binary.BigEndian.AppendUint32(out, uint32(v.Y))
}

func appendVecs(out []byte, vs []geom.Vec2) []byte {
	out = binary.BigEndian.AppendUint32(out, uint32(len(vs)))
	for _, v := range vs {
		out = appendVec(out, v)
	}
	return out
}
