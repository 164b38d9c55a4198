package cmd

import (
	"fmt"

	"github.com/ethereum-optimism/optimism/op-service/jsonutil"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

type WitnessOutput struct {
	Witness    hexutil.Bytes `json:"witness"`
	StateHash  common.Hash   `json:"stateHash"`
	Commitment common.Hash   `json:"commitment"`
	Status     string        `json:"status"`
}

// Witness replays a record and emits the encoded final state. The state hash is written to stdout.
func Witness(ctx *cli.Context) error {
	claim, err := loadClaim(ctx)
	if err != nil {
		return err
	}
	v, err := newVerifier(ctx)
	if err != nil {
		return err
	}
	res, err := v.Replay(claim)
	if err != nil {
		return fmt.Errorf("invalid input record: %w", err)
	}
	commitment, err := res.Record.Commitment(v.Codec())
	if err != nil {
		return err
	}
	out := &WitnessOutput{
		Witness:    res.State.EncodeWitness(),
		StateHash:  res.State.StateHash(),
		Commitment: commitment,
		Status:     res.Status.String(),
	}
	if p := ctx.Path(OutputFlag.Name); p != "" {
		if err := jsonutil.WriteJSON(p, out); err != nil {
			return fmt.Errorf("failed to write witness output %w", err)
		}
	}
	_, _ = fmt.Fprintln(ctx.App.Writer, out.StateHash.Hex())
	return nil
}

var WitnessCommand = &cli.Command{
	Name:        "witness",
	Usage:       "Replay a game record into a binary state witness",
	Description: "Replay the input trace of a JSON game record and encode the final engine state as a binary witness. The statehash is written to stdout",
	Action:      Witness,
	Flags: []cli.Flag{
		CodecFlag,
		RecordInputFlag,
		RecordFlag,
		MaxEndFrameFlag,
		OutputFlag,
		LogLevelFlag,
	},
}
