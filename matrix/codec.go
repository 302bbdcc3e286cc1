// SPDX-License-Identifier: MIT

// Package matrix - binary hand-off format.
//
// A precomputed Hessian (or any other matrix) can be written once and fed
// back to a later process. The wire format is a MessagePack map:
//
//	{"v": 1, "r": rows, "c": cols, "d": [row-major float64...]}
//
// Decoding validates version, shape and finiteness before building a Dense.

package matrix

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// codecVersion is bumped whenever the snapshot layout changes.
const codecVersion = 1

type snapshot struct {
	Version int       `msgpack:"v"`
	Rows    int       `msgpack:"r"`
	Cols    int       `msgpack:"c"`
	Data    []float64 `msgpack:"d"`
}

// Encode writes m to w in the msgpack snapshot format.
func Encode(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Encode", err)
	}
	src, err := asDense(m)
	if err != nil {
		return matrixErrorf("Encode", err)
	}
	snap := snapshot{Version: codecVersion, Rows: src.r, Cols: src.c, Data: src.data}
	if err = msgpack.NewEncoder(w).Encode(&snap); err != nil {
		return matrixErrorf("Encode", err)
	}

	return nil
}

// Decode reads one snapshot from r.
//
// Errors:
//   - ErrDecode for malformed input or an unknown version,
//   - ErrInvalidDimensions / ErrDimensionMismatch for inconsistent shapes,
//   - ErrNaNInf for non-finite payloads.
func Decode(r io.Reader) (*Dense, error) {
	var snap snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, matrixErrorf("Decode", fmt.Errorf("%w: %v", ErrDecode, err))
	}
	if snap.Version != codecVersion {
		return nil, matrixErrorf("Decode", fmt.Errorf("%w: version %d", ErrDecode, snap.Version))
	}
	for _, v := range snap.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf("Decode", ErrNaNInf)
		}
	}
	m, err := NewDenseFrom(snap.Rows, snap.Cols, snap.Data)
	if err != nil {
		return nil, matrixErrorf("Decode", err)
	}

	return m, nil
}

// Marshal is Encode into a byte slice.
func Marshal(m Matrix) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal is Decode from a byte slice.
func Unmarshal(b []byte) (*Dense, error) {
	return Decode(bytes.NewReader(b))
}
