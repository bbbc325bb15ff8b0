package spectate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/shooter-snake/engine"
)

// Format selects the snapshot wire encoding
type Format uint8

const (
	FormatJSON Format = iota
	FormatMsgpack
)

const msgpackContentType = "application/msgpack"

// ParseFormat maps a query or config value; empty means JSON
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgpack, nil
	}
	return FormatJSON, fmt.Errorf("%w: format %q", ErrBadRequest, s)
}

func (f Format) String() string {
	if f == FormatMsgpack {
		return "msgpack"
	}
	return "json"
}

// Encode serializes a snapshot in the given format
func Encode(snap engine.Snapshot, f Format) ([]byte, error) {
	if f == FormatMsgpack {
		data, err := msgpack.Marshal(&snap)
		if err != nil {
			return nil, fmt.Errorf("msgpack encode: %w", err)
		}
		return data, nil
	}
	data, err := json.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	return data, nil
}
