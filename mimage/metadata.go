package mimage

import (
	"encoding/json"
	"fmt"
)

// metadata is the layout of an Mimage, saved next to its chunks so Load can
// find them again.
type metadata struct {
	BoundsMinX int
	BoundsMinY int
	BoundsMaxX int
	BoundsMaxY int
	ChunkSize  int
	Routines   int
}

func encodeJSON(m *metadata) ([]byte, error) {
	return json.Marshal(m)
}

// decodeJSON parses metadata, rejecting layouts New could never have
// written. A missing routine count takes the default.
func decodeJSON(data []byte) (*metadata, error) {
	var m metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding mimage metadata: %w", err)
	}

	switch {
	case m.ChunkSize <= 0:
		return nil, fmt.Errorf("mimage metadata: chunk size %d", m.ChunkSize)
	case m.BoundsMaxX < m.BoundsMinX, m.BoundsMaxY < m.BoundsMinY:
		return nil, fmt.Errorf("mimage metadata: inverted bounds (%d,%d)-(%d,%d)",
			m.BoundsMinX, m.BoundsMinY, m.BoundsMaxX, m.BoundsMaxY)
	}
	if m.Routines <= 0 {
		m.Routines = defaultRoutines
	}
	return &m, nil
}
