package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ImageMeta holds dimensions captured from a cover-art upload at write
// time. It is stored as a JSON column and never recomputed later.
type ImageMeta struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

func (m ImageMeta) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal ImageMeta: %w", err)
	}
	return b, nil
}

func (m *ImageMeta) Scan(src interface{}) error {
	if src == nil {
		*m = ImageMeta{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("ImageMeta.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("unmarshal ImageMeta: %w", err)
	}
	return nil
}
