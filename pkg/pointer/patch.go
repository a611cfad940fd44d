// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer

import (
	"bytes"
	"encoding/json"
)

/*
Patch is a nullable field of a partial update payload.

A plain pointer cannot tell an omitted key from an explicit null. Patch can:
Set is true whenever the key is present, and Value is nil when it was null.
*/
type Patch[T any] struct {
	Set   bool
	Value *T
}

// PatchTo returns a Patch that assigns v.
func PatchTo[T any](v T) Patch[T] {
	return Patch[T]{Set: true, Value: &v}
}

// PatchNull returns a Patch that clears the field.
func PatchNull[T any]() Patch[T] {
	return Patch[T]{Set: true}
}

// UnmarshalJSON is only called for keys present in the payload.
func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	p.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		p.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}
