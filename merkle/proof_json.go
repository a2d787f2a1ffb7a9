// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package merkle

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Proof is the transport-ready form of an Open() result: an index, the
// opened value and the flat sibling-hash list, hex-encoded the way the
// on-chain verifier driver expects to read it back from disk or RPC.
type Proof struct {
	Index int
	Value []byte
	Path  []Hash
}

type proofMarshaller struct {
	Index int      `json:"index"`
	Value string   `json:"value"`
	Path  []string `json:"path"`
}

// MarshalJSON hex-encodes Value and each Path hash.
func (p Proof) MarshalJSON() ([]byte, error) {
	aux := proofMarshaller{
		Index: p.Index,
		Value: hex.EncodeToString(p.Value),
		Path:  make([]string, len(p.Path)),
	}
	for i, h := range p.Path {
		aux.Path[i] = hex.EncodeToString(h[:])
	}
	return json.Marshal(&aux)
}

// UnmarshalJSON reverses MarshalJSON.
func (p *Proof) UnmarshalJSON(data []byte) error {
	var aux proofMarshaller
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	value, err := hex.DecodeString(aux.Value)
	if err != nil {
		return fmt.Errorf("merkle: error decoding hex string for value: %w", err)
	}

	path := make([]Hash, len(aux.Path))
	for i, s := range aux.Path {
		if len(s) != 64 {
			return fmt.Errorf("merkle: invalid hex string for path[%d]: %s", i, s)
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return fmt.Errorf("merkle: error decoding hex string for path[%d]: %w", i, err)
		}
		copy(path[i][:], b)
	}

	p.Index = aux.Index
	p.Value = value
	p.Path = path
	return nil
}
