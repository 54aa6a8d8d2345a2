// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge_test

import (
	"bytes"
	"errors"
	"testing"

	"code.hybscloud.com/bridge"
)

func TestWireCommandLayout(t *testing.T) {
	b := bridge.AppendCommand(nil, bridge.Command{Kind: bridge.ComB, Payload: []byte{0xaa, 0xbb}})
	want := []byte{bridge.WireVersion, byte(bridge.ComB), 0xaa, 0xbb}
	if !bytes.Equal(b, want) {
		t.Fatalf("AppendCommand got %x, want %x", b, want)
	}
	c, err := bridge.DecodeCommand(b)
	if err != nil {
		t.Fatalf("DecodeCommand: %v", err)
	}
	if c.Kind != bridge.ComB || !bytes.Equal(c.Payload, want[2:]) {
		t.Fatalf("DecodeCommand got %+v", c)
	}
}

func TestWireResponseNoPayload(t *testing.T) {
	b := bridge.AppendResponse([]byte("prefix"), bridge.Response{Kind: bridge.ResB})
	r, err := bridge.DecodeResponse(b[len("prefix"):])
	if err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if r.Kind != bridge.ResB || r.Payload != nil {
		t.Fatalf("DecodeResponse got %+v, want ResB without payload", r)
	}
}

func TestWireDecodeErrors(t *testing.T) {
	if _, err := bridge.DecodeCommand([]byte{bridge.WireVersion}); !errors.Is(err, bridge.ErrShortBuffer) {
		t.Fatalf("short buffer got %v", err)
	}
	if _, err := bridge.DecodeCommand([]byte{bridge.WireVersion + 1, byte(bridge.ComA)}); !errors.Is(err, bridge.ErrWireVersion) {
		t.Fatalf("bad version got %v", err)
	}
	if _, err := bridge.DecodeCommand([]byte{bridge.WireVersion, 3}); !errors.Is(err, bridge.ErrUnknownKind) {
		t.Fatalf("unknown command kind got %v", err)
	}
	if _, err := bridge.DecodeResponse([]byte{bridge.WireVersion, 2}); !errors.Is(err, bridge.ErrUnknownKind) {
		t.Fatalf("unknown response kind got %v", err)
	}
}
