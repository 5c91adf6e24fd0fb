package wire

import (
	"encoding/binary"
	"testing"
)

func TestGetGeometryReplyRoundTrip(t *testing.T) {
	order := binary.LittleEndian
	reply := &GetGeometryReply{
		Sequence:    7,
		Depth:       24,
		Root:        0x100,
		X:           10,
		Y:           20,
		Width:       640,
		Height:      480,
		BorderWidth: 1,
	}
	encoded := reply.EncodeMessage(order)
	if len(encoded)%4 != 0 {
		t.Fatalf("reply length %d is not 4-byte aligned", len(encoded))
	}

	decoded, err := ParseGetGeometryReply(order, encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Root != reply.Root || decoded.Width != reply.Width || decoded.Height != reply.Height {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, reply)
	}
}

func TestInternAtomReplyRoundTrip(t *testing.T) {
	order := binary.BigEndian
	reply := &InternAtomReply{Sequence: 3, Atom: 99}
	encoded := reply.EncodeMessage(order)

	decoded, err := ParseInternAtomReply(order, encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Atom != 99 {
		t.Errorf("expected atom 99, got %d", decoded.Atom)
	}
}

func TestSetupAcceptedLengthMatchesBody(t *testing.T) {
	order := binary.LittleEndian
	setup := &Setup{
		ReleaseNumber:  1,
		ResourceIDBase: 0x200000,
		ResourceIDMask: 0x1FFFFF,
		VendorLength:   0,
		NumScreens:     1,
		Screens:        []Screen{{}},
	}
	encoded := EncodeSetupAccepted(order, 11, setup)
	length := order.Uint16(encoded[6:8])
	if int(length)*4 != len(encoded)-8 {
		t.Errorf("setup length field %d*4 does not match body size %d", length, len(encoded)-8)
	}
}

func TestErrorEncodingIsPaddedTo32Bytes(t *testing.T) {
	order := binary.LittleEndian
	err := NewError(WindowErrorCode, 1, 0xDEADBEEF, Opcodes{Major: GetGeometry, Minor: 0})
	encoded := err.EncodeMessage(order)
	if len(encoded) != 32 {
		t.Errorf("expected a 32-byte error record, got %d", len(encoded))
	}
}
