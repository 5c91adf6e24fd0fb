package wire

import (
	"encoding/binary"
	"testing"
)

func TestMapNotifyEventIs32Bytes(t *testing.T) {
	order := binary.LittleEndian
	event := &MapNotifyEvent{Sequence: 4, Event: 0x100, Window: 0x400001}
	encoded := event.EncodeMessage(order)
	if len(encoded) != 32 {
		t.Fatalf("expected a 32-byte event, got %d", len(encoded))
	}
	if encoded[0] != 19 {
		t.Errorf("expected MapNotify opcode 19, got %d", encoded[0])
	}
	if seq := order.Uint16(encoded[2:4]); seq != 4 {
		t.Errorf("expected sequence 4, got %d", seq)
	}
	if win := order.Uint32(encoded[8:12]); win != 0x400001 {
		t.Errorf("expected window 0x400001, got %#x", win)
	}
}

func TestConfigureNotifyEventFieldLayout(t *testing.T) {
	order := binary.BigEndian
	event := &ConfigureNotifyEvent{
		Sequence: 1, Event: 0x10, Window: 0x400001,
		X: 5, Y: 6, Width: 100, Height: 80, BorderWidth: 2,
	}
	encoded := event.EncodeMessage(order)
	if len(encoded) != 32 {
		t.Fatalf("expected a 32-byte event, got %d", len(encoded))
	}
	if win := order.Uint32(encoded[8:12]); win != 0x400001 {
		t.Errorf("expected configured window 0x400001, got %#x", win)
	}
}

func TestEventEncodingRespectsByteOrder(t *testing.T) {
	event := &MapNotifyEvent{Sequence: 0x0102, Event: 1, Window: 2}
	le := event.EncodeMessage(binary.LittleEndian)
	be := event.EncodeMessage(binary.BigEndian)
	if le[2] == be[2] && le[3] == be[3] {
		t.Errorf("expected sequence bytes to differ between byte orders")
	}
	if binary.LittleEndian.Uint16(le[2:4]) != 0x0102 {
		t.Errorf("little-endian sequence decode mismatch")
	}
	if binary.BigEndian.Uint16(be[2:4]) != 0x0102 {
		t.Errorf("big-endian sequence decode mismatch")
	}
}
