package server

import (
	"encoding/binary"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PerikiyoXD/rxserver/internal/resource"
	"github.com/PerikiyoXD/rxserver/internal/wire"
)

func testConfig(sink EventSink) Config {
	return Config{
		Screens: []ScreenConfig{{
			WidthPixels: 1024, HeightPixels: 768,
			RootVisual: 0x21, BlackPixel: 0, WhitePixel: 0xFFFFFF,
		}},
		Vendor:    "rxserver-test",
		Logger:    DiscardLogger{},
		EventSink: sink,
	}
}

// dialEngine builds an Engine, bootstraps it, and drives one simulated
// connection over an in-memory net.Pipe, returning the client-side end
// after the connection header and MIT-MAGIC-COOKIE-1-less handshake has
// completed.
func dialEngine(t *testing.T, cfg Config) (*Engine, net.Conn) {
	t.Helper()
	require.NoError(t, cfg.Validate())
	e := New(cfg)
	require.NoError(t, e.bootstrap())

	serverSide, clientSide := net.Pipe()
	go e.serveConn(serverSide)

	// byte-order 'l', protocol 11.0, zero-length auth name/data (§8 S1).
	header := []byte{'l', 0, 0x0b, 0x00, 0x00, 0x00, 0, 0, 0, 0, 0, 0}
	_, err := clientSide.Write(header)
	require.NoError(t, err)

	setup := readN(t, clientSide, 8)
	assert.Equal(t, byte(1), setup[0], "setup should be accepted")
	length := binary.LittleEndian.Uint16(setup[6:8])
	rest := readN(t, clientSide, int(length)*4)
	_ = rest

	return e, clientSide
}

// The requests below are built as raw wire bytes rather than through
// wire.*Request.EncodeMessage: this server only ever decodes requests, it
// never originates them, so the codec carries no request-encoding methods
// for production code to call. Tests drive the decoder the same way a real
// client on the wire would.

func encodeMapWindow(order binary.ByteOrder, window uint32) []byte {
	buf := make([]byte, 8)
	buf[0] = byte(wire.MapWindow)
	order.PutUint16(buf[2:4], 2)
	order.PutUint32(buf[4:8], window)
	return buf
}

func encodeGetGeometry(order binary.ByteOrder, drawable uint32) []byte {
	buf := make([]byte, 8)
	buf[0] = byte(wire.GetGeometry)
	order.PutUint16(buf[2:4], 2)
	order.PutUint32(buf[4:8], drawable)
	return buf
}

func encodeInternAtom(order binary.ByteOrder, name string, onlyIfExists bool) []byte {
	pad := wire.PadLen(len(name))
	buf := make([]byte, 8+len(name)+pad)
	buf[0] = byte(wire.InternAtom)
	if onlyIfExists {
		buf[1] = 1
	}
	order.PutUint16(buf[2:4], uint16(2+(len(name)+pad)/4))
	order.PutUint16(buf[4:6], uint16(len(name)))
	copy(buf[8:], name)
	return buf
}

func encodeCreateWindow(order binary.ByteOrder, depth byte, wid, parent uint32, x, y int16, width, height, borderWidth, class uint16, visual uint32) []byte {
	buf := make([]byte, 32)
	buf[0] = byte(wire.CreateWindow)
	buf[1] = depth
	order.PutUint16(buf[2:4], 8)
	order.PutUint32(buf[4:8], wid)
	order.PutUint32(buf[8:12], parent)
	order.PutUint16(buf[12:14], uint16(x))
	order.PutUint16(buf[14:16], uint16(y))
	order.PutUint16(buf[16:18], width)
	order.PutUint16(buf[18:20], height)
	order.PutUint16(buf[20:22], borderWidth)
	order.PutUint16(buf[22:24], class)
	order.PutUint32(buf[24:28], visual)
	order.PutUint32(buf[28:32], 0)
	return buf
}

func readN(t *testing.T, r io.Reader, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	_, err := io.ReadFull(r, buf)
	require.NoError(t, err)
	return buf
}

// readReply reads one 32-byte-aligned reply/error/event record and returns
// it whole (32 + 4*extra bytes for replies, exactly 32 for events/errors).
func readReply(t *testing.T, r io.Reader) []byte {
	t.Helper()
	base := readN(t, r, 32)
	if base[0] != 1 { // not a Reply: errors and events are always 32 bytes.
		return base
	}
	extra := binary.LittleEndian.Uint32(base[4:8])
	if extra == 0 {
		return base
	}
	more := readN(t, r, int(extra)*4)
	return append(base, more...)
}

func TestHandshakeAccepted(t *testing.T) {
	_, conn := dialEngine(t, testConfig(NullEventSink{}))
	defer conn.Close()
}

func TestInternAtomNewAndRepeat(t *testing.T) {
	_, conn := dialEngine(t, testConfig(NullEventSink{}))
	defer conn.Close()

	frame := encodeInternAtom(binary.LittleEndian, "_NET_WM_NAME", false)
	_, err := conn.Write(frame)
	require.NoError(t, err)

	reply := readReply(t, conn)
	require.Equal(t, byte(1), reply[0])
	atomID := binary.LittleEndian.Uint32(reply[8:12])
	assert.Greater(t, atomID, uint32(68))

	_, err = conn.Write(frame)
	require.NoError(t, err)
	reply2 := readReply(t, conn)
	assert.Equal(t, atomID, binary.LittleEndian.Uint32(reply2[8:12]))
}

func TestGetGeometryUnknownWindowIsBadWindow(t *testing.T) {
	_, conn := dialEngine(t, testConfig(NullEventSink{}))
	defer conn.Close()

	_, err := conn.Write(encodeGetGeometry(binary.LittleEndian, 0xDEADBEEF))
	require.NoError(t, err)

	reply := readReply(t, conn)
	require.Equal(t, byte(0), reply[0], "expected an error record")

	werr, perr := wire.ParseError(reply, binary.LittleEndian)
	require.NoError(t, perr)
	assert.Equal(t, wire.WindowErrorCode, werr.Code())
	assert.Equal(t, uint32(0xDEADBEEF), werr.BadValue())
	assert.Equal(t, byte(wire.GetGeometry), werr.MajorOp())
}

func TestCreateWindowMapWindowLifecycle(t *testing.T) {
	sink := &RecordingEventSink{}
	_, conn := dialEngine(t, testConfig(sink))
	defer conn.Close()

	create := encodeCreateWindow(binary.LittleEndian, 24, 0x00400001, 0x100, 10, 20, 100, 80, 1, 1, 0x21)
	_, err := conn.Write(create)
	require.NoError(t, err)

	_, err = conn.Write(encodeMapWindow(binary.LittleEndian, 0x00400001))
	require.NoError(t, err)

	// Neither request produces a reply; give the engine goroutine a beat
	// to process them against the event sink.
	time.Sleep(20 * time.Millisecond)

	assert.Contains(t, sink.Events, "WindowCreated")
	assert.Contains(t, sink.Events, "WindowMapped")

	createdAt := indexOf(sink.Events, "WindowCreated")
	mappedAt := indexOf(sink.Events, "WindowMapped")
	assert.Less(t, createdAt, mappedAt)
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func TestDisconnectReleasesResources(t *testing.T) {
	e, conn := dialEngine(t, testConfig(NullEventSink{}))

	create := encodeCreateWindow(binary.LittleEndian, 24, 0x00400010, 0x100, 0, 0, 10, 10, 0, 1, 0x21)
	_, err := conn.Write(create)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)

	_, lookupErr := e.registry.Lookup(0x00400010, resource.KindAny)
	require.NoError(t, lookupErr)

	conn.Close()
	time.Sleep(30 * time.Millisecond)

	_, lookupErr = e.registry.Lookup(0x00400010, resource.KindAny)
	assert.Error(t, lookupErr, "window should be reaped after disconnect")
}

func TestTwoClientsGetDisjointResourceRanges(t *testing.T) {
	cfg := testConfig(NullEventSink{})
	_, conn1 := dialEngine(t, cfg)
	defer conn1.Close()

	require.NoError(t, cfg.Validate())
	e := New(cfg)
	require.NoError(t, e.bootstrap())
	base1, mask1 := e.assignRange()
	base2, mask2 := e.assignRange()
	assert.False(t, resource.Overlaps(base1, mask1, base2, mask2))
}
