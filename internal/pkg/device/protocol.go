package device

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/device"
)

// ZK-family terminals speak a session protocol over TCP: every packet is a
// fixed magic header plus a length-prefixed payload, and the payload starts
// with command / checksum / session / reply words. Commands below are the
// subset needed to download the attendance log.
const (
	cmdConnect     = 1000
	cmdExit        = 1001
	cmdDataRead    = 1503 // bulk read request, parameterized by record table
	cmdPrepareData = 1500 // announces the size of a chunked transfer
	cmdData        = 1501
	cmdFreeData    = 1502
	cmdAckOK       = 2000

	attendanceRecordSize = 40
	maxLogBytes          = 4 << 20 // refuse transfers larger than 4 MiB
)

var tcpMagic = []byte{0x50, 0x50, 0x82, 0x7d}

// attendanceLogParam selects the attendance-record table in a bulk read.
var attendanceLogParam = []byte{0x01, 0x0d, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

type packet struct {
	command uint16
	session uint16
	reply   uint16
	data    []byte
}

// readAttendanceLog runs one full device session on an established
// connection: connect, bulk-read the attendance table, disconnect.
func readAttendanceLog(conn net.Conn, loc *time.Location) ([]device.RawEvent, error) {
	session, err := connect(conn)
	if err != nil {
		return nil, err
	}
	defer func() {
		// Best effort: the device drops the session on close anyway.
		_ = writePacket(conn, packet{command: cmdExit, session: session, reply: 1})
	}()

	raw, err := bulkRead(conn, session)
	if err != nil {
		return nil, err
	}
	return decodeAttendanceRecords(raw, loc), nil
}

func connect(conn net.Conn) (uint16, error) {
	if err := writePacket(conn, packet{command: cmdConnect}); err != nil {
		return 0, err
	}
	resp, err := readPacket(conn)
	if err != nil {
		return 0, err
	}
	if resp.command != cmdAckOK {
		return 0, fmt.Errorf("connect rejected with command %d", resp.command)
	}
	return resp.session, nil
}

// bulkRead requests the attendance table. Small logs come back inline in the
// acknowledgement; larger ones arrive as a prepare/data/free sequence whose
// total size is announced up front.
func bulkRead(conn net.Conn, session uint16) ([]byte, error) {
	if err := writePacket(conn, packet{command: cmdDataRead, session: session, reply: 1, data: attendanceLogParam}); err != nil {
		return nil, err
	}

	resp, err := readPacket(conn)
	if err != nil {
		return nil, err
	}

	switch resp.command {
	case cmdAckOK:
		// Inline payload carries a 4-byte size prefix.
		if len(resp.data) <= 4 {
			return nil, nil
		}
		return resp.data[4:], nil
	case cmdPrepareData:
		if len(resp.data) < 4 {
			return nil, fmt.Errorf("prepare-data packet too short (%d bytes)", len(resp.data))
		}
		total := binary.LittleEndian.Uint32(resp.data[:4])
		if total > maxLogBytes {
			return nil, fmt.Errorf("attendance log too large: %d bytes", total)
		}
		return readChunked(conn, int(total))
	default:
		return nil, fmt.Errorf("bulk read rejected with command %d", resp.command)
	}
}

func readChunked(conn net.Conn, total int) ([]byte, error) {
	buf := make([]byte, 0, total)
	for len(buf) < total {
		pkt, err := readPacket(conn)
		if err != nil {
			return nil, err
		}
		switch pkt.command {
		case cmdData:
			buf = append(buf, pkt.data...)
		case cmdFreeData:
			return buf, nil
		default:
			return nil, fmt.Errorf("unexpected command %d during chunked read", pkt.command)
		}
	}
	return buf, nil
}

// decodeAttendanceRecords splits the raw table into fixed-size records.
// Layout per record: u16 sequence, 9-byte NUL-padded user id, padding, then a
// packed timestamp and the state byte near the tail. Short trailing bytes are
// discarded. Field names in the payload mirror what downstream field probing
// expects.
func decodeAttendanceRecords(raw []byte, loc *time.Location) []device.RawEvent {
	events := make([]device.RawEvent, 0, len(raw)/attendanceRecordSize)
	for off := 0; off+attendanceRecordSize <= len(raw); off += attendanceRecordSize {
		rec := raw[off : off+attendanceRecordSize]

		userID := cString(rec[2:11])
		packed := binary.LittleEndian.Uint32(rec[27:31])
		state := int(rec[31])

		events = append(events, device.RawEvent{Payload: map[string]any{
			"user_id":     userID,
			"record_time": decodePackedTime(packed, loc),
			"state":       state,
		}})
	}
	return events
}

// decodePackedTime unpacks the terminal's mixed-radix timestamp encoding
// (seconds, minutes, hours, day-1, month-1, years since 2000). The terminal
// stores wall time in its own configured zone, assumed to match loc.
func decodePackedTime(v uint32, loc *time.Location) time.Time {
	second := int(v % 60)
	v /= 60
	minute := int(v % 60)
	v /= 60
	hour := int(v % 24)
	v /= 24
	day := int(v%31) + 1
	v /= 31
	month := time.Month(v%12) + 1
	v /= 12
	year := int(v) + 2000
	return time.Date(year, month, day, hour, minute, second, 0, loc)
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func writePacket(w io.Writer, pkt packet) error {
	payload := make([]byte, 8+len(pkt.data))
	binary.LittleEndian.PutUint16(payload[0:2], pkt.command)
	binary.LittleEndian.PutUint16(payload[4:6], pkt.session)
	binary.LittleEndian.PutUint16(payload[6:8], pkt.reply)
	copy(payload[8:], pkt.data)
	binary.LittleEndian.PutUint16(payload[2:4], checksum(payload))

	frame := make([]byte, 0, 8+len(payload))
	frame = append(frame, tcpMagic...)
	frame = binary.LittleEndian.AppendUint32(frame, uint32(len(payload)))
	frame = append(frame, payload...)

	_, err := w.Write(frame)
	return err
}

func readPacket(r io.Reader) (packet, error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return packet{}, err
	}
	for i, c := range tcpMagic {
		if header[i] != c {
			return packet{}, fmt.Errorf("bad frame magic % x", header[:4])
		}
	}
	size := binary.LittleEndian.Uint32(header[4:8])
	if size < 8 || size > maxLogBytes {
		return packet{}, fmt.Errorf("bad frame size %d", size)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return packet{}, err
	}
	return packet{
		command: binary.LittleEndian.Uint16(payload[0:2]),
		session: binary.LittleEndian.Uint16(payload[4:6]),
		reply:   binary.LittleEndian.Uint16(payload[6:8]),
		data:    payload[8:],
	}, nil
}

// checksum is the protocol's ones'-complement 16-bit sum over the payload
// with the checksum field itself zeroed.
func checksum(payload []byte) uint16 {
	var sum uint32
	for i := 0; i+1 < len(payload); i += 2 {
		if i == 2 {
			continue // checksum field
		}
		sum += uint32(binary.LittleEndian.Uint16(payload[i : i+2]))
	}
	if len(payload)%2 == 1 {
		sum += uint32(payload[len(payload)-1])
	}
	for sum > 0xffff {
		sum = (sum & 0xffff) + (sum >> 16)
	}
	return uint16(^sum & 0xffff)
}
