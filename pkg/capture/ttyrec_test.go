package capture

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"termcast/pkg/events"
)

// appendRecord appends one ttyrec record to buf.
func appendRecord(buf []byte, secs, usecs uint32, payload []byte) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, secs)
	buf = binary.LittleEndian.AppendUint32(buf, usecs)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(payload)))
	return append(buf, payload...)
}

func TestDecodeTTYRec_TwoRecords(t *testing.T) {
	var buf []byte
	buf = appendRecord(buf, 0, 0, []byte("abc"))
	buf = appendRecord(buf, 1, 0, []byte("de"))

	stream, err := DecodeTTYRec(buf)
	require.NoError(t, err)

	expected := events.Stream{
		{Text: "'abc'", OffsetMillis: 0},
		{Text: "'de'", OffsetMillis: 1000},
	}
	require.Equal(t, expected, stream)
}

func TestDecodeTTYRec_FirstRecordEstablishesOrigin(t *testing.T) {
	// A capture that starts mid-epoch still begins at offset 0.
	var buf []byte
	buf = appendRecord(buf, 1700000000, 250000, []byte("first"))
	buf = appendRecord(buf, 1700000002, 250000, []byte("second"))

	stream, err := DecodeTTYRec(buf)
	require.NoError(t, err)
	require.Equal(t, int64(0), stream[0].OffsetMillis)
	require.Equal(t, int64(2000), stream[1].OffsetMillis)
}

func TestDecodeTTYRec_MicrosecondCeiling(t *testing.T) {
	var buf []byte
	buf = appendRecord(buf, 0, 0, []byte("a"))
	buf = appendRecord(buf, 0, 1, []byte("b")) // ceil(0.001ms) = 1ms
	buf = appendRecord(buf, 0, 1500, []byte("c"))

	stream, err := DecodeTTYRec(buf)
	require.NoError(t, err)
	require.Equal(t, int64(0), stream[0].OffsetMillis)
	require.Equal(t, int64(1), stream[1].OffsetMillis)
	// abs(0, 1500) = ceil(1.5) = 2
	require.Equal(t, int64(2), stream[2].OffsetMillis)
}

func TestDecodeTTYRec_EmptyBuffer(t *testing.T) {
	stream, err := DecodeTTYRec(nil)
	require.NoError(t, err)
	require.Empty(t, stream)
}

func TestDecodeTTYRec_EmptyPayload(t *testing.T) {
	var buf []byte
	buf = appendRecord(buf, 0, 0, nil)

	stream, err := DecodeTTYRec(buf)
	require.NoError(t, err)
	require.Equal(t, events.Stream{{Text: "''", OffsetMillis: 0}}, stream)
}

func TestDecodeTTYRec_TruncatedPayload(t *testing.T) {
	var buf []byte
	buf = appendRecord(buf, 0, 0, []byte("complete"))
	buf = binary.LittleEndian.AppendUint32(buf, 1)
	buf = binary.LittleEndian.AppendUint32(buf, 0)
	buf = binary.LittleEndian.AppendUint32(buf, 100) // claims 100 payload bytes
	buf = append(buf, "only-a-few"...)

	stream, err := DecodeTTYRec(buf)
	require.ErrorIs(t, err, ErrTruncated)
	require.Nil(t, stream)
}

func TestDecodeTTYRec_ShortHeader(t *testing.T) {
	var buf []byte
	buf = appendRecord(buf, 0, 0, []byte("ok"))
	buf = append(buf, 0x01, 0x02, 0x03) // 3 trailing bytes, not a full header

	stream, err := DecodeTTYRec(buf)
	require.ErrorIs(t, err, ErrMalformedHeader)
	require.Nil(t, stream)
}

func TestDecodeTTYRec_InvalidUTF8Replaced(t *testing.T) {
	var buf []byte
	buf = appendRecord(buf, 0, 0, []byte{'x', 0xfe, 0xff, 'y'})

	stream, err := DecodeTTYRec(buf)
	require.NoError(t, err)
	require.Equal(t, events.Quote("x��y"), stream[0].Text)
}

func TestDecodeTTYRec_OffsetsNonDecreasing(t *testing.T) {
	var buf []byte
	buf = appendRecord(buf, 10, 500000, []byte("a"))
	buf = appendRecord(buf, 10, 900000, []byte("b"))
	buf = appendRecord(buf, 11, 100000, []byte("c"))
	buf = appendRecord(buf, 13, 0, []byte("d"))

	stream, err := DecodeTTYRec(buf)
	require.NoError(t, err)
	require.Len(t, stream, 4)
	for i := 1; i < len(stream); i++ {
		require.GreaterOrEqual(t, stream[i].OffsetMillis, stream[i-1].OffsetMillis)
	}
}
