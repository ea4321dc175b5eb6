package wire

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabkv/go-tabkv/record"
)

func TestRoundTrip(t *testing.T) {
	recs := []record.Record{
		{Key: "server", Comments: []string{" network settings"}},
		{Depth: 1, Key: "host", Value: record.Value("localhost")},
		{Depth: 1, Key: "port", Value: record.Value("8080"), Comments: []string{"a", "b"}},
		{Depth: 0, Key: "empty", Value: record.Value("")},
		{Depth: 0, Key: "ünïcode", Value: record.Value("wert ü")},
	}
	got, err := Decode(Encode(recs))
	require.NoError(t, err)
	assert.Equal(t, recs, got)
}

func TestGoldenLayout(t *testing.T) {
	recs := []record.Record{{Key: "a", Value: record.Value("b")}}
	want := []byte{
		0x01,                   // value entry
		0x00, 0x00, 0x00, 0x00, // depth 0
		0x01, 0x00, 0x00, 0x00, 'a', // key
		0x01, 0x00, 0x00, 0x00, 'b', // value
		0x00, 0x00, 0x00, 0x00, // no comments
	}
	assert.Equal(t, want, Encode(recs))
}

func TestGoldenLayoutDummy(t *testing.T) {
	recs := []record.Record{{Depth: 2, Key: "k", Comments: []string{"c"}}}
	want := []byte{
		0x00,                   // dummy entry, no value field follows the key
		0x02, 0x00, 0x00, 0x00, // depth 2
		0x01, 0x00, 0x00, 0x00, 'k', // key
		0x01, 0x00, 0x00, 0x00, // one comment
		0x01, 0x00, 0x00, 0x00, 'c',
	}
	assert.Equal(t, want, Encode(recs))
}

func TestDecodeEmpty(t *testing.T) {
	recs, err := Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, recs)
}

func TestDecodeTruncated(t *testing.T) {
	full := Encode([]record.Record{{Key: "key", Value: record.Value("value")}})
	// Any cut short of a record boundary must fail; a clean EOF is only
	// legal before the type byte.
	for n := 1; n < len(full); n++ {
		_, err := Decode(full[:n])
		require.Errorf(t, err, "prefix of %d bytes", n)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF, "prefix of %d bytes", n)
	}
}

func TestDecodeNegativeStringLength(t *testing.T) {
	d := []byte{
		0x00,                   // dummy entry
		0x00, 0x00, 0x00, 0x00, // depth 0
		0xff, 0xff, 0xff, 0xff, // key length -1
	}
	_, err := Decode(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative length")
}

func TestDecodeLineNotCarried(t *testing.T) {
	recs, err := Decode(Encode([]record.Record{{Key: "a", Line: 42}}))
	require.NoError(t, err)
	assert.Zero(t, recs[0].Line)
}

func TestReadStopsAtBoundary(t *testing.T) {
	two := append(Encode([]record.Record{{Key: "a"}}), Encode([]record.Record{{Key: "b"}})...)
	recs, err := Decode(two)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].Key)
	assert.Equal(t, "b", recs[1].Key)
}

func TestWriteFailurePropagates(t *testing.T) {
	err := Write(failWriter{}, []record.Record{{Key: "a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}
