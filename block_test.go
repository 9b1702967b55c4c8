package fstream

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kirov7/fstream/public/utils/bytex"
)

func TestBlock_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.bin")
	s := Open(path, "w+b")
	assert.True(t, s.IsValid())

	values := make([]uint32, 16)
	for i := range values {
		values[i] = uint32(i) * 0x01010101
	}
	assert.Equal(t, 16, WriteBlock(s, values))

	s.Rewind()
	got := ReadBlock[uint32](s, 16)
	assert.Equal(t, values, got)
	assert.Nil(t, s.Close())
}

func TestReadBlock_ShortRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	s := Open(path, "w+b")
	_, err := s.Write(bytex.PatternBytes(0, 10))
	assert.Nil(t, err)
	s.Rewind()

	// a stream holding 10 bytes satisfies a 100-element request with 10
	got := ReadBlock[uint8](s, 100)
	assert.Len(t, got, 10)
	assert.Equal(t, bytex.PatternBytes(0, 10), []byte(got))
	assert.True(t, s.IsAtEnd())
	assert.False(t, s.HasError())
	assert.Nil(t, s.Close())
}

func TestReadBlock_PartialElementDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.bin")
	s := Open(path, "w+b")
	_, err := s.Write(bytex.PatternBytes(0, 10))
	assert.Nil(t, err)
	s.Rewind()

	// 10 bytes hold two whole uint32 values; the trailing fragment is dropped
	got := ReadBlock[uint32](s, 4)
	assert.Len(t, got, 2)
	assert.Nil(t, s.Close())
}

func TestReadBlock_ZeroCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.bin")
	s := Open(path, "w+b")
	defer s.Close()

	assert.Nil(t, ReadBlock[uint64](s, 0))
	assert.Nil(t, ReadBlock[uint64](s, -1))
	assert.Equal(t, 0, WriteBlock(s, []uint64(nil)))
}

func TestValue_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value.bin")
	s := Open(path, "w+b")
	assert.True(t, s.IsValid())

	assert.True(t, WriteValue(s, 3.5))
	assert.True(t, WriteValue(s, int16(-7)))

	s.Rewind()
	f, ok := ReadValue[float64](s)
	assert.True(t, ok)
	assert.Equal(t, 3.5, f)
	i, ok := ReadValue[int16](s)
	assert.True(t, ok)
	assert.Equal(t, int16(-7), i)

	// nothing left: no partial value is exposed
	v, ok := ReadValue[int16](s)
	assert.False(t, ok)
	assert.Equal(t, int16(0), v)
	assert.True(t, s.IsAtEnd())
	assert.Nil(t, s.Close())
}

func TestBlock_RespectsPushback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pushback.bin")
	s := Open(path, "w+b")
	_, err := s.Write([]byte{0x02, 0x03, 0x04})
	assert.Nil(t, err)
	s.Rewind()

	c, err := s.ReadByte()
	assert.Nil(t, err)
	assert.Equal(t, byte(0x02), c)
	assert.Nil(t, s.UnreadByte(0x01))

	got := ReadBlock[uint8](s, 4)
	assert.Equal(t, []uint8{0x01, 0x03, 0x04}, got)
	assert.Nil(t, s.Close())
}
