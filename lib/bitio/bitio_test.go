package bitio

import (
	"errors"
	"testing"
)

func TestBoundedWriter(t *testing.T) {
	buf := make([]byte, 4)
	w := CreateBoundedWriter(buf)

	if w.NumWritten() != 0 {
		t.Errorf("initial written should be 0, got %d", w.NumWritten())
	}
	if w.offset != 0 {
		t.Errorf("initial offset should be 0, got %d", w.offset)
	}

	for i := range 16 {
		if err := w.Write(1, 0); err != nil {
			t.Fatalf("Write %d failed: %v", i+1, err)
		}
	}
	if w.NumWritten() != 16 {
		t.Errorf("after 16 writes, written should be 16, got %d", w.NumWritten())
	}
	if w.offset != 8 {
		t.Errorf("after 16 writes, offset should be 8, got %d", w.offset)
	}

	if err := w.WriteBytes([]byte{0x00}); err != nil {
		t.Fatalf("WriteBytes failed: %v", err)
	}
	if w.NumWritten() != 24 {
		t.Errorf("after WriteBytes, written should be 24, got %d", w.NumWritten())
	}

	if err := w.Align(); err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if w.NumWritten() != 24 {
		t.Errorf("after Align, written should still be 24, got %d", w.NumWritten())
	}

	if err := w.Write(1, 1); err != nil {
		t.Fatalf("Write after Align failed: %v", err)
	}
	if w.NumWritten() != 25 {
		t.Errorf("after writing bit, written should be 25, got %d", w.NumWritten())
	}

	got := w.Bytes()
	want := []byte{0x00, 0x00, 0x00, 0x80}
	if len(got) != len(want) {
		t.Fatalf("bytes length should be %d, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bytes[%d] should be 0x%02x, got 0x%02x", i, want[i], got[i])
		}
	}
}

func TestBoundedWriterOverflow(t *testing.T) {
	buf := make([]byte, 1)
	w := CreateBoundedWriter(buf)
	if err := w.Write(8, 0xFF); err != nil {
		t.Fatalf("first byte should fit: %v", err)
	}
	if err := w.Write(1, 1); !errors.Is(err, ErrBufferFull) {
		t.Fatalf("expected ErrBufferFull, got %v", err)
	}
}

func TestWriteReadBits(t *testing.T) {
	bits := make([]uint8, 64)
	for i := range bits {
		bits[i] = uint8(i + 1)
	}

	cases := []struct {
		name  string
		value func(bit uint8) uint64
	}{
		{"ascending values", func(bit uint8) uint64 { return uint64(bit) }},
		{"all zero", func(bit uint8) uint64 { return 0 }},
		{"all ones", func(bit uint8) uint64 { return (uint64(1) << bit) - 1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, 300)
			w := CreateBoundedWriter(buf)
			for _, bit := range bits {
				if err := w.Write(bit, tc.value(bit)); err != nil {
					t.Fatalf("Write %d bits failed: %v", bit, err)
				}
			}

			r := CreateReader(w.Bytes())
			for _, bit := range bits {
				expected := tc.value(bit)
				actual, err := r.Read(bit)
				if err != nil {
					t.Fatalf("Read %d bits failed: %v", bit, err)
				}
				if actual != expected {
					t.Errorf("Read %d bits: expected %d, got %d", bit, expected, actual)
				}
			}
			if w.NumWritten() != 2080 {
				t.Errorf("total written bits: expected 2080, got %d", w.NumWritten())
			}
			if r.NumRead() != 2080 {
				t.Errorf("total read bits: expected 2080, got %d", r.NumRead())
			}
		})
	}
}

func TestReadShortBuffer(t *testing.T) {
	r := CreateReader([]byte{0xFF})
	if _, err := r.Read(8); err != nil {
		t.Fatalf("first read should succeed: %v", err)
	}
	if _, err := r.Read(1); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
}

func TestAdvanceAndAlignRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	w := CreateBoundedWriter(buf)
	if err := w.Write(3, 0b101); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Align(); err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if err := w.WriteBytes([]byte{0xAB}); err != nil {
		t.Fatalf("WriteBytes failed: %v", err)
	}

	r := CreateReader(w.Bytes())
	if v, err := r.Read(3); err != nil || v != 0b101 {
		t.Fatalf("Read(3) = %d, %v; want 5, nil", v, err)
	}
	if err := r.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	got, err := r.ReadBytes(1)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if got[0] != 0xAB {
		t.Fatalf("ReadBytes = 0x%02x, want 0xAB", got[0])
	}
}
