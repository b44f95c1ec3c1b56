package binary

import (
	"errors"
	"io"
	"testing"
)

func TestReadU32(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{"zero", []byte{0x00}, 0},
		{"single byte", []byte{0x7F}, 127},
		{"two bytes", []byte{0x80, 0x01}, 128},
		{"max", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, 0xFFFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewReader(tt.data).ReadU32()
			if err != nil {
				t.Fatalf("ReadU32: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadU32 = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadU32Overflow(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}
	if _, err := NewReader(data).ReadU32(); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestReadU32Truncated(t *testing.T) {
	data := []byte{0x80}
	if _, err := NewReader(data).ReadU32(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReadS64SignExtension(t *testing.T) {
	// -1 encodes as a single 0x7F byte.
	got, err := NewReader([]byte{0x7F}).ReadS64()
	if err != nil {
		t.Fatalf("ReadS64: %v", err)
	}
	if got != -1 {
		t.Errorf("ReadS64 = %d, want -1", got)
	}
}

func TestReadName(t *testing.T) {
	data := []byte{0x05, 'h', 'e', 'l', 'l', 'o'}
	name, err := NewReader(data).ReadName()
	if err != nil {
		t.Fatalf("ReadName: %v", err)
	}
	if name != "hello" {
		t.Errorf("ReadName = %q, want %q", name, "hello")
	}
}

func TestReadNameInvalidUTF8(t *testing.T) {
	data := []byte{0x02, 0xFF, 0xFE}
	if _, err := NewReader(data).ReadName(); err == nil {
		t.Error("expected invalid UTF-8 error")
	}
}

func TestPositionTracking(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04})
	if _, err := r.ReadBytes(3); err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if r.Position() != 3 {
		t.Errorf("Position = %d, want 3", r.Position())
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestReadBytesTruncated(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.ReadBytes(2); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestScanErrorFormatting(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if _, err := r.ReadBytes(2); err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	wrapped := r.WrapError("export", io.ErrUnexpectedEOF)
	var se *ScanError
	if !errors.As(wrapped, &se) {
		t.Fatalf("expected *ScanError, got %T", wrapped)
	}
	if se.Offset != 2 || se.Section != "export" {
		t.Errorf("unexpected ScanError fields: %+v", se)
	}
	if !errors.Is(wrapped, io.ErrUnexpectedEOF) {
		t.Error("ScanError should unwrap to the cause")
	}
}
