package wasm

import (
	"bytes"
	"encoding/binary"
)

// Module is a minimal structural description of a WASM binary, used to
// synthesize well-formed modules for tests and tooling. It covers only the
// sections the scanner reports on; code bodies are emitted as empty stubs.
type Module struct {
	Types    int // count of ()->() function types; defaults to 1 when Funcs is non-empty
	Funcs    []uint32
	Tables   []Limits
	Memories []Limits
	Imports  []Import
	Exports  []Export
	Data     [][]byte // passive data segments
	Customs  []CustomSection

	// EmptyCode emits a code section declaring zero bodies regardless of
	// Funcs. Used to reproduce modules whose code section was stripped.
	EmptyCode bool
}

// CustomSection is a named custom section payload.
type CustomSection struct {
	Name string
	Data []byte
}

// EncodeHeader returns the 8-byte module header with the given version.
func EncodeHeader(version uint32) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], Magic)
	binary.LittleEndian.PutUint32(buf[4:8], version)
	return buf
}

// AppendSection appends a framed section (ID, size, payload) to dst.
func AppendSection(dst []byte, id byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte(id)
	writeLEB128u(&buf, uint32(len(payload)))
	buf.Write(payload)
	return append(dst, buf.Bytes()...)
}

// Encode serializes the module in canonical section order.
func (m *Module) Encode() []byte {
	out := EncodeHeader(Version)

	numTypes := m.Types
	if numTypes == 0 && len(m.Funcs) > 0 {
		numTypes = 1
	}
	if numTypes > 0 {
		var buf bytes.Buffer
		writeLEB128u(&buf, uint32(numTypes))
		for i := 0; i < numTypes; i++ {
			buf.WriteByte(0x60) // functype
			buf.WriteByte(0x00) // no params
			buf.WriteByte(0x00) // no results
		}
		out = AppendSection(out, SectionType, buf.Bytes())
	}

	if len(m.Imports) > 0 {
		var buf bytes.Buffer
		writeLEB128u(&buf, uint32(len(m.Imports)))
		for _, imp := range m.Imports {
			writeName(&buf, imp.Module)
			writeName(&buf, imp.Name)
			buf.WriteByte(imp.Kind)
			switch imp.Kind {
			case KindFunc:
				writeLEB128u(&buf, 0) // type index
			case KindTable:
				buf.WriteByte(0x70) // funcref
				writeLimits(&buf, Limits{Min: 0})
			case KindMemory:
				writeLimits(&buf, Limits{Min: 1})
			case KindGlobal:
				buf.WriteByte(0x7F) // i32
				buf.WriteByte(0x00) // immutable
			case KindTag:
				buf.WriteByte(0x00)
				writeLEB128u(&buf, 0)
			}
		}
		out = AppendSection(out, SectionImport, buf.Bytes())
	}

	if len(m.Funcs) > 0 {
		var buf bytes.Buffer
		writeLEB128u(&buf, uint32(len(m.Funcs)))
		for _, typeIdx := range m.Funcs {
			writeLEB128u(&buf, typeIdx)
		}
		out = AppendSection(out, SectionFunction, buf.Bytes())
	}

	if len(m.Tables) > 0 {
		var buf bytes.Buffer
		writeLEB128u(&buf, uint32(len(m.Tables)))
		for _, limits := range m.Tables {
			buf.WriteByte(0x70) // funcref
			writeLimits(&buf, limits)
		}
		out = AppendSection(out, SectionTable, buf.Bytes())
	}

	if len(m.Memories) > 0 {
		var buf bytes.Buffer
		writeLEB128u(&buf, uint32(len(m.Memories)))
		for _, limits := range m.Memories {
			writeLimits(&buf, limits)
		}
		out = AppendSection(out, SectionMemory, buf.Bytes())
	}

	if len(m.Exports) > 0 {
		var buf bytes.Buffer
		writeLEB128u(&buf, uint32(len(m.Exports)))
		for _, exp := range m.Exports {
			writeName(&buf, exp.Name)
			buf.WriteByte(exp.Kind)
			writeLEB128u(&buf, exp.Idx)
		}
		out = AppendSection(out, SectionExport, buf.Bytes())
	}

	if len(m.Funcs) > 0 || m.EmptyCode {
		var buf bytes.Buffer
		if m.EmptyCode {
			writeLEB128u(&buf, 0)
		} else {
			writeLEB128u(&buf, uint32(len(m.Funcs)))
			for range m.Funcs {
				// body: size 2, zero local groups, end opcode
				buf.Write([]byte{0x02, 0x00, 0x0B})
			}
		}
		out = AppendSection(out, SectionCode, buf.Bytes())
	}

	if len(m.Data) > 0 {
		var buf bytes.Buffer
		writeLEB128u(&buf, uint32(len(m.Data)))
		for _, seg := range m.Data {
			writeLEB128u(&buf, 1) // passive segment
			writeLEB128u(&buf, uint32(len(seg)))
			buf.Write(seg)
		}
		out = AppendSection(out, SectionData, buf.Bytes())
	}

	for _, custom := range m.Customs {
		var buf bytes.Buffer
		writeName(&buf, custom.Name)
		buf.Write(custom.Data)
		out = AppendSection(out, SectionCustom, buf.Bytes())
	}

	return out
}

func writeLEB128u(w *bytes.Buffer, v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.WriteByte(b)
		if v == 0 {
			break
		}
	}
}

func writeLEB128u64(w *bytes.Buffer, v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.WriteByte(b)
		if v == 0 {
			break
		}
	}
}

func writeName(w *bytes.Buffer, name string) {
	writeLEB128u(w, uint32(len(name)))
	w.WriteString(name)
}

func writeLimits(w *bytes.Buffer, l Limits) {
	var flags byte
	if l.Max != nil {
		flags |= LimitsHasMax
	}
	if l.Shared {
		flags |= LimitsShared
	}
	if l.Memory64 {
		flags |= LimitsMemory64
	}
	w.WriteByte(flags)
	if l.Memory64 {
		writeLEB128u64(w, l.Min)
		if l.Max != nil {
			writeLEB128u64(w, *l.Max)
		}
	} else {
		writeLEB128u(w, uint32(l.Min))
		if l.Max != nil {
			writeLEB128u(w, uint32(*l.Max))
		}
	}
}
