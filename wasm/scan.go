package wasm

import (
	"errors"
	"fmt"
	"io"

	"github.com/stellarkit/contract-sim/wasm/internal/binary"
)

// Header errors returned by NewScanner.
var (
	ErrInvalidMagic = errors.New("invalid wasm magic number")
	ErrShortHeader  = errors.New("truncated wasm header")
)

// Scanner pulls raw sections out of a WASM binary one at a time. It reads
// only structural framing (section IDs, sizes, payload bytes) and leaves
// payload interpretation to the per-section parse functions, so a malformed
// payload in one section never prevents the next section from being read.
//
// The input is treated as untrusted. Section payloads alias the input slice
// and no payload is ever decoded beyond what the caller asks for.
type Scanner struct {
	r       *binary.Reader
	version uint32
}

// NewScanner validates the 8-byte module header and returns a Scanner
// positioned at the first section. The version field is recorded but not
// checked; callers that care should compare Version against wasm.Version.
func NewScanner(data []byte) (*Scanner, error) {
	r := binary.NewReader(data)
	magic, err := r.ReadU32LE()
	if err != nil {
		return nil, ErrShortHeader
	}
	if magic != Magic {
		return nil, ErrInvalidMagic
	}
	version, err := r.ReadU32LE()
	if err != nil {
		return nil, ErrShortHeader
	}
	return &Scanner{r: r, version: version}, nil
}

// Version returns the version field from the module header.
func (s *Scanner) Version() uint32 {
	return s.version
}

// Next returns the next section in the stream, or io.EOF at a clean end of
// input. A framing error (truncated section size or payload) ends the scan,
// because the following section boundary can no longer be located.
func (s *Scanner) Next() (Section, error) {
	id, err := s.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Section{}, io.EOF
		}
		return Section{}, s.r.WrapError("section header", err)
	}

	size, err := s.r.ReadU32()
	if err != nil {
		return Section{}, s.r.WrapError("section size", err)
	}
	if int(size) > s.r.Len() {
		return Section{}, s.r.WrapError(SectionName(id),
			fmt.Errorf("section size %d exceeds remaining %d bytes", size, s.r.Len()))
	}

	data, err := s.r.ReadBytes(int(size))
	if err != nil {
		return Section{}, s.r.WrapError(SectionName(id), err)
	}
	return Section{ID: id, Data: data}, nil
}

// EntryCount reads the leading vector length shared by all counted sections
// (type, import, function, table, memory, global, export, element, code,
// data, and tag).
func EntryCount(sec Section) (uint32, error) {
	r := binary.NewReader(sec.Data)
	count, err := r.ReadU32()
	if err != nil {
		return 0, r.WrapError(sec.Name(), err)
	}
	return count, nil
}

// ParseExports decodes an export section payload.
func ParseExports(sec Section) ([]Export, error) {
	r := binary.NewReader(sec.Data)
	count, err := r.ReadU32()
	if err != nil {
		return nil, r.WrapError("export", err)
	}
	exports := make([]Export, 0, min(count, 1024))
	for i := uint32(0); i < count; i++ {
		name, err := r.ReadName()
		if err != nil {
			return exports, r.WrapError("export", err)
		}
		kind, err := r.ReadByte()
		if err != nil {
			return exports, r.WrapError("export", err)
		}
		if kind > KindTag {
			return exports, r.WrapError("export", fmt.Errorf("invalid export kind 0x%02x", kind))
		}
		idx, err := r.ReadU32()
		if err != nil {
			return exports, r.WrapError("export", err)
		}
		exports = append(exports, Export{Name: name, Kind: kind, Idx: idx})
	}
	return exports, nil
}

// ParseImports decodes an import section payload. Descriptor details beyond
// the kind byte are consumed but not retained.
func ParseImports(sec Section) ([]Import, error) {
	r := binary.NewReader(sec.Data)
	count, err := r.ReadU32()
	if err != nil {
		return nil, r.WrapError("import", err)
	}
	imports := make([]Import, 0, min(count, 1024))
	for i := uint32(0); i < count; i++ {
		module, err := r.ReadName()
		if err != nil {
			return imports, r.WrapError("import", err)
		}
		name, err := r.ReadName()
		if err != nil {
			return imports, r.WrapError("import", err)
		}
		kind, err := r.ReadByte()
		if err != nil {
			return imports, r.WrapError("import", err)
		}
		if err := skipImportDesc(r, kind); err != nil {
			return imports, r.WrapError("import", err)
		}
		imports = append(imports, Import{Module: module, Name: name, Kind: kind})
	}
	return imports, nil
}

// ParseMemories decodes a memory section payload into limits entries.
func ParseMemories(sec Section) ([]Limits, error) {
	r := binary.NewReader(sec.Data)
	count, err := r.ReadU32()
	if err != nil {
		return nil, r.WrapError("memory", err)
	}
	memories := make([]Limits, 0, min(count, 16))
	for i := uint32(0); i < count; i++ {
		limits, err := readLimits(r)
		if err != nil {
			return memories, r.WrapError("memory", err)
		}
		memories = append(memories, limits)
	}
	return memories, nil
}

// ParseCustomName decodes the name prefix of a custom section and returns it
// together with the remaining payload.
func ParseCustomName(sec Section) (string, []byte, error) {
	r := binary.NewReader(sec.Data)
	name, err := r.ReadName()
	if err != nil {
		return "", nil, r.WrapError("custom", err)
	}
	return name, r.ReadRemaining(), nil
}

func skipImportDesc(r *binary.Reader, kind byte) error {
	switch kind {
	case KindFunc:
		_, err := r.ReadU32()
		return err
	case KindTable:
		if err := skipRefType(r); err != nil {
			return err
		}
		_, err := readLimits(r)
		return err
	case KindMemory:
		_, err := readLimits(r)
		return err
	case KindGlobal:
		if err := skipRefType(r); err != nil {
			return err
		}
		_, err := r.ReadByte() // mutability
		return err
	case KindTag:
		if _, err := r.ReadByte(); err != nil { // attribute
			return err
		}
		_, err := r.ReadU32() // type index
		return err
	default:
		return fmt.Errorf("unknown import kind 0x%02x", kind)
	}
}

// skipRefType consumes a value or reference type byte, plus the heap type
// immediate that follows GC reference encodings.
func skipRefType(r *binary.Reader) error {
	b, err := r.ReadByte()
	if err != nil {
		return err
	}
	if b == RefNullByte || b == RefByte {
		_, err = r.ReadS64()
		return err
	}
	return nil
}

func readLimits(r *binary.Reader) (Limits, error) {
	flags, err := r.ReadByte()
	if err != nil {
		return Limits{}, err
	}

	memory64 := flags&LimitsMemory64 != 0
	l := Limits{
		Shared:   flags&LimitsShared != 0,
		Memory64: memory64,
	}

	if memory64 {
		l.Min, err = r.ReadU64()
		if err != nil {
			return Limits{}, err
		}
		if flags&LimitsHasMax != 0 {
			maxVal, err := r.ReadU64()
			if err != nil {
				return Limits{}, err
			}
			l.Max = &maxVal
		}
	} else {
		minVal, err := r.ReadU32()
		if err != nil {
			return Limits{}, err
		}
		l.Min = uint64(minVal)
		if flags&LimitsHasMax != 0 {
			maxVal, err := r.ReadU32()
			if err != nil {
				return Limits{}, err
			}
			max64 := uint64(maxVal)
			l.Max = &max64
		}
	}

	if l.Max != nil && l.Min > *l.Max {
		return Limits{}, fmt.Errorf("limits min (%d) exceeds max (%d)", l.Min, *l.Max)
	}

	return l, nil
}
