package wasm

// Section is one raw section record pulled from the binary stream. Data
// aliases the scanner's input and must not be mutated.
type Section struct {
	ID   byte
	Data []byte
}

// Name returns the human-readable name of the section.
func (s Section) Name() string {
	return SectionName(s.ID)
}

// Export is a named item a module exposes to its host.
type Export struct {
	Name string
	Kind byte
	Idx  uint32
}

// Import is a named item a module requires from its host.
type Import struct {
	Module string
	Name   string
	Kind   byte
}

// Limits describe the bounds of a table or memory.
type Limits struct {
	Min      uint64
	Max      *uint64
	Shared   bool
	Memory64 bool
}
