package simulate

import "bytes"

// vocabEntry is one known contract entry-point name with its static guesses.
type vocabEntry struct {
	name       string
	paramCount uint32
	returnType string
	isView     bool
}

// vocabulary is the fixed set of common Soroban entry-point names the
// extractor recognizes, with guessed signatures. Custom-named functions are
// invisible to this table; that is an accepted false-negative.
var vocabulary = []vocabEntry{
	{"init", 1, "void", false},
	{"set_admin", 2, "void", false},
	{"get_admin", 0, "Address", true},
	{"transfer", 2, "void", false},
	{"balance", 0, "Address", true},
	{"mint", 2, "void", false},
	{"burn", 1, "void", false},
	{"vote", 1, "void", false},
	{"proposal", 1, "void", false},
}

// ExtractABI derives a best-effort interface preview by scanning the raw
// module bytes for known entry-point names. It never fails: when nothing in
// the vocabulary matches, the result is simply empty and the pipeline
// continues. Presence of a record here is a guess, not ground truth.
//
// TODO: decode the contractspecv0 custom section instead of substring
// matching once an XDR reader for it lands; the result contract (best-effort,
// non-fatal) must not change.
func ExtractABI(data []byte) ABIResult {
	var res ABIResult
	for _, entry := range vocabulary {
		if !bytes.Contains(data, []byte(entry.name)) {
			continue
		}
		res.Types = append(res.Types, entry.name)
		res.Functions = append(res.Functions, FunctionInfo{
			Name:       entry.name,
			ParamCount: entry.paramCount,
			ReturnType: entry.returnType,
			IsView:     entry.isView,
		})
	}
	return res
}
