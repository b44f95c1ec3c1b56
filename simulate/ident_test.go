package simulate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stellarkit/contract-sim/simulate"
)

func TestValidateContractID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		ok   bool
	}{
		{"valid all-A", "C" + strings.Repeat("A", 55), true},
		{"valid mixed", "CDLZFC3SYJYDZT7K67VZ75HPJVIEUVNIXF47ZG2FB2RMQQVU2HHGCYSC", true},
		{"too short", "CABC", false},
		{"too long", "C" + strings.Repeat("A", 56), false},
		{"empty", "", false},
		{"wrong prefix", "G" + strings.Repeat("A", 55), false},
		{"lowercase", "C" + strings.Repeat("a", 55), false},
		{"digit outside base32", "C" + strings.Repeat("A", 54) + "1", false},
		{"digit inside base32", "C" + strings.Repeat("A", 54) + "7", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := simulate.ValidateContractID(tt.id)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
