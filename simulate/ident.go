package simulate

import "fmt"

// contractIDLength is the strkey length of a Stellar contract address.
const contractIDLength = 56

// ValidateContractID checks the contract address grammar: a strkey of
// exactly 56 characters, starting with 'C', followed by base32 characters
// (A-Z and 2-7). It does not verify the embedded checksum.
func ValidateContractID(id string) error {
	if len(id) != contractIDLength {
		return fmt.Errorf("contract ID must be %d characters, got %d", contractIDLength, len(id))
	}
	if id[0] != 'C' {
		return fmt.Errorf("contract ID must start with 'C'")
	}
	for i := 1; i < len(id); i++ {
		c := id[i]
		if (c < 'A' || c > 'Z') && (c < '2' || c > '7') {
			return fmt.Errorf("contract ID contains invalid character %q at position %d", c, i)
		}
	}
	return nil
}
