package simulate

import (
	"encoding/base64"

	"github.com/stellarkit/contract-sim/errors"
)

// decodeRequest turns the encoded request payload into raw module bytes.
// Checks run in a fixed order and short-circuit at the first failure, so a
// failed request always carries exactly one error tied to one field.
func decodeRequest(req Request) ([]byte, *errors.Error) {
	data, err := base64.StdEncoding.DecodeString(req.WasmBinary)
	if err != nil {
		return nil, errors.InvalidEncoding(err)
	}
	if len(data) == 0 {
		return nil, errors.EmptyModule()
	}
	if err := ValidateContractID(req.ContractID); err != nil {
		return nil, errors.InvalidIdentifier(err.Error())
	}
	if req.Name == "" {
		return nil, errors.InvalidName()
	}
	return data, nil
}
