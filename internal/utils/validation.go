package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// IsValidEthAddress checks if the provided address is a valid 20 byte
// 0x-prefixed hex address.
// Note: it does not check whether the address exists on chain.
func IsValidEthAddress(address string) bool {
	return common.IsHexAddress(address)
}

// NormalizeEthAddress returns the canonical lowercase form of an address.
// Depositor addresses are stored and matched in this form so that lookups
// are insensitive to checksum casing.
func NormalizeEthAddress(address string) string {
	return strings.ToLower(common.HexToAddress(address).Hex())
}

// IsValidOperatorId checks if the given string is a 0x-prefixed 32 byte hex
// identifier, the form the delegation gateway uses for operator ids.
func IsValidOperatorId(id string) bool {
	decoded, err := hexutil.Decode(id)
	if err != nil {
		return false
	}
	return len(decoded) == 32
}
