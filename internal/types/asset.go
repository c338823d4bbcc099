package types

import "fmt"

type AssetKind string

const (
	AssetNative AssetKind = "native"
	AssetERC20  AssetKind = "erc20"
)

func (k AssetKind) ToString() string {
	return string(k)
}

// Discriminator returns the numeric asset tag the delegation gateway
// expects on the wire: 0 for native, 1 for erc20.
func (k AssetKind) Discriminator() (uint8, error) {
	switch k {
	case AssetNative:
		return 0, nil
	case AssetERC20:
		return 1, nil
	default:
		return 0, fmt.Errorf("unknown asset kind: %s", k)
	}
}

func FromStringToAssetKind(s string) (AssetKind, error) {
	switch s {
	case "native":
		return AssetNative, nil
	case "erc20":
		return AssetERC20, nil
	default:
		return "", fmt.Errorf("unknown asset kind: %s", s)
	}
}
