package util

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/Layr-Labs/merkle-proof-go/pkg/config"
)

func EncodeString(str string) ([]byte, error) {
	// Define the ABI for a single string parameter
	stringType, _ := abi.NewType("string", "", nil)
	arguments := abi.Arguments{{Type: stringType}}

	// Encode the string
	encoded, err := arguments.Pack(str)
	if err != nil {
		return nil, err
	}

	return encoded, nil
}

// DecodeLeaf converts a textual leaf value into raw leaf bytes according to encoding.
func DecodeLeaf(value string, encoding config.LeafEncoding) ([]byte, error) {
	switch encoding {
	case config.LeafEncodingRaw:
		return []byte(value), nil
	case config.LeafEncodingHex:
		b, err := hexutil.Decode(value)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid hex leaf %q", value)
		}
		return b, nil
	case config.LeafEncodingABIString:
		b, err := EncodeString(value)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to abi-encode leaf %q", value)
		}
		return b, nil
	default:
		return nil, errors.Errorf("unsupported leaf encoding: %s", encoding)
	}
}

// DecodeLeaves applies DecodeLeaf to every value, keeping order.
func DecodeLeaves(values []string, encoding config.LeafEncoding) ([][]byte, error) {
	leaves := make([][]byte, 0, len(values))
	for i, v := range values {
		leaf, err := DecodeLeaf(v, encoding)
		if err != nil {
			return nil, errors.Wrapf(err, "leaf %d", i)
		}
		leaves = append(leaves, leaf)
	}
	return leaves, nil
}
