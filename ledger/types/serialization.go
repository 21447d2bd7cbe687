package types

import (
	"reflect"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

// ----------------- Common -------------------

// ToBytes encodes a persisted record.
func ToBytes(a interface{}) ([]byte, error) {
	switch a.(type) {
	case *VaultState, *PoolRegistry, *DialState, *TokenMint, *TokenAccount, *NativeAccount:
		raw, err := rlp.EncodeToBytes(a)
		if err != nil {
			return nil, errors.Wrapf(err, "ToBytes: failed to encode %v", reflect.TypeOf(a))
		}
		return raw, nil
	default:
		return nil, errors.Errorf("ToBytes: Unsupported type: %v", reflect.TypeOf(a))
	}
}

// FromBytes decodes a persisted record into a.
func FromBytes(in []byte, a interface{}) error {
	switch a.(type) {
	case *VaultState, *PoolRegistry, *DialState, *TokenMint, *TokenAccount, *NativeAccount:
		if err := rlp.DecodeBytes(in, a); err != nil {
			return errors.Wrapf(err, "FromBytes: failed to decode %v", reflect.TypeOf(a))
		}
		return nil
	default:
		return errors.Errorf("FromBytes: Unsupported type: %v", reflect.TypeOf(a))
	}
}

// MustToBytes is ToBytes that panics on failure.
func MustToBytes(a interface{}) []byte {
	raw, err := ToBytes(a)
	if err != nil {
		logger.Panicf("Failed to encode record: %v", err)
	}
	return raw
}
