package crypto

import (
	"github.com/eth2030/txproc/core/types"
	"github.com/eth2030/txproc/rlp"
)

// createAddressRLP is the RLP-serializable pair hashed to derive a
// contract's address: [sender, nonce].
type createAddressRLP struct {
	Sender types.Address
	Nonce  uint64
}

// CreateAddress derives the address of a contract created by sender at the
// given nonce: keccak256(rlp([sender, nonce]))[12:]. The nonce supplied must
// be the sender's nonce as it stood before the creating transaction's own
// nonce increment.
func CreateAddress(sender types.Address, nonce uint64) (types.Address, error) {
	enc, err := rlp.EncodeToBytes(createAddressRLP{Sender: sender, Nonce: nonce})
	if err != nil {
		return types.Address{}, err
	}
	return types.BytesToAddress(Keccak256(enc)[12:]), nil
}
