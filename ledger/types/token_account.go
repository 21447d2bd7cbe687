package types

import "fmt"

// TokenMint is a mint of the reference token ledger with the transfer fee
// extension.
type TokenMint struct {
	Address           PublicKey
	Decimals          uint8
	Supply            uint64
	TransferFeeBps    uint16
	MaximumFee        uint64
	WithheldAmount    uint64 // harvested into the mint, not yet withdrawn
	FeeAuthority      PublicKey
	WithdrawAuthority PublicKey
	AntiSniper        bool // transfer hook enforcing AntiSniperLimit
}

func (m *TokenMint) String() string {
	return fmt.Sprintf("TokenMint{%v decimals:%v supply:%v fee:%v withheld:%v}",
		m.Address, m.Decimals, m.Supply, m.TransferFeeBps, m.WithheldAmount)
}

// TokenAccount holds a balance of one mint.
type TokenAccount struct {
	Address  PublicKey
	Mint     PublicKey
	Owner    PublicKey
	Amount   uint64
	Withheld uint64 // fees withheld on incoming transfers
}

func (a *TokenAccount) String() string {
	return fmt.Sprintf("TokenAccount{%v mint:%v owner:%v amount:%v withheld:%v}",
		a.Address, a.Mint, a.Owner, a.Amount, a.Withheld)
}

// NativeAccount holds a native balance in lamports.
type NativeAccount struct {
	Address  PublicKey
	Lamports uint64
}
