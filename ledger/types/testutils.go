package types

// Helper functions for testing

// TestVault returns an initialized vault record with deterministic system
// addresses and system exclusions in place.
func TestVault() *VaultState {
	mint := MakeAddress("mint")
	vaultAddr, bump, err := FindVaultAddress(DefaultProgramID, mint)
	if err != nil {
		panic(err)
	}
	v := &VaultState{
		Authority:        MakeAddress("authority"),
		KeeperAuthority:  MakeAddress("keeper"),
		OwnerWallet:      MakeAddress("owner"),
		Treasury:         MakeAddress("treasury"),
		TokenMint:        mint,
		RewardTokenMint:  NativeMint,
		ProgramID:        DefaultProgramID,
		VaultAddress:     vaultAddr,
		Bump:             bump,
		TokenDecimals:    DefaultTokenDecimals,
		HarvestThreshold: DefaultHarvestThreshold,
	}
	if res := v.EnsureSystemExclusions(0, v.Authority); res.IsError() {
		panic(res)
	}
	return v
}

// Uint64Ptr returns a pointer to v.
func Uint64Ptr(v uint64) *uint64 {
	return &v
}

// AddressPtr returns a pointer to addr.
func AddressPtr(addr PublicKey) *PublicKey {
	return &addr
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
