package types

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

var logger *log.Entry = log.WithFields(log.Fields{"prefix": "ledger"})

/*
Tx (Transaction) is an atomic call against a vault record.

Transaction Types:
 - InitializeTx                 Create the vault record of a token mint
 - SetLaunchTimeTx              Record the launch time, permissionless and one-time
 - UpdateTransferFeeTx          Push the transfer fee the schedule entitles
 - HarvestFeesTx                Collect withheld fees and split them to owner and treasury
 - DistributeRewardsTx          Pay the reward pool to a holder snapshot
 - ManageExclusionsTx           Add or remove fee and reward exclusions
 - UpdateConfigTx               Change vault configuration
 - EmergencyWithdrawTx          Withdraw custodied tokens or native value
 - EmergencyWithdrawWithheldTx  Withdraw withheld fees straight from accounts
 - UpdatePoolRegistryTx         Register liquidity pools
 - InitializeDialTx             Create the reward token scheduler record
 - UpdateRewardTokenTx          Select the next reward token
*/

type Tx interface {
	AssertIsTx()
	GetSigner() PublicKey
	GetMint() PublicKey
}

// TxName returns the short name of the transaction type.
func TxName(tx Tx) string {
	switch tx.(type) {
	case *InitializeTx:
		return "initialize"
	case *SetLaunchTimeTx:
		return "set_launch_time"
	case *UpdateTransferFeeTx:
		return "update_transfer_fee"
	case *HarvestFeesTx:
		return "harvest_fees"
	case *DistributeRewardsTx:
		return "distribute_rewards"
	case *ManageExclusionsTx:
		return "manage_exclusions"
	case *UpdateConfigTx:
		return "update_config"
	case *EmergencyWithdrawTx:
		return "emergency_withdraw"
	case *EmergencyWithdrawWithheldTx:
		return "emergency_withdraw_withheld"
	case *UpdatePoolRegistryTx:
		return "update_pool_registry"
	case *InitializeDialTx:
		return "initialize_dial"
	case *UpdateRewardTokenTx:
		return "update_reward_token"
	default:
		return "unknown"
	}
}

//-----------------------------------------------------------------------------

type InitializeTx struct {
	Signer          PublicKey
	Mint            PublicKey
	Authority       PublicKey
	KeeperAuthority PublicKey
	OwnerWallet     PublicKey
	Treasury        PublicKey // defaults to Authority when zero
	RewardTokenMint PublicKey // defaults to NativeMint when zero
	MinHoldAmount   uint64
}

func (_ *InitializeTx) AssertIsTx() {}
func (tx *InitializeTx) GetSigner() PublicKey { return tx.Signer }
func (tx *InitializeTx) GetMint() PublicKey { return tx.Mint }

func (tx *InitializeTx) String() string {
	return fmt.Sprintf("InitializeTx{%v mint:%v authority:%v keeper:%v owner:%v treasury:%v min:%v}",
		tx.Signer, tx.Mint, tx.Authority, tx.KeeperAuthority, tx.OwnerWallet, tx.Treasury, tx.MinHoldAmount)
}

//-----------------------------------------------------------------------------

type SetLaunchTimeTx struct {
	Signer PublicKey
	Mint   PublicKey
}

func (_ *SetLaunchTimeTx) AssertIsTx() {}
func (tx *SetLaunchTimeTx) GetSigner() PublicKey { return tx.Signer }
func (tx *SetLaunchTimeTx) GetMint() PublicKey { return tx.Mint }

func (tx *SetLaunchTimeTx) String() string {
	return fmt.Sprintf("SetLaunchTimeTx{%v mint:%v}", tx.Signer, tx.Mint)
}

//-----------------------------------------------------------------------------

type UpdateTransferFeeTx struct {
	Signer    PublicKey
	Mint      PublicKey
	NewFeeBps uint16
}

func (_ *UpdateTransferFeeTx) AssertIsTx() {}
func (tx *UpdateTransferFeeTx) GetSigner() PublicKey { return tx.Signer }
func (tx *UpdateTransferFeeTx) GetMint() PublicKey { return tx.Mint }

func (tx *UpdateTransferFeeTx) String() string {
	return fmt.Sprintf("UpdateTransferFeeTx{%v mint:%v fee:%v}", tx.Signer, tx.Mint, tx.NewFeeBps)
}

//-----------------------------------------------------------------------------

type HarvestFeesTx struct {
	Signer   PublicKey
	Mint     PublicKey
	Accounts []PublicKey
}

func (_ *HarvestFeesTx) AssertIsTx() {}
func (tx *HarvestFeesTx) GetSigner() PublicKey { return tx.Signer }
func (tx *HarvestFeesTx) GetMint() PublicKey { return tx.Mint }

func (tx *HarvestFeesTx) String() string {
	return fmt.Sprintf("HarvestFeesTx{%v mint:%v accounts:%v}", tx.Signer, tx.Mint, len(tx.Accounts))
}

//-----------------------------------------------------------------------------

type DistributeRewardsTx struct {
	Signer  PublicKey
	Mint    PublicKey
	Holders []HolderSnapshotEntry

	// SnapshotTotal fixes the eligible total of a round spanning several
	// calls. Nil computes the total from Holders.
	SnapshotTotal *uint64
	// RewardPool fixes the reward amount of a round spanning several calls.
	// Nil uses the whole custody balance.
	RewardPool *uint64
}

func (_ *DistributeRewardsTx) AssertIsTx() {}
func (tx *DistributeRewardsTx) GetSigner() PublicKey { return tx.Signer }
func (tx *DistributeRewardsTx) GetMint() PublicKey { return tx.Mint }

func (tx *DistributeRewardsTx) String() string {
	return fmt.Sprintf("DistributeRewardsTx{%v mint:%v holders:%v}", tx.Signer, tx.Mint, len(tx.Holders))
}

//-----------------------------------------------------------------------------

// ExclusionAction is the operation of a ManageExclusionsTx.
type ExclusionAction uint8

const (
	ExclusionAdd ExclusionAction = iota
	ExclusionRemove
)

func (a ExclusionAction) String() string {
	if a == ExclusionRemove {
		return "remove"
	}
	return "add"
}

type ManageExclusionsTx struct {
	Signer PublicKey
	Mint   PublicKey
	Action ExclusionAction
	Kind   ExclusionKind
	Wallet PublicKey
}

func (_ *ManageExclusionsTx) AssertIsTx() {}
func (tx *ManageExclusionsTx) GetSigner() PublicKey { return tx.Signer }
func (tx *ManageExclusionsTx) GetMint() PublicKey { return tx.Mint }

func (tx *ManageExclusionsTx) String() string {
	return fmt.Sprintf("ManageExclusionsTx{%v mint:%v %v %v %v}", tx.Signer, tx.Mint, tx.Action, tx.Kind, tx.Wallet)
}

//-----------------------------------------------------------------------------

// UpdateConfigTx changes the fields that are set and leaves the rest as is.
type UpdateConfigTx struct {
	Signer PublicKey
	Mint   PublicKey

	NewAuthority        *PublicKey
	NewKeeperAuthority  *PublicKey
	NewOwnerWallet      *PublicKey
	NewTreasury         *PublicKey
	NewRewardTokenMint  *PublicKey
	NewMinHoldAmount    *uint64
	NewHarvestThreshold *uint64
	Paused              *bool
}

func (_ *UpdateConfigTx) AssertIsTx() {}
func (tx *UpdateConfigTx) GetSigner() PublicKey { return tx.Signer }
func (tx *UpdateConfigTx) GetMint() PublicKey { return tx.Mint }

func (tx *UpdateConfigTx) String() string {
	return fmt.Sprintf("UpdateConfigTx{%v mint:%v}", tx.Signer, tx.Mint)
}

//-----------------------------------------------------------------------------

// EmergencyWithdrawTx moves custodied value of Asset to Destination. Asset
// NativeMint withdraws native value and Destination is then a wallet,
// otherwise Destination is a token account of Asset.
type EmergencyWithdrawTx struct {
	Signer      PublicKey
	Mint        PublicKey
	Asset       PublicKey
	Destination PublicKey
	Amount      uint64
	All         bool
}

func (_ *EmergencyWithdrawTx) AssertIsTx() {}
func (tx *EmergencyWithdrawTx) GetSigner() PublicKey { return tx.Signer }
func (tx *EmergencyWithdrawTx) GetMint() PublicKey { return tx.Mint }

func (tx *EmergencyWithdrawTx) String() string {
	return fmt.Sprintf("EmergencyWithdrawTx{%v mint:%v asset:%v to:%v amount:%v all:%v}",
		tx.Signer, tx.Mint, tx.Asset, tx.Destination, tx.Amount, tx.All)
}

//-----------------------------------------------------------------------------

type EmergencyWithdrawWithheldTx struct {
	Signer      PublicKey
	Mint        PublicKey
	Accounts    []PublicKey
	Destination PublicKey // token account of Mint
}

func (_ *EmergencyWithdrawWithheldTx) AssertIsTx() {}
func (tx *EmergencyWithdrawWithheldTx) GetSigner() PublicKey { return tx.Signer }
func (tx *EmergencyWithdrawWithheldTx) GetMint() PublicKey { return tx.Mint }

func (tx *EmergencyWithdrawWithheldTx) String() string {
	return fmt.Sprintf("EmergencyWithdrawWithheldTx{%v mint:%v accounts:%v to:%v}",
		tx.Signer, tx.Mint, len(tx.Accounts), tx.Destination)
}

//-----------------------------------------------------------------------------

type UpdatePoolRegistryTx struct {
	Signer PublicKey
	Mint   PublicKey
	Pools  []PublicKey
}

func (_ *UpdatePoolRegistryTx) AssertIsTx() {}
func (tx *UpdatePoolRegistryTx) GetSigner() PublicKey { return tx.Signer }
func (tx *UpdatePoolRegistryTx) GetMint() PublicKey { return tx.Mint }

func (tx *UpdatePoolRegistryTx) String() string {
	return fmt.Sprintf("UpdatePoolRegistryTx{%v mint:%v pools:%v}", tx.Signer, tx.Mint, len(tx.Pools))
}

//-----------------------------------------------------------------------------

type InitializeDialTx struct {
	Signer          PublicKey
	Mint            PublicKey
	Treasury        PublicKey
	LaunchTimestamp uint64 // zero copies the vault's launch time
}

func (_ *InitializeDialTx) AssertIsTx() {}
func (tx *InitializeDialTx) GetSigner() PublicKey { return tx.Signer }
func (tx *InitializeDialTx) GetMint() PublicKey { return tx.Mint }

func (tx *InitializeDialTx) String() string {
	return fmt.Sprintf("InitializeDialTx{%v mint:%v launch:%v}", tx.Signer, tx.Mint, tx.LaunchTimestamp)
}

//-----------------------------------------------------------------------------

type UpdateRewardTokenTx struct {
	Signer         PublicKey
	Mint           PublicKey
	NewRewardToken PublicKey
}

func (_ *UpdateRewardTokenTx) AssertIsTx() {}
func (tx *UpdateRewardTokenTx) GetSigner() PublicKey { return tx.Signer }
func (tx *UpdateRewardTokenTx) GetMint() PublicKey { return tx.Mint }

func (tx *UpdateRewardTokenTx) String() string {
	return fmt.Sprintf("UpdateRewardTokenTx{%v mint:%v token:%v}", tx.Signer, tx.Mint, tx.NewRewardToken)
}
