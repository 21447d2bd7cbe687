package token

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/types"
)

var logger *log.Entry = log.WithFields(log.Fields{"prefix": "token"})

var _ types.TokenLedger = (*Ledger)(nil)

// Ledger is a reference token layer with the transfer fee extension. Records
// live in the StoreView it is bound to, so token movements commit or roll
// back together with the vault call that caused them.
//
// A transfer withholds min(amount*bps/10000, maxFee) in the destination
// account unless the owner of either side is fee excluded by the vault of
// the mint.
type Ledger struct {
	view *state.StoreView
	now  time.Time
}

// NewLedger binds a token ledger to view. now is the time transfer hooks observe.
func NewLedger(view *state.StoreView, now time.Time) *Ledger {
	return &Ledger{
		view: view,
		now:  now,
	}
}

// CreateMint registers a new mint
func (l *Ledger) CreateMint(mint *types.TokenMint) error {
	if l.view.GetTokenMint(mint.Address) != nil {
		return errors.Wrapf(ErrMintExists, "mint %v", mint.Address)
	}
	l.view.SetTokenMint(mint)
	logger.Debugf("Created mint %v", mint)
	return nil
}

// OpenAccount creates the associated token account of owner for mint, if it
// does not exist yet, and returns its address
func (l *Ledger) OpenAccount(owner, mint types.PublicKey) (types.PublicKey, error) {
	addr, err := types.AssociatedTokenAddress(owner, mint)
	if err != nil {
		return types.ZeroAddress, err
	}
	if l.view.GetTokenAccount(addr) != nil {
		return addr, nil
	}
	if err := l.CreateAccount(addr, owner, mint); err != nil {
		return types.ZeroAddress, err
	}
	return addr, nil
}

// CreateAccount creates a token account at an explicit address
func (l *Ledger) CreateAccount(addr, owner, mint types.PublicKey) error {
	if l.view.GetTokenMint(mint) == nil {
		return errors.Wrapf(ErrMintNotFound, "mint %v", mint)
	}
	if l.view.GetTokenAccount(addr) != nil {
		return errors.Wrapf(ErrAccountExists, "account %v", addr)
	}
	l.view.SetTokenAccount(&types.TokenAccount{
		Address: addr,
		Mint:    mint,
		Owner:   owner,
	})
	return nil
}

// MintTo issues new supply into account
func (l *Ledger) MintTo(account types.PublicKey, amount uint64) error {
	acc, err := l.getAccount(account)
	if err != nil {
		return err
	}
	mint, err := l.getMint(acc.Mint)
	if err != nil {
		return err
	}
	supply, ok := types.CheckedAdd(mint.Supply, amount)
	if !ok {
		return ErrArithmeticOverflow
	}
	balance, ok := types.CheckedAdd(acc.Amount, amount)
	if !ok {
		return ErrArithmeticOverflow
	}
	mint.Supply = supply
	acc.Amount = balance
	l.view.SetTokenMint(mint)
	l.view.SetTokenAccount(acc)
	return nil
}

// Airdrop credits native value to addr
func (l *Ledger) Airdrop(addr types.PublicKey, lamports uint64) error {
	acc := l.view.GetNativeAccount(addr)
	balance, ok := types.CheckedAdd(acc.Lamports, lamports)
	if !ok {
		return ErrArithmeticOverflow
	}
	acc.Lamports = balance
	l.view.SetNativeAccount(acc)
	return nil
}

// GetMint returns a mint record, nil if absent
func (l *Ledger) GetMint(mint types.PublicKey) *types.TokenMint {
	return l.view.GetTokenMint(mint)
}

// GetAccount returns a token account record, nil if absent
func (l *Ledger) GetAccount(account types.PublicKey) *types.TokenAccount {
	return l.view.GetTokenAccount(account)
}

func (l *Ledger) getMint(mint types.PublicKey) (*types.TokenMint, error) {
	m := l.view.GetTokenMint(mint)
	if m == nil {
		return nil, errors.Wrapf(ErrMintNotFound, "mint %v", mint)
	}
	return m, nil
}

func (l *Ledger) getAccount(account types.PublicKey) (*types.TokenAccount, error) {
	acc := l.view.GetTokenAccount(account)
	if acc == nil {
		return nil, errors.Wrapf(ErrAccountNotFound, "account %v", account)
	}
	return acc, nil
}

func (l *Ledger) getMintAccount(mint, account types.PublicKey) (*types.TokenAccount, error) {
	acc, err := l.getAccount(account)
	if err != nil {
		return nil, err
	}
	if acc.Mint != mint {
		return nil, errors.Wrapf(ErrMintMismatch, "account %v", account)
	}
	return acc, nil
}

func (l *Ledger) feeExempt(mint types.PublicKey, owners ...types.PublicKey) bool {
	vault := l.view.GetVault(mint)
	if vault == nil {
		return false
	}
	for _, owner := range owners {
		if vault.IsFeeExcluded(owner) {
			return true
		}
	}
	return false
}

// checkTransferHook enforces the anti-sniper cap of mints that carry the hook.
// The launch time is the one recorded by the vault of the mint.
func (l *Ledger) checkTransferHook(mint *types.TokenMint, amount uint64) error {
	if !mint.AntiSniper {
		return nil
	}
	vault := l.view.GetVault(mint.Address)
	if vault == nil || !vault.IsLaunched() {
		return nil
	}
	limit, active := types.AntiSniperLimit(vault.LaunchTime(), l.now, mint.Supply)
	if active && amount > limit {
		return errors.Wrapf(ErrAntiSniperLimit, "amount %v, limit %v", amount, limit)
	}
	return nil
}

// Transfer moves amount of mint from one token account to another
func (l *Ledger) Transfer(mint, from, to, authority types.PublicKey, amount uint64, decimals uint8) error {
	m, err := l.getMint(mint)
	if err != nil {
		return err
	}
	if m.Decimals != decimals {
		return errors.Wrapf(ErrDecimalsMismatch, "mint has %v decimals, got %v", m.Decimals, decimals)
	}
	src, err := l.getMintAccount(mint, from)
	if err != nil {
		return err
	}
	if src.Owner != authority {
		return errors.Wrapf(ErrOwnerMismatch, "account %v", from)
	}
	dst, err := l.getMintAccount(mint, to)
	if err != nil {
		return err
	}
	if src.Amount < amount {
		return errors.Wrapf(ErrInsufficientFunds, "account %v holds %v, need %v", from, src.Amount, amount)
	}
	if err := l.checkTransferHook(m, amount); err != nil {
		return err
	}

	fee := uint64(0)
	if m.TransferFeeBps > 0 && !l.feeExempt(mint, src.Owner, dst.Owner) {
		fee = types.TransferFee(amount, m.TransferFeeBps, m.MaximumFee)
	}

	if from == to {
		// Self transfers only withhold the fee.
		src.Amount -= fee
		src.Withheld += fee
		l.view.SetTokenAccount(src)
		return nil
	}

	received, ok := types.CheckedAdd(dst.Amount, amount-fee)
	if !ok {
		return ErrArithmeticOverflow
	}
	withheld, ok := types.CheckedAdd(dst.Withheld, fee)
	if !ok {
		return ErrArithmeticOverflow
	}
	src.Amount -= amount
	dst.Amount = received
	dst.Withheld = withheld
	l.view.SetTokenAccount(src)
	l.view.SetTokenAccount(dst)

	logger.Debugf("Transferred %v of %v from %v to %v, withheld %v", amount, mint, from, to, fee)
	return nil
}

// HarvestWithheld moves the withheld fees of accounts into the mint
func (l *Ledger) HarvestWithheld(mint types.PublicKey, accounts []types.PublicKey) (uint64, error) {
	m, err := l.getMint(mint)
	if err != nil {
		return 0, err
	}
	moved := uint64(0)
	for _, account := range accounts {
		acc, err := l.getMintAccount(mint, account)
		if err != nil {
			return 0, err
		}
		if acc.Withheld == 0 {
			continue
		}
		total, ok := types.CheckedAdd(m.WithheldAmount, acc.Withheld)
		if !ok {
			return 0, ErrArithmeticOverflow
		}
		m.WithheldAmount = total
		moved += acc.Withheld
		acc.Withheld = 0
		l.view.SetTokenAccount(acc)
	}
	l.view.SetTokenMint(m)
	return moved, nil
}

// WithdrawWithheldFromMint moves the mint level withheld pool to destination
func (l *Ledger) WithdrawWithheldFromMint(mint, destination, authority types.PublicKey) (uint64, error) {
	m, err := l.getMint(mint)
	if err != nil {
		return 0, err
	}
	if m.WithdrawAuthority != authority {
		return 0, errors.Wrapf(ErrAuthorityMismatch, "withdraw authority of %v", mint)
	}
	dst, err := l.getMintAccount(mint, destination)
	if err != nil {
		return 0, err
	}
	amount := m.WithheldAmount
	if amount == 0 {
		return 0, nil
	}
	balance, ok := types.CheckedAdd(dst.Amount, amount)
	if !ok {
		return 0, ErrArithmeticOverflow
	}
	dst.Amount = balance
	m.WithheldAmount = 0
	l.view.SetTokenAccount(dst)
	l.view.SetTokenMint(m)
	return amount, nil
}

// WithdrawWithheldFromAccounts moves the withheld fees of accounts to destination
func (l *Ledger) WithdrawWithheldFromAccounts(mint, destination, authority types.PublicKey, accounts []types.PublicKey) (uint64, error) {
	m, err := l.getMint(mint)
	if err != nil {
		return 0, err
	}
	if m.WithdrawAuthority != authority {
		return 0, errors.Wrapf(ErrAuthorityMismatch, "withdraw authority of %v", mint)
	}
	if _, err := l.getMintAccount(mint, destination); err != nil {
		return 0, err
	}
	moved := uint64(0)
	for _, account := range accounts {
		acc, err := l.getMintAccount(mint, account)
		if err != nil {
			return 0, err
		}
		if acc.Withheld == 0 {
			continue
		}
		total, ok := types.CheckedAdd(moved, acc.Withheld)
		if !ok {
			return 0, ErrArithmeticOverflow
		}
		moved = total
		acc.Withheld = 0
		l.view.SetTokenAccount(acc)
	}

	// Reload, the destination may be one of the drained accounts.
	dst, _ := l.getMintAccount(mint, destination)
	balance, ok := types.CheckedAdd(dst.Amount, moved)
	if !ok {
		return 0, ErrArithmeticOverflow
	}
	dst.Amount = balance
	l.view.SetTokenAccount(dst)
	return moved, nil
}

// WithheldAmount returns the mint level withheld pool
func (l *Ledger) WithheldAmount(mint types.PublicKey) (uint64, error) {
	m, err := l.getMint(mint)
	if err != nil {
		return 0, err
	}
	return m.WithheldAmount, nil
}

// AccountWithheld returns the fees withheld in account
func (l *Ledger) AccountWithheld(account types.PublicKey) (uint64, error) {
	acc, err := l.getAccount(account)
	if err != nil {
		return 0, err
	}
	return acc.Withheld, nil
}

// Balance returns the amount held by account
func (l *Ledger) Balance(account types.PublicKey) (uint64, error) {
	acc, err := l.getAccount(account)
	if err != nil {
		return 0, err
	}
	return acc.Amount, nil
}

// Decimals returns the decimals of mint
func (l *Ledger) Decimals(mint types.PublicKey) (uint8, error) {
	m, err := l.getMint(mint)
	if err != nil {
		return 0, err
	}
	return m.Decimals, nil
}

// SetTransferFee changes the transfer fee of mint
func (l *Ledger) SetTransferFee(mint, authority types.PublicKey, feeBps uint16, maxFee uint64) error {
	m, err := l.getMint(mint)
	if err != nil {
		return err
	}
	if m.FeeAuthority != authority {
		return errors.Wrapf(ErrAuthorityMismatch, "fee authority of %v", mint)
	}
	m.TransferFeeBps = feeBps
	m.MaximumFee = maxFee
	l.view.SetTokenMint(m)
	logger.Infof("Transfer fee of %v set to %v bps", mint, feeBps)
	return nil
}

// NativeBalance returns the native balance of addr
func (l *Ledger) NativeBalance(addr types.PublicKey) (uint64, error) {
	return l.view.GetNativeAccount(addr).Lamports, nil
}

// TransferNative moves native value between addresses
func (l *Ledger) TransferNative(from, to types.PublicKey, amount uint64) error {
	src := l.view.GetNativeAccount(from)
	if src.Lamports < amount {
		return errors.Wrapf(ErrInsufficientFunds, "address %v holds %v lamports, need %v", from, src.Lamports, amount)
	}
	if from == to {
		return nil
	}
	dst := l.view.GetNativeAccount(to)
	balance, ok := types.CheckedAdd(dst.Lamports, amount)
	if !ok {
		return ErrArithmeticOverflow
	}
	src.Lamports -= amount
	dst.Lamports = balance
	l.view.SetNativeAccount(src)
	l.view.SetNativeAccount(dst)
	return nil
}
