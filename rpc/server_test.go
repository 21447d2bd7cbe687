package rpc

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikotoken/vault/common/result"
	"github.com/mikotoken/vault/keeper"
	"github.com/mikotoken/vault/ledger"
	st "github.com/mikotoken/vault/ledger/state"
	"github.com/mikotoken/vault/ledger/token"
	"github.com/mikotoken/vault/ledger/types"
	"github.com/mikotoken/vault/store/database/backend"
	"github.com/mikotoken/vault/store/kvstore"
)

var (
	authority = types.MakeAddress("authority")
	keeperKey = types.MakeAddress("keeper")
	owner     = types.MakeAddress("owner")
	mint      = types.MakeAddress("mint")
	stranger  = types.MakeAddress("stranger")
)

func newTestServer(t *testing.T, enableTx bool) (*httptest.Server, *ledger.Ledger, *keeper.ReportStore) {
	require := require.New(t)

	clock := clockwork.NewFakeClockAt(time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC))
	db := backend.NewMemDatabase()
	l := ledger.NewLedger(db, clock, types.DefaultProgramID, math.MaxUint64)

	vaultAddr, _, err := types.FindVaultAddress(types.DefaultProgramID, mint)
	require.Nil(err)
	require.Nil(l.Update(func(view *st.StoreView, tokens *token.Ledger) error {
		return tokens.CreateMint(&types.TokenMint{
			Address:           mint,
			Decimals:          types.DefaultTokenDecimals,
			MaximumFee:        math.MaxUint64,
			FeeAuthority:      vaultAddr,
			WithdrawAuthority: vaultAddr,
		})
	}))
	res := l.Execute(&types.InitializeTx{
		Signer:          authority,
		Mint:            mint,
		Authority:       authority,
		KeeperAuthority: keeperKey,
		OwnerWallet:     owner,
	})
	require.True(res.IsOK(), res.String())
	require.Nil(l.OpenVaultAccounts(mint))

	reports := keeper.NewReportStore(kvstore.NewKVStore(db))
	server := NewVaultRPCServer(l, reports, Config{Timeout: 5 * time.Second, EnableTx: enableTx})
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts, l, reports
}

func httpClient(t *testing.T, ts *httptest.Server) Client {
	c, err := NewClient(ts.URL + "/rpc")
	require.Nil(t, err)
	return c
}

func wsClient(t *testing.T, ts *httptest.Server) Client {
	c, err := NewClient("ws" + strings.TrimPrefix(ts.URL, "http") + "/ws")
	require.Nil(t, err)
	t.Cleanup(func() { c.(*WSClient).Close() })
	return c
}

func TestGetVault(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ts, _, _ := newTestServer(t, false)
	for _, c := range []Client{httpClient(t, ts), wsClient(t, ts)} {
		var status GetStatusResult
		require.Nil(c.Call("vault.GetStatus", []interface{}{GetStatusArgs{}}, &status))
		assert.Equal(types.DefaultProgramID, status.ProgramID)
		assert.False(status.TxEnabled)

		var res GetVaultResult
		require.Nil(c.Call("vault.GetVault", []interface{}{GetVaultArgs{Mint: mint}}, &res))
		require.NotNil(res.Vault)
		assert.Equal(authority, res.Vault.Authority)
		assert.Equal(types.FeeStageNotLaunched.String(), res.FeeStage)
		assert.Equal(uint16(0), res.ScheduledFeeBps)
		assert.Equal(uint64(0), uint64(res.CustodyBalance))

		var registry GetPoolRegistryResult
		require.Nil(c.Call("vault.GetPoolRegistry", []interface{}{GetPoolRegistryArgs{Mint: mint}}, &registry))
		require.NotNil(registry.Registry)
		assert.Empty(registry.Registry.Pools)

		var m GetTokenMintResult
		require.Nil(c.Call("vault.GetTokenMint", []interface{}{GetTokenMintArgs{Mint: mint}}, &m))
		require.NotNil(m.Mint)
		assert.Equal(uint8(types.DefaultTokenDecimals), m.Mint.Decimals)
	}
}

func TestGetVaultUnknownMint(t *testing.T) {
	ts, _, _ := newTestServer(t, false)
	c := httpClient(t, ts)

	var res GetVaultResult
	err := c.Call("vault.GetVault", []interface{}{GetVaultArgs{Mint: stranger}}, &res)
	assert.NotNil(t, err)

	var d GetDialStateResult
	err = c.Call("vault.GetDialState", []interface{}{GetDialStateArgs{Mint: mint}}, &d)
	assert.NotNil(t, err)
}

func TestGetKeeperReport(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ts, _, reports := newTestServer(t, false)
	c := httpClient(t, ts)

	var res GetKeeperReportResult
	assert.NotNil(c.Call("vault.GetKeeperReport", []interface{}{GetKeeperReportArgs{Task: keeper.TaskHarvest}}, &res))

	require.Nil(reports.Save(&keeper.RoundReport{
		Task:   keeper.TaskHarvest,
		Status: "ok",
		Calls:  2,
		Amount: 12500,
	}))
	require.Nil(c.Call("vault.GetKeeperReport", []interface{}{GetKeeperReportArgs{Task: keeper.TaskHarvest}}, &res))
	require.NotNil(res.Report)
	assert.Equal(uint64(2), res.Report.Calls)
	assert.Equal(uint64(12500), res.Report.Amount)
}

func executeArgs(t *testing.T, tx types.Tx) ExecuteTxArgs {
	raw, err := json.Marshal(tx)
	require.Nil(t, err)
	return ExecuteTxArgs{Type: types.TxName(tx), Tx: raw}
}

func TestExecuteTxDisabled(t *testing.T) {
	ts, l, _ := newTestServer(t, false)
	c := httpClient(t, ts)

	var res ExecuteTxResult
	err := c.Call("vault.ExecuteTx", []interface{}{executeArgs(t, &types.SetLaunchTimeTx{Signer: stranger, Mint: mint})}, &res)
	assert.NotNil(t, err)
	assert.False(t, l.GetVault(mint).IsLaunched())
}

func TestExecuteTx(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ts, l, _ := newTestServer(t, true)
	for i, c := range []Client{httpClient(t, ts), wsClient(t, ts)} {
		var res ExecuteTxResult
		require.Nil(c.Call("vault.ExecuteTx", []interface{}{executeArgs(t, &types.SetLaunchTimeTx{Signer: stranger, Mint: mint})}, &res))
		if i == 0 {
			assert.Equal(result.CodeOK, res.Code)
		} else {
			assert.Equal(result.CodeLaunchTimeAlreadySet, res.Code)
			assert.Equal(result.CodeLaunchTimeAlreadySet.String(), res.CodeName)
		}
	}
	assert.True(l.GetVault(mint).IsLaunched())

	var res ExecuteTxResult
	paused := true
	require.Nil(httpClient(t, ts).Call("vault.ExecuteTx", []interface{}{executeArgs(t, &types.UpdateConfigTx{
		Signer: stranger,
		Mint:   mint,
		Paused: &paused,
	})}, &res))
	assert.Equal(result.CodeUnauthorized, res.Code)
	assert.False(l.GetVault(mint).Paused)

	var vault GetVaultResult
	require.Nil(httpClient(t, ts).Call("vault.GetVault", []interface{}{GetVaultArgs{Mint: mint}}, &vault))
	assert.Equal(types.FeeStageLaunch.String(), vault.FeeStage)
	assert.Equal(types.LaunchFeeBps, vault.ScheduledFeeBps)
}

func TestExecuteTxMalformed(t *testing.T) {
	ts, _, _ := newTestServer(t, true)
	c := httpClient(t, ts)

	var res ExecuteTxResult
	err := c.Call("vault.ExecuteTx", []interface{}{ExecuteTxArgs{Type: "mint_everything", Tx: json.RawMessage(`{}`)}}, &res)
	assert.NotNil(t, err)

	_, err = DecodeTx("harvest_fees", json.RawMessage(`{"Accounts": 7}`))
	assert.NotNil(t, err)
}
