package market

import (
	"path/filepath"
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bountyflow/libbounty-go/bounty"
	"github.com/bountyflow/libbounty-go/config"
	"github.com/bountyflow/libbounty-go/escrow"
	"github.com/bountyflow/libbounty-go/identity"
	"github.com/bountyflow/libbounty-go/treasury"
)

// testEnv is a market over a throwaway database with an initialized
// treasury at the default 250 bps fee.
type testEnv struct {
	m         *Market
	authPriv  *ec.PrivateKey
	authority string
}

func newTestMarket(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	m, err := Open(filepath.Join(cfg.DataDir, "market.db"), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	auth := identity.WalletFor(priv)
	require.NoError(t, m.InitTreasury(auth, 250))

	return &testEnv{m: m, authPriv: priv, authority: auth}
}

// credit seeds an external wallet balance through the authority-gated
// deposit path.
func (e *testEnv) credit(t *testing.T, wallet, denom string, amount uint64) {
	t.Helper()
	require.NoError(t, e.m.CreditWallet(e.authority, wallet, denom, amount))
}

// newWallet generates a keypair and returns it with its wallet identity.
func newWallet(t *testing.T) (*ec.PrivateKey, string) {
	t.Helper()
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	return priv, identity.WalletFor(priv)
}

// bind binds handle to the key's wallet with a fresh ownership proof.
func (e *testEnv) bind(t *testing.T, priv *ec.PrivateKey, handle string) string {
	t.Helper()
	wallet := identity.WalletFor(priv)
	proof, err := identity.SignProof(priv, handle)
	require.NoError(t, err)
	require.NoError(t, e.m.BindIdentity(handle, wallet, proof))
	return wallet
}

func TestOpen_RejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FeeBps = 10001
	_, err := Open(filepath.Join(t.TempDir(), "market.db"), cfg)
	assert.ErrorIs(t, err, config.ErrFeeTooHigh)
}

func TestInitTreasury(t *testing.T) {
	env := newTestMarket(t)

	tr, err := env.m.Treasury()
	require.NoError(t, err)
	assert.Equal(t, env.authority, tr.Authority)
	assert.Equal(t, uint64(250), tr.FeeBps)

	// The singleton only initializes once.
	err = env.m.InitTreasury("someone-else", 100)
	assert.ErrorIs(t, err, treasury.ErrAlreadyInitialized)

	tr, err = env.m.Treasury()
	require.NoError(t, err)
	assert.Equal(t, env.authority, tr.Authority)
}

func TestInitTreasury_FeeTooHigh(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	m, err := Open(filepath.Join(cfg.DataDir, "market.db"), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	assert.ErrorIs(t, m.InitTreasury("auth", 10001), treasury.ErrFeeTooHigh)
}

func TestSetFeeRate(t *testing.T) {
	env := newTestMarket(t)
	_, stranger := newWallet(t)

	assert.ErrorIs(t, env.m.SetFeeRate(stranger, 100), treasury.ErrNotAuthorized)
	assert.ErrorIs(t, env.m.SetFeeRate(env.authority, 10001), treasury.ErrFeeTooHigh)

	require.NoError(t, env.m.SetFeeRate(env.authority, 100))
	tr, err := env.m.Treasury()
	require.NoError(t, err)
	assert.Equal(t, uint64(100), tr.FeeBps)
}

func TestCreditWallet(t *testing.T) {
	env := newTestMarket(t)
	_, alice := newWallet(t)

	env.credit(t, alice, "USDC", 1000)
	env.credit(t, alice, "USDC", 500)

	bal, err := env.m.WalletBalance(alice, "USDC")
	require.NoError(t, err)
	assert.Equal(t, uint64(1500), bal)

	// Balances are per denomination.
	bal, err = env.m.WalletBalance(alice, "BSV")
	require.NoError(t, err)
	assert.Zero(t, bal)

	assert.ErrorIs(t, env.m.CreditWallet(alice, alice, "USDC", 1), treasury.ErrNotAuthorized)
	assert.ErrorIs(t, env.m.CreditWallet(env.authority, alice, "DOGE", 1), config.ErrUnknownDenomination)
}

func TestBindIdentity(t *testing.T) {
	env := newTestMarket(t)
	priv, wallet := newWallet(t)

	env.bind(t, priv, "octocat")

	got, err := env.m.LookupIdentity("octocat")
	require.NoError(t, err)
	assert.Equal(t, wallet, got)

	_, err = env.m.LookupIdentity("monalisa")
	assert.ErrorIs(t, err, identity.ErrNotFound)
}

func TestBindIdentity_RejectsBadProof(t *testing.T) {
	env := newTestMarket(t)
	_, wallet := newWallet(t)
	other, _ := newWallet(t)

	// Proof signed by a different key than the claimed wallet.
	proof, err := identity.SignProof(other, "octocat")
	require.NoError(t, err)
	assert.ErrorIs(t, env.m.BindIdentity("octocat", wallet, proof), identity.ErrInvalidProof)

	// Nothing committed.
	_, err = env.m.LookupIdentity("octocat")
	assert.ErrorIs(t, err, identity.ErrNotFound)
}

func TestBindIdentity_OncePerHandle(t *testing.T) {
	env := newTestMarket(t)
	priv, wallet := newWallet(t)
	other, _ := newWallet(t)

	env.bind(t, priv, "octocat")

	// Even a valid proof from another key cannot rebind the handle.
	proof, err := identity.SignProof(other, "octocat")
	require.NoError(t, err)
	err = env.m.BindIdentity("octocat", identity.WalletFor(other), proof)
	assert.ErrorIs(t, err, identity.ErrDuplicateBinding)

	got, err := env.m.LookupIdentity("octocat")
	require.NoError(t, err)
	assert.Equal(t, wallet, got)
}

func TestCreateBounty(t *testing.T) {
	env := newTestMarket(t)
	_, alice := newWallet(t)

	require.NoError(t, env.m.CreateBounty(alice, 7, 42, 1000, "USDC"))

	b, err := env.m.GetBounty(7, 42)
	require.NoError(t, err)
	assert.Equal(t, alice, b.Creator)
	assert.Equal(t, uint64(7), b.RepoID)
	assert.Equal(t, uint64(42), b.IssueNumber)
	assert.Equal(t, "USDC", b.Denomination)
	assert.Equal(t, bounty.StatusOpen, b.Status)
	// No funds move at creation.
	assert.Zero(t, b.Amount)

	vault, err := env.m.EscrowBalance(7, 42)
	require.NoError(t, err)
	assert.Zero(t, vault)
}

func TestCreateBounty_Rejections(t *testing.T) {
	env := newTestMarket(t)
	_, alice := newWallet(t)
	_, bob := newWallet(t)

	assert.ErrorIs(t, env.m.CreateBounty(alice, 7, 42, 0, "USDC"), bounty.ErrInvalidAmount)
	assert.ErrorIs(t, env.m.CreateBounty(alice, 7, 42, 1000, "DOGE"), config.ErrUnknownDenomination)

	require.NoError(t, env.m.CreateBounty(alice, 7, 42, 1000, "USDC"))
	// Same (repo, issue) pair, even from another caller, is a duplicate.
	assert.ErrorIs(t, env.m.CreateBounty(bob, 7, 42, 500, "USDC"), bounty.ErrDuplicateBounty)

	b, err := env.m.GetBounty(7, 42)
	require.NoError(t, err)
	assert.Equal(t, alice, b.Creator)
}

func TestFundBounty(t *testing.T) {
	env := newTestMarket(t)
	_, alice := newWallet(t)
	env.credit(t, alice, "USDC", 2000)

	require.NoError(t, env.m.CreateBounty(alice, 7, 42, 1000, "USDC"))
	require.NoError(t, env.m.FundBounty(alice, 7, 42, 600))

	b, err := env.m.GetBounty(7, 42)
	require.NoError(t, err)
	assert.Equal(t, bounty.StatusFunded, b.Status)
	assert.Equal(t, uint64(600), b.Amount)

	// Deposits accumulate on an already Funded bounty.
	require.NoError(t, env.m.FundBounty(alice, 7, 42, 400))
	b, err = env.m.GetBounty(7, 42)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), b.Amount)

	vault, err := env.m.EscrowBalance(7, 42)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), vault)

	bal, err := env.m.WalletBalance(alice, "USDC")
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), bal)
}

func TestFundBounty_Rejections(t *testing.T) {
	env := newTestMarket(t)
	_, alice := newWallet(t)
	_, bob := newWallet(t)
	env.credit(t, alice, "USDC", 100)
	env.credit(t, bob, "USDC", 1000)

	require.NoError(t, env.m.CreateBounty(alice, 7, 42, 1000, "USDC"))

	assert.ErrorIs(t, env.m.FundBounty(alice, 7, 42, 0), bounty.ErrInvalidAmount)
	assert.ErrorIs(t, env.m.FundBounty(bob, 7, 42, 100), bounty.ErrNotCreator)
	assert.ErrorIs(t, env.m.FundBounty(alice, 9, 9, 100), bounty.ErrNotFound)

	// Underfunded deposit fails atomically: no record change, no movement.
	assert.ErrorIs(t, env.m.FundBounty(alice, 7, 42, 101), escrow.ErrInsufficientFunds)
	b, err := env.m.GetBounty(7, 42)
	require.NoError(t, err)
	assert.Equal(t, bounty.StatusOpen, b.Status)
	assert.Zero(t, b.Amount)
	bal, err := env.m.WalletBalance(alice, "USDC")
	require.NoError(t, err)
	assert.Equal(t, uint64(100), bal)
}
