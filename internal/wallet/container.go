package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"ecowise/internal/chain"
	"ecowise/internal/record"
	"ecowise/internal/session"
	"ecowise/internal/store"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	// ErrNoWallet marks an operation that needs a keypair before one exists.
	ErrNoWallet = errors.New("no wallet available")
	// ErrAirdrop marks a faucet rejection or confirmation timeout.
	ErrAirdrop = errors.New("airdrop failed")
	// ErrTransfer marks a signing, submission or confirmation failure.
	ErrTransfer = errors.New("transfer failed")
)

// LamportsPerSol converts between base units and display units.
const LamportsPerSol = 1_000_000_000

const (
	walletKey    = "wallet"
	ecoTokensKey = "eco_tokens"
)

// Keypair is the locally generated wallet key. The secret key never leaves
// local storage; only the public key is pushed upstream.
type Keypair struct {
	PublicKey string `json:"public_key"`
	SecretKey []byte `json:"secret_key"`
}

// Container owns one local keypair, its cached on-chain balance, and the
// client-local reward-token counter. It depends on the session container only
// to learn which user to push a freshly generated address for.
type Container struct {
	chain   chain.Client
	store   *store.Store
	session *session.Container
	records *record.Client

	mu        sync.Mutex
	keypair   *Keypair
	balance   float64
	ecoTokens int64
	busy      bool
}

func NewContainer(chainClient chain.Client, st *store.Store, sess *session.Container, records *record.Client) *Container {
	return &Container{chain: chainClient, store: st, session: sess, records: records}
}

// Init moves the container from uninitialized to idle: it loads whatever
// keypair and token counter survived the last process, without touching the
// network.
func (c *Container) Init(ctx context.Context) {
	if _, err := c.LoadWallet(); err != nil {
		logx.WithContext(ctx).Errorf("wallet load failed: %v", err)
	}
	c.LoadEcoTokenBalance(ctx)
}

// GenerateWallet creates a fresh keypair and persists it, overwriting any
// previous one. Regenerating destroys access to funds held by the old
// address; that is the accepted contract. If a session identity exists the
// new public address is pushed upstream best-effort.
func (c *Container) GenerateWallet(ctx context.Context) (*Keypair, error) {
	acct := types.NewAccount()
	kp := &Keypair{
		PublicKey: acct.PublicKey.ToBase58(),
		SecretKey: []byte(acct.PrivateKey),
	}

	if err := c.store.Write(walletKey, kp); err != nil {
		return nil, fmt.Errorf("persist wallet: %w", err)
	}

	c.mu.Lock()
	c.keypair = kp
	c.balance = 0
	c.mu.Unlock()

	if snap := c.session.Current(); snap.Identity != nil {
		go c.pushAddress(snap.Identity.ID, kp.PublicKey)
	}
	return kp, nil
}

// pushAddress is fire-and-forget bookkeeping: a failure is logged and the
// generate call that spawned it is still considered successful.
func (c *Container) pushAddress(userID, address string) {
	ctx := context.Background()
	if err := c.records.UpdateWallet(ctx, userID, address); err != nil {
		logx.WithContext(ctx).Errorf("wallet address push failed for %s: %v", userID, err)
	}
}

// LoadWallet reads the persisted keypair without network access. Returns nil
// when none has ever been generated.
func (c *Container) LoadWallet() (*Keypair, error) {
	var kp Keypair
	found, err := c.store.Read(walletKey, &kp)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	c.mu.Lock()
	c.keypair = &kp
	c.mu.Unlock()
	return &kp, nil
}

// GetBalance queries the ledger for address and caches the result in display
// units. It never fails the caller: any network error resolves to 0.
func (c *Container) GetBalance(ctx context.Context, address string) float64 {
	if address == "" {
		return 0
	}
	lamports, err := c.chain.Balance(ctx, address)
	if err != nil {
		logx.WithContext(ctx).Errorf("balance query failed for %s: %v", address, err)
		return 0
	}

	sol := float64(lamports) / LamportsPerSol
	c.mu.Lock()
	c.balance = sol
	c.mu.Unlock()
	return sol
}

// RequestAirdrop asks the network faucet for amount display units and blocks
// until the transaction confirms, then refreshes the cached balance.
func (c *Container) RequestAirdrop(ctx context.Context, amount float64) (string, error) {
	c.mu.Lock()
	kp := c.keypair
	c.mu.Unlock()
	if kp == nil {
		return "", ErrNoWallet
	}
	if amount <= 0 {
		amount = 1
	}

	c.setBusy(true)
	defer c.setBusy(false)

	sig, err := c.chain.RequestAirdrop(ctx, kp.PublicKey, uint64(amount*LamportsPerSol))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAirdrop, err)
	}

	c.GetBalance(ctx, kp.PublicKey)
	return sig, nil
}

// SendTransaction signs and submits one native transfer from the loaded
// keypair and awaits confirmation, refreshing the balance on success.
func (c *Container) SendTransaction(ctx context.Context, toAddress string, amount float64) (string, error) {
	c.mu.Lock()
	kp := c.keypair
	c.mu.Unlock()
	if kp == nil {
		return "", ErrNoWallet
	}

	c.setBusy(true)
	defer c.setBusy(false)

	sig, err := c.chain.Transfer(ctx, kp.SecretKey, toAddress, uint64(amount*LamportsPerSol))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransfer, err)
	}

	c.GetBalance(ctx, kp.PublicKey)
	return sig, nil
}

// UpdateEcoTokenBalance adds delta (positive for earn, negative for spend) to
// the reward-token counter and persists the new total. Overdraft is the
// caller's responsibility to check beforehand; the counter itself is a plain
// accumulator.
func (c *Container) UpdateEcoTokenBalance(ctx context.Context, delta int64) error {
	c.mu.Lock()
	c.ecoTokens += delta
	total := c.ecoTokens
	c.mu.Unlock()

	if err := c.store.Write(ecoTokensKey, total); err != nil {
		return fmt.Errorf("persist token counter: %w", err)
	}
	return nil
}

// LoadEcoTokenBalance reads the persisted counter, leaving the in-memory
// default of 0 when nothing was ever written.
func (c *Container) LoadEcoTokenBalance(ctx context.Context) {
	var total int64
	found, err := c.store.Read(ecoTokensKey, &total)
	if err != nil {
		logx.WithContext(ctx).Errorf("token counter load failed: %v", err)
		return
	}
	if !found {
		return
	}
	c.mu.Lock()
	c.ecoTokens = total
	c.mu.Unlock()
}

// EcoTokens returns the current reward-token counter.
func (c *Container) EcoTokens() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ecoTokens
}

// CachedBalance returns the last balance observed on chain, in display units.
func (c *Container) CachedBalance() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance
}

// Keypair returns the loaded keypair, or nil before GenerateWallet/LoadWallet.
func (c *Container) Keypair() *Keypair {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.keypair
}

// Busy reports whether a wallet mutation is in flight; the UI layer uses it
// to gate concurrent airdrop/send actions.
func (c *Container) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

func (c *Container) setBusy(b bool) {
	c.mu.Lock()
	c.busy = b
	c.mu.Unlock()
}
