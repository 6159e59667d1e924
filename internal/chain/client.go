package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/sysprog"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
	"github.com/zeromicro/go-zero/core/logx"
)

// Client is the ledger network surface the wallet container depends on.
// Amounts are in base units (lamports). Airdrop and Transfer only return
// once the network has confirmed the transaction.
type Client interface {
	Balance(ctx context.Context, address string) (uint64, error)
	RequestAirdrop(ctx context.Context, address string, lamports uint64) (string, error)
	Transfer(ctx context.Context, secretKey []byte, toAddress string, lamports uint64) (string, error)
}

const (
	confirmTimeout  = 60 * time.Second
	confirmInterval = 2 * time.Second
)

// SolanaClient talks to a Solana RPC endpoint through the chain SDK.
type SolanaClient struct {
	rpc *client.Client
}

// NewSolanaClient connects to rpcURL, falling back to the public devnet
// endpoint when empty.
func NewSolanaClient(rpcURL string) *SolanaClient {
	if rpcURL == "" {
		rpcURL = rpc.DevnetRPCEndpoint
	}
	return &SolanaClient{rpc: client.NewClient(rpcURL)}
}

func (c *SolanaClient) Balance(ctx context.Context, address string) (uint64, error) {
	if err := validateAddress(address); err != nil {
		return 0, err
	}
	balance, err := c.rpc.GetBalance(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("get balance for %s: %w", address, err)
	}
	return balance, nil
}

func (c *SolanaClient) RequestAirdrop(ctx context.Context, address string, lamports uint64) (string, error) {
	if err := validateAddress(address); err != nil {
		return "", err
	}
	sig, err := c.rpc.RequestAirdrop(ctx, address, lamports)
	if err != nil {
		return "", fmt.Errorf("request airdrop: %w", err)
	}
	if err := c.awaitConfirmation(ctx, sig); err != nil {
		return "", err
	}
	return sig, nil
}

func (c *SolanaClient) Transfer(ctx context.Context, secretKey []byte, toAddress string, lamports uint64) (string, error) {
	if err := validateAddress(toAddress); err != nil {
		return "", err
	}
	from, err := types.AccountFromBytes(secretKey)
	if err != nil {
		return "", fmt.Errorf("restore keypair: %w", err)
	}

	blockhash, err := c.rpc.GetLatestBlockhash(ctx)
	if err != nil {
		return "", fmt.Errorf("get latest blockhash: %w", err)
	}

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        from.PublicKey,
			RecentBlockhash: blockhash.Blockhash,
			Instructions: []types.Instruction{
				sysprog.Transfer(sysprog.TransferParam{
					From:   from.PublicKey,
					To:     common.PublicKeyFromString(toAddress),
					Amount: lamports,
				}),
			},
		}),
		Signers: []types.Account{from},
	})
	if err != nil {
		return "", fmt.Errorf("build transfer: %w", err)
	}

	sig, err := c.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}
	if err := c.awaitConfirmation(ctx, sig); err != nil {
		return "", err
	}
	return sig, nil
}

// awaitConfirmation polls the signature status until the cluster reports the
// transaction confirmed or the timeout elapses.
func (c *SolanaClient) awaitConfirmation(ctx context.Context, sig string) error {
	ctx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(confirmInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("confirmation timed out for %s: %w", sig, ctx.Err())
		case <-ticker.C:
			status, err := c.rpc.GetSignatureStatus(ctx, sig)
			if err != nil {
				logx.WithContext(ctx).Errorf("signature status check failed for %s: %v", sig, err)
				continue
			}
			if status == nil {
				continue
			}
			if status.Err != nil {
				return fmt.Errorf("transaction %s failed on chain: %v", sig, status.Err)
			}
			if status.ConfirmationStatus == nil {
				continue
			}
			switch *status.ConfirmationStatus {
			case rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
				return nil
			}
		}
	}
}

func validateAddress(address string) error {
	if address == "" {
		return errors.New("empty address")
	}
	raw, err := base58.Decode(address)
	if err != nil || len(raw) != 32 {
		return fmt.Errorf("invalid address %q", address)
	}
	return nil
}
