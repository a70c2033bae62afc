package chain

import (
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/x-xyz/storefront/base/backoff"
	bCtx "github.com/x-xyz/storefront/base/ctx"
	bEthereum "github.com/x-xyz/storefront/base/ethereum"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain"
)

var (
	ErrTxPending  = errors.New("transaction pending")
	ErrNoContract = errors.New("no contract code at address")
)

type ClientCfg struct {
	ChainId        domain.ChainId
	RpcUrl         string
	MaxConcurrency int
	DialRetries    int
}

// Client talks to a single chain.
type Client interface {
	ChainId() domain.ChainId
	Call(c bCtx.Ctx, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	BlockNumber(bCtx.Ctx) (uint64, error)
	HeaderByNumber(bCtx.Ctx, *big.Int) (*types.Header, error)
	FilterLogs(bCtx.Ctx, ethereum.FilterQuery) ([]types.Log, error)
	TransactionByHash(bCtx.Ctx, common.Hash) (*types.Transaction, error)
	TransactionSender(*types.Transaction) (common.Address, error)
}

type clientImpl struct {
	chainId domain.ChainId
	client  domain.EthClientRepo
	signer  types.Signer
}

// Dial connects to cfg.RpcUrl, retrying with exponential backoff, and wraps the
// connection in a throttled client.
func Dial(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var client *ethclient.Client
	err := backoff.Retry(ctx, backoff.NewExponential(500*time.Millisecond, 8*time.Second), cfg.DialRetries, func() error {
		var err error
		client, err = ethclient.DialContext(ctx, cfg.RpcUrl)
		return err
	}, func(attempt int, err error) {
		ctx.WithFields(log.Fields{
			"err":   err,
			"url":   cfg.RpcUrl,
			"retry": attempt,
		}).Warn("failed to dial rpc")
	})
	if err != nil {
		return nil, err
	}
	throttled := bEthereum.NewThrottledClient(client, cfg.MaxConcurrency, metrics.New("rpc"))
	return NewClient(cfg.ChainId, throttled), nil
}

func NewClient(chainId domain.ChainId, client domain.EthClientRepo) Client {
	return &clientImpl{
		chainId: chainId,
		client:  client,
		signer:  types.LatestSignerForChainID(big.NewInt(int64(chainId))),
	}
}

func (c *clientImpl) ChainId() domain.ChainId {
	return c.chainId
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
			"to":     addr.Hex(),
		}).Debug("client.CallContract failed")
		return nil, err
	}
	if len(res) == 0 {
		// calls to an eoa or a missing view succeed with empty output
		return nil, ErrNoContract
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Debug("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	return c.client.BlockNumber(ctx)
}

func (c *clientImpl) HeaderByNumber(ctx bCtx.Ctx, number *big.Int) (*types.Header, error) {
	return c.client.HeaderByNumber(ctx, number)
}

func (c *clientImpl) FilterLogs(ctx bCtx.Ctx, q ethereum.FilterQuery) ([]types.Log, error) {
	return c.client.FilterLogs(ctx, q)
}

func (c *clientImpl) TransactionByHash(ctx bCtx.Ctx, hash common.Hash) (*types.Transaction, error) {
	tx, pending, err := c.client.TransactionByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrTxPending
	}
	return tx, nil
}

// TransactionSender recovers the signer of tx locally.
func (c *clientImpl) TransactionSender(tx *types.Transaction) (common.Address, error) {
	return types.Sender(c.signer, tx)
}
