package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain"
)

// ThrottledClient caps the number of in-flight rpc calls. Callers block until
// a token is free or their context is done.
type ThrottledClient struct {
	client domain.EthClientRepo
	tokens chan int
	met    metrics.Service
}

func NewThrottledClient(client domain.EthClientRepo, n int, met metrics.Service) *ThrottledClient {
	if n <= 0 {
		n = 1
	}
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &ThrottledClient{
		client: client,
		tokens: tokens,
		met:    met,
	}
}

func (c *ThrottledClient) BlockNumber(ctx context.Context) (uint64, error) {
	token, err := c.before(ctx, "BlockNumber")
	if err != nil {
		return 0, err
	}
	defer c.after(token)
	return c.client.BlockNumber(ctx)
}

func (c *ThrottledClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	token, err := c.before(ctx, "HeaderByNumber")
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.client.HeaderByNumber(ctx, number)
}

func (c *ThrottledClient) FilterLogs(ctx context.Context, filter ethereum.FilterQuery) ([]types.Log, error) {
	token, err := c.before(ctx, "FilterLogs")
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.client.FilterLogs(ctx, filter)
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	token, err := c.before(ctx, "CallContract")
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.client.CallContract(ctx, msg, number)
}

func (c *ThrottledClient) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	token, err := c.before(ctx, "TransactionByHash")
	if err != nil {
		return nil, false, err
	}
	defer c.after(token)
	return c.client.TransactionByHash(ctx, hash)
}

func (c *ThrottledClient) before(ctx context.Context, method string) (int, error) {
	now := time.Now()
	select {
	case <-ctx.Done():
		log.Log().WithFields(log.Fields{"method": method, "wait": time.Since(now)}).Debug("throttle ctx done")
		return 0, ctx.Err()
	case token := <-c.tokens:
		c.met.BumpHistogram("throttle.wait", float64(time.Since(now))/float64(time.Millisecond), "method", method)
		return token, nil
	}
}

func (c *ThrottledClient) after(token int) {
	if token != 0 {
		c.tokens <- token
	}
}

// InFlight is the number of calls currently holding a token.
func (c *ThrottledClient) InFlight() int {
	return cap(c.tokens) - len(c.tokens)
}
