package repository

import (
	"io"
	"strings"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
)

type ipfsNodeApiReaderRepo struct {
	shell      *ipfsapi.Shell
	ctxTimeout time.Duration
}

// NewIpfsNodeApiReaderRepo reads content through a kubo node's /api/v0/cat.
func NewIpfsNodeApiReaderRepo(s *ipfsapi.Shell, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsNodeApiReaderRepo{shell: s, ctxTimeout: timeout}
}

// Get accepts a bare cid path, an /ipfs/ path or an ipfs:// uri.
func (r *ipfsNodeApiReaderRepo) Get(c ctx.Ctx, path string) ([]byte, error) {
	cid := cidPath(path)
	if cid == "" {
		return nil, xerrors.Errorf("empty ipfs path %q: %w", path, domain.ErrBadParamInput)
	}

	tctx, cancel := ctx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	resp, err := r.shell.Request("cat", cid).Send(tctx)
	if err != nil {
		c.WithFields(log.Fields{"cid": cid, "err": err}).Warn("ipfs cat request failed")
		return nil, err
	}
	defer resp.Close()
	if resp.Error != nil {
		c.WithFields(log.Fields{"cid": cid, "err": resp.Error}).Warn("ipfs cat returned an error")
		return nil, resp.Error
	}

	body, err := io.ReadAll(io.LimitReader(resp.Output, maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxBodySize {
		return nil, xerrors.Errorf("ipfs %s larger than %d bytes", cid, maxBodySize)
	}
	return body, nil
}

func cidPath(path string) string {
	path = strings.TrimPrefix(path, "ipfs://")
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimPrefix(path, "ipfs/")
	return path
}
