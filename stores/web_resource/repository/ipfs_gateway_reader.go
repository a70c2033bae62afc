package repository

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

type ipfsGatewayReaderRepo struct {
	client     http.Client
	gateway    string
	ctxTimeout time.Duration
}

// NewIpfsGatewayReaderRepo reads cid paths, e.g. Qm.../1.json, through an http
// gateway such as https://ipfs.io/ipfs/. ipfs:// and /ipfs/ forms are accepted too.
func NewIpfsGatewayReaderRepo(c http.Client, gateway string, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsGatewayReaderRepo{client: c, gateway: strings.TrimSuffix(gateway, "/"), ctxTimeout: timeout}
}

func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	return httpGet(c, r.client, r.ctxTimeout, r.gateway+"/"+cidPath(cid), nil)
}
