package repository

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

const arUriSchema = "ar://"

type arReaderRepo struct {
	client     http.Client
	gateway    string
	ctxTimeout time.Duration
}

func NewArReaderRepo(client http.Client, gateway string, timeout time.Duration) domain.WebResourceReaderRepository {
	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}
	return &arReaderRepo{client: client, gateway: gateway, ctxTimeout: timeout}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	if !strings.HasPrefix(url, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri: %w", domain.ErrUnsupportedSchema)
	}
	return httpGet(c, r.client, r.ctxTimeout, r.gateway+strings.TrimPrefix(url, arUriSchema), nil)
}
