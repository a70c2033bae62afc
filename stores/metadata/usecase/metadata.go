package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/base/ptr"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/cache"
)

type MetadataUseCaseCfg struct {
	CtxTimeout    time.Duration
	NftContract   domain.NftContractRepo
	WebResourceUC domain.WebResourceUseCase
	Cache         cache.Service
	Metrics       metrics.Service
}

type metadataUseCase struct {
	ctxTimeout    time.Duration
	nft           domain.NftContractRepo
	webResourceUC domain.WebResourceUseCase
	cache         cache.Service
	met           metrics.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	met := cfg.Metrics
	if met == nil {
		met = metrics.New("metadata")
	}
	return &metadataUseCase{
		ctxTimeout:    cfg.CtxTimeout,
		nft:           cfg.NftContract,
		webResourceUC: cfg.WebResourceUC,
		cache:         cfg.Cache,
		met:           met,
	}
}

// GetTokenMetadata never fails, fields that can not be resolved are nil.
// Resolved metadata is cached without expiry. A failed resolve caches the empty
// result for the cache's fallback ttl, unless it failed because c ended.
func (u *metadataUseCase) GetTokenMetadata(c bCtx.Ctx, collection domain.Address, tokenId domain.TokenId) *domain.TokenMetadata {
	if collection.IsEmpty() || tokenId == "" {
		return &domain.TokenMetadata{}
	}

	key := fmt.Sprintf("%s-%s", collection.ToLowerStr(), tokenId)
	var res domain.TokenMetadata
	err := u.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		meta, err := u.resolve(c, collection, tokenId)
		if err != nil && c.Err() != nil {
			return nil, xerrors.Errorf("metadata of %s/%s: %w", collection, tokenId, c.Err())
		} else if err != nil {
			c.WithFields(log.Fields{
				"err":        err,
				"collection": collection,
				"tokenId":    tokenId,
			}).Warn("metadata.resolve failed")
			u.met.BumpSum("failed", 1)
			return cache.Fallback(&domain.TokenMetadata{}), nil
		}
		return meta, nil
	})
	if err != nil {
		c.WithField("err", err).Warn("cache.GetByFunc failed")
		return &domain.TokenMetadata{}
	}
	return &res
}

type rawMetadata struct {
	Image       interface{} `json:"image"`
	Name        interface{} `json:"name"`
	Description interface{} `json:"description"`
}

func (u *metadataUseCase) resolve(c bCtx.Ctx, collection domain.Address, tokenId domain.TokenId) (*domain.TokenMetadata, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, err
	}

	tokenUri, err := u.nft.TokenURI(c, collection, id)
	if err != nil {
		c.WithField("err", err).Debug("nft.TokenURI failed, trying uri")
		tokenUri, err = u.nft.Uri(c, collection, id)
		if err != nil {
			return nil, xerrors.Errorf("%w: %v", domain.ErrMetadataResolutionFailed, err)
		}
	}
	if tokenUri == "" {
		return nil, domain.ErrEmptyTokenUri
	}

	if strings.Contains(tokenUri, "{id}") {
		hexId, err := tokenId.ToHexString()
		if err != nil {
			return nil, err
		}
		tokenUri = strings.Replace(tokenUri, "{id}", hexId, 1)
	}

	resolved := u.webResourceUC.ResolveUri(tokenUri)
	tctx, cancel := bCtx.WithTimeout(c, u.ctxTimeout)
	defer cancel()
	data, err := u.webResourceUC.Get(tctx, tokenUri)
	if err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrMetadataResolutionFailed, err)
	}

	// some collections point tokenURI straight at the artwork
	if strings.HasPrefix(mimetype.Detect(data).String(), "image/") {
		return &domain.TokenMetadata{Image: ptr.String(resolved)}, nil
	}

	var raw rawMetadata
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrInvalidJsonFormat, err)
	}
	meta := &domain.TokenMetadata{
		Name:        ptr.NonEmptyString(stringOf(raw.Name)),
		Description: ptr.NonEmptyString(stringOf(raw.Description)),
	}
	if image := stringOf(raw.Image); image != "" {
		meta.Image = ptr.String(u.webResourceUC.ResolveUri(image))
	}
	return meta, nil
}

func stringOf(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprint(t)
	default:
		return ""
	}
}
