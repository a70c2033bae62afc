package usecase

import (
	"regexp"
	"strings"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
)

const (
	ipfsPrefix = "ipfs://"
	arPrefix   = "ar://"
)

type WebResourceUseCaseCfg struct {
	HttpReader        domain.WebResourceReaderRepository
	IpfsGatewayReader domain.WebResourceReaderRepository
	// IpfsNodeReader is optional, when set ipfs content is read from the node
	// first and the gateway is the fallback
	IpfsNodeReader domain.WebResourceReaderRepository
	DataUriReader  domain.WebResourceReaderRepository
	ArUriReader    domain.WebResourceReaderRepository
	IpfsGateway    string
	ArGateway      string
}

type webResourceUseCase struct {
	httpReader        domain.WebResourceReaderRepository
	ipfsGatewayReader domain.WebResourceReaderRepository
	ipfsNodeReader    domain.WebResourceReaderRepository
	dataUriReader     domain.WebResourceReaderRepository
	arUriReader       domain.WebResourceReaderRepository
	ipfsGateway       string
	arGateway         string
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		httpReader:        cfg.HttpReader,
		ipfsGatewayReader: cfg.IpfsGatewayReader,
		ipfsNodeReader:    cfg.IpfsNodeReader,
		dataUriReader:     cfg.DataUriReader,
		arUriReader:       cfg.ArUriReader,
		ipfsGateway:       withSlash(cfg.IpfsGateway),
		arGateway:         withSlash(cfg.ArGateway),
	}
}

// ResolveUri maps ipfs:// and ar:// uris to their gateways. Everything else,
// data: uris included, is returned unchanged.
func (u *webResourceUseCase) ResolveUri(uri string) string {
	switch {
	case strings.HasPrefix(uri, ipfsPrefix+"ipfs/"):
		return u.ipfsGateway + strings.TrimPrefix(uri, ipfsPrefix+"ipfs/")
	case strings.HasPrefix(uri, ipfsPrefix):
		return u.ipfsGateway + strings.TrimPrefix(uri, ipfsPrefix)
	case strings.HasPrefix(uri, arPrefix):
		return u.arGateway + strings.TrimPrefix(uri, arPrefix)
	default:
		return uri
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	scheme := schemeOf(rawUrl)

	var (
		data []byte
		err  error
	)
	switch scheme {
	case "http", "https":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		cid := strings.TrimPrefix(rawUrl, ipfsPrefix)
		cid = strings.TrimPrefix(cid, "ipfs/") // early foundation's metadata bug
		data, err = u.getIpfs(c, cid)
	case "data":
		data, err = u.dataUriReader.Get(c, rawUrl)
	case "ar":
		data, err = u.arUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}

	if err == nil {
		return data, nil
	}

	if scheme == "https" {
		if ipfsUrl := getIpfsUrl(rawUrl); len(ipfsUrl) > 0 {
			c.WithFields(log.Fields{
				"url":     rawUrl,
				"ipfsUrl": ipfsUrl,
			}).Info("falling back to ipfs")
			return u.getIpfs(c, strings.TrimPrefix(ipfsUrl, ipfsPrefix))
		}
	}

	c.WithFields(log.Fields{
		"schema": scheme,
		"url":    rawUrl,
		"err":    err,
	}).Warn("failed to fetch")
	return nil, err
}

func (u *webResourceUseCase) getIpfs(c bCtx.Ctx, cid string) ([]byte, error) {
	if u.ipfsNodeReader != nil {
		data, err := u.ipfsNodeReader.Get(c, cid)
		if err == nil {
			return data, nil
		}
		c.WithFields(log.Fields{
			"cid": cid,
			"err": err,
		}).Info("ipfs node failed, using gateway")
	}
	return u.ipfsGatewayReader.Get(c, cid)
}

func schemeOf(rawUrl string) string {
	i := strings.Index(rawUrl, ":")
	if i <= 0 {
		return ""
	}
	return strings.ToLower(rawUrl[:i])
}

func withSlash(s string) string {
	if s == "" || strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

var dedicatedPinataRegex = regexp.MustCompile(`^https://.*.mypinata.cloud/ipfs/`)

func getIpfsUrl(url string) string {
	var (
		pinataPrefix     = "https://gateway.pinata.cloud/ipfs/"
		ipfsIoPrefix     = "https://ipfs.io/ipfs/"
		cloudflarePrefix = "https://cloudflare-ipfs.com/ipfs/"
		foundationPrefix = "https://ipfs.foundation.app/ipfs/"
	)

	fixedPrefix := []string{pinataPrefix, ipfsIoPrefix, cloudflarePrefix, foundationPrefix}
	for _, p := range fixedPrefix {
		if strings.HasPrefix(url, p) {
			return strings.Replace(url, p, ipfsPrefix, 1)
		}
	}
	if dedicatedPinataRegex.MatchString(url) {
		return dedicatedPinataRegex.ReplaceAllLiteralString(url, ipfsPrefix)
	}
	return ""
}
