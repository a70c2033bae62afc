package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct{}

// NewDataUriReaderRepo decodes rfc2397 data uris in place, without any io.
func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return dataUriReaderRepo{}
}

func (dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	isBase64, payload, err := splitDataUri(uri)
	if err != nil {
		return nil, err
	}
	if isBase64 {
		return decodeBase64(payload)
	}
	// utf8 payloads are often left unescaped, so a bad escape means raw text
	if unescaped, err := url.PathUnescape(payload); err == nil {
		return []byte(unescaped), nil
	}
	return []byte(payload), nil
}

// splitDataUri breaks data:[<mediatype>][;base64],<data> into its encoding
// flag and payload. Media type parameters such as charset are ignored.
func splitDataUri(uri string) (bool, string, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return false, "", xerrors.Errorf("invalid data uri: %w", domain.ErrUnsupportedSchema)
	}
	header, payload, found := strings.Cut(strings.TrimPrefix(uri, dataUriSchema), ",")
	if !found || payload == "" {
		return false, "", xerrors.Errorf("data uri without payload: %w", domain.ErrBadParamInput)
	}
	isBase64 := false
	for _, param := range strings.Split(header, ";") {
		if strings.EqualFold(strings.TrimSpace(param), "base64") {
			isBase64 = true
		}
	}
	return isBase64, payload, nil
}

func decodeBase64(payload string) ([]byte, error) {
	if data, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return data, nil
	}
	// some contracts drop the padding
	data, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	if err != nil {
		return nil, xerrors.Errorf("data uri base64: %w", err)
	}
	return data, nil
}
