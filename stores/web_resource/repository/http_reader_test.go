package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/storefront/base/ctx"
)

const bayc0 = `{"image":"ipfs://QmRRPWG96cmgTn2qSzjwr2qvfNEuhunv6FNeMFGa9bx6mQ","attributes":[{"trait_type":"Earring","value":"Silver Hoop"}]}`

type httpReaderSuite struct {
	suite.Suite
	server *httptest.Server
	paths  []string
}

func TestHttpReaders(t *testing.T) {
	suite.Run(t, new(httpReaderSuite))
}

func (s *httpReaderSuite) SetupTest() {
	s.paths = nil
	mux := http.NewServeMux()
	mux.HandleFunc("/ipfs/QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0", func(w http.ResponseWriter, r *http.Request) {
		s.paths = append(s.paths, r.URL.Path)
		w.Write([]byte(bayc0))
	})
	mux.HandleFunc("/eXcwlbsV1BiRGCsGKXa60Mj0i-xDZU0k95l_ysNwv_w/1.json", func(w http.ResponseWriter, r *http.Request) {
		s.paths = append(s.paths, r.URL.Path)
		w.Write([]byte(`{"name":"White Rabbit Producer Pass Chapter 1"}`))
	})
	mux.HandleFunc("/headers", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.Header.Get("User-Agent")))
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	mux.HandleFunc("/missing", http.NotFound)
	s.server = httptest.NewServer(mux)
}

func (s *httpReaderSuite) TearDownTest() {
	s.server.Close()
}

func (s *httpReaderSuite) TestHttpReader() {
	r := NewHttpReaderRepo(http.Client{}, time.Second, map[string]string{"User-Agent": "storefront"})

	b, err := r.Get(bCtx.Background(), s.server.URL+"/headers")
	s.NoError(err)
	s.Equal("storefront", string(b))
}

func (s *httpReaderSuite) TestHttpReaderNon200() {
	r := NewHttpReaderRepo(http.Client{}, time.Second, nil)

	_, err := r.Get(bCtx.Background(), s.server.URL+"/missing")
	s.Error(err)
}

func (s *httpReaderSuite) TestHttpReaderTimeout() {
	r := NewHttpReaderRepo(http.Client{}, 50*time.Millisecond, nil)

	_, err := r.Get(bCtx.Background(), s.server.URL+"/slow")
	s.Error(err)
}

func (s *httpReaderSuite) TestIpfsGatewayReader() {
	r := NewIpfsGatewayReaderRepo(http.Client{}, s.server.URL+"/ipfs/", time.Second)

	b, err := r.Get(bCtx.Background(), "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0")
	s.NoError(err)
	s.Equal(bayc0, string(b))
	s.Equal([]string{"/ipfs/QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0"}, s.paths)
}

func (s *httpReaderSuite) TestArReader() {
	r := NewArReaderRepo(http.Client{}, s.server.URL, time.Second)

	b, err := r.Get(bCtx.Background(), "ar://eXcwlbsV1BiRGCsGKXa60Mj0i-xDZU0k95l_ysNwv_w/1.json")
	s.NoError(err)
	s.JSONEq(`{"name":"White Rabbit Producer Pass Chapter 1"}`, string(b))

	_, err = r.Get(bCtx.Background(), "https://arweave.net/x")
	s.Error(err)
}
