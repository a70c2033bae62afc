package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/metrics"
	bValidator "github.com/x-xyz/storefront/base/validator"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/mocks"
	"github.com/x-xyz/storefront/middleware"
)

const (
	collection = domain.Address("0x939ae6a4c8dfdbb1f7085189574f0a938013952a")
	buyer      = "0x1111111111111111111111111111111111111111"
)

type handlerSuite struct {
	suite.Suite

	e         *echo.Echo
	listingUC *mocks.ListingUseCase
	statsUC   *mocks.StatsUseCase
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = bValidator.NewCustomValidator(bValidator.New())
	s.e.Use(middleware.InitMiddleware(metrics.Nop{}).AddContext())

	s.listingUC = &mocks.ListingUseCase{}
	s.statsUC = &mocks.StatsUseCase{}
	New(s.e, s.listingUC, s.statsUC)
}

func (s *handlerSuite) TearDownTest() {
	s.listingUC.AssertExpectations(s.T())
	s.statsUC.AssertExpectations(s.T())
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *handlerSuite) TestGetListings() {
	s.listingUC.On("GetListings", mock.Anything).Return(&domain.ListingsSnapshot{
		Listings:      []domain.Listing{{Index: 7, Collection: collection, TokenId: "1", Price: "1.0", PriceRaw: "1000000000000000000"}},
		Collections:   []domain.CollectionSummary{{Address: collection, Name: "Apes", Listings: 1, Floor: "1.0", FloorRaw: "1000000000000000000"}},
		TotalExecuted: 3,
		FetchedAt:     1700000000000,
	}, nil).Once()

	rec := s.get("/listings")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"success","data":{
		"listings":[{"idx":7,"collection":"0x939ae6a4c8dfdbb1f7085189574f0a938013952a","collectionName":"","tokenId":"1","price":"1.0","priceRaw":"1000000000000000000","seller":"","paymentMethod":"","expiration":0}],
		"collections":[{"address":"0x939ae6a4c8dfdbb1f7085189574f0a938013952a","name":"Apes","listings":1,"floor":"1.0","floorRaw":"1000000000000000000"}],
		"totalExecuted":3,
		"fetchedAt":1700000000000}}`, rec.Body.String())
}

func (s *handlerSuite) TestGetListingsFailed() {
	s.listingUC.On("GetListings", mock.Anything).Return(nil, domain.ErrChainUnavailable).Once()

	rec := s.get("/listings")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"status":"fail","data":"chain unavailable"}`, rec.Body.String())
}

func (s *handlerSuite) TestGetCollectionListings() {
	s.listingUC.On("GetCollectionListings", mock.Anything, collection).Return(&domain.CollectionListings{
		Collection: domain.CollectionSummary{Address: collection, Listings: 0},
		Listings:   []domain.Listing{},
	}, nil).Once()

	rec := s.get("/collections/0x939ae6A4C8dfDBB1f7085189574F0A938013952A/listings")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestGetCollectionListingsErrors() {
	s.listingUC.On("GetCollectionListings", mock.Anything, collection).
		Return(nil, xerrors.Errorf("collection %s: %w", collection, domain.ErrNotFound)).Once()

	s.Equal(http.StatusNotFound, s.get("/collections/"+collection.ToLowerStr()+"/listings").Code)
	s.Equal(http.StatusBadRequest, s.get("/collections/0x1234/listings").Code)
}

func (s *handlerSuite) TestSearchCollections() {
	s.listingUC.On("SearchCollections", mock.Anything, "Apes").Return([]domain.CollectionSummary{
		{Address: collection, Name: "Apes", Listings: 1, Floor: "1.0", FloorRaw: "1000000000000000000"},
	}, nil).Once()
	s.listingUC.On("SearchCollections", mock.Anything, "").Return([]domain.CollectionSummary{}, nil).Once()

	rec := s.get("/collections?q=Apes")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"success","data":[
		{"address":"0x939ae6a4c8dfdbb1f7085189574f0a938013952a","name":"Apes","listings":1,"floor":"1.0","floorRaw":"1000000000000000000"}]}`, rec.Body.String())

	rec = s.get("/collections")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"success","data":[]}`, rec.Body.String())
}

func (s *handlerSuite) TestSearchCollectionsErrors() {
	s.Equal(http.StatusBadRequest, s.get("/collections?q="+strings.Repeat("a", 101)).Code)

	s.listingUC.On("SearchCollections", mock.Anything, "koda").Return(nil, domain.ErrChainUnavailable).Once()
	s.Equal(http.StatusInternalServerError, s.get("/collections?q=koda").Code)
}

func (s *handlerSuite) TestGetPurchase() {
	tx := &domain.PurchaseTx{
		To:      "0x0e22dc442f31b423b4ca2a563d33690d342d9196",
		Data:    "0xabcdef",
		Value:   "1000000000000000000",
		ChainId: 33139,
		Buyer:   buyer,
		Orders:  []uint64{7},
	}
	s.listingUC.On("BuildPurchase", mock.Anything, uint64(7), domain.Address(buyer)).Return(tx, nil).Once()

	rec := s.get("/listings/7/purchase?buyer=" + buyer)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"orderIds":[7]`)
}

func (s *handlerSuite) TestGetPurchaseBadParams() {
	s.Equal(http.StatusBadRequest, s.get("/listings/7/purchase").Code)
	s.Equal(http.StatusBadRequest, s.get("/listings/7/purchase?buyer=0xnope").Code)
	s.Equal(http.StatusBadRequest, s.get("/listings/abc/purchase?buyer="+buyer).Code)
}

func (s *handlerSuite) TestGetPurchaseNotFound() {
	s.listingUC.On("BuildPurchase", mock.Anything, uint64(8), domain.Address(buyer)).
		Return(nil, domain.ErrNotFound).Once()

	s.Equal(http.StatusNotFound, s.get("/listings/8/purchase?buyer="+buyer).Code)
}

func (s *handlerSuite) TestGetStats() {
	s.statsUC.On("GetStats", mock.Anything).Return(&domain.Stats{TotalListings: 2, TotalCollections: 1, TotalSales: 0}, nil).Once()

	rec := s.get("/stats")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"success","data":{"totalListings":2,"totalCollections":1,"totalSales":0}}`, rec.Body.String())
}

func (s *handlerSuite) TestGetStatsFailed() {
	s.statsUC.On("GetStats", mock.Anything).Return(nil, domain.ErrChainUnavailable).Once()

	s.Equal(http.StatusInternalServerError, s.get("/stats").Code)
}
