//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"coupon-market/internal/handler/api"
	"coupon-market/internal/usecase/queries"
	"coupon-market/tests/common/builder"
	"coupon-market/tests/common/httptest"
	queriesmock "coupon-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockOfferQueries
	handler     *api.OfferHandler
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.handler = api.NewOfferHandler(s.mockQueries)

	s.router.GET("/offers", s.handler.ListOffers)
	s.router.GET("/offers/:id", s.handler.GetOffer)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

func (s *OfferHandlerTestSuite) TestListOffers() {
	url := "/offers"

	s.Run("success: returns 200 OK with claimable offers", func() {
		views := []*queries.OfferView{
			builder.NewOfferBuilder().BuildView(),
			builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
				b.Title = "Free dessert with dinner"
			}).BuildView(),
		}
		s.mockQueries.EXPECT().ListClaimableOffers(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []queries.OfferView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Two-for-one lunch menu", response[0].Title)
	})

	s.Run("success: empty catalog returns empty list", func() {
		s.mockQueries.EXPECT().ListClaimableOffers(gomock.Any()).
			Return([]*queries.OfferView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []queries.OfferView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListClaimableOffers(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *OfferHandlerTestSuite) TestGetOffer() {
	offerID := uuid.New()
	url := "/offers/" + offerID.String()

	s.Run("success: returns 200 OK with OfferView", func() {
		view := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
			b.ID = offerID
		}).BuildView()
		view.Remaining = 10
		view.Claimable = true

		s.mockQueries.EXPECT().GetOffer(gomock.Any(), offerID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.OfferView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(offerID, response.ID)
		s.Equal(int32(10), response.Remaining)
		s.True(response.Claimable)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid offer ID")
	})

	s.Run("error: 404 Not Found for missing offer", func() {
		s.mockQueries.EXPECT().GetOffer(gomock.Any(), offerID).
			Return(nil, queries.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetOffer(gomock.Any(), offerID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
