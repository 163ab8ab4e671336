package api

import (
	"errors"
	"net/http"

	"coupon-market/internal/handler/httperr"
	"coupon-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	offerQueries queries.OfferQueries
}

func NewOfferHandler(offerQueries queries.OfferQueries) *OfferHandler {
	return &OfferHandler{
		offerQueries: offerQueries,
	}
}

// @Summary List claimable offers
// @Description List approved offers that are inside their window and still have supply
// @Tags offers
// @Produce json
// @Success 200 {array} queries.OfferView
// @Router /offers [get]
func (h *OfferHandler) ListOffers(c *gin.Context) {
	views, err := h.offerQueries.ListClaimableOffers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get offer
// @Description Get offer by ID with derived availability fields
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} queries.OfferView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offer ID format", nil)
		return
	}

	view, err := h.offerQueries.GetOffer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrOfferNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}
