package api

import (
	"errors"
	"net/http"

	reqdto "coupon-market/internal/handler/dto/request"
	resdto "coupon-market/internal/handler/dto/response"
	"coupon-market/internal/handler/httperr"
	"coupon-market/internal/handler/middleware"
	"coupon-market/internal/usecase/commands"
	"coupon-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	claimCommands  commands.ClaimCommands
	redeemCommands commands.RedeemCommands
	couponQueries  queries.CouponQueries
}

func NewCouponHandler(
	claimCommands commands.ClaimCommands,
	redeemCommands commands.RedeemCommands,
	couponQueries queries.CouponQueries,
) *CouponHandler {
	return &CouponHandler{
		claimCommands:  claimCommands,
		redeemCommands: redeemCommands,
		couponQueries:  couponQueries,
	}
}

// @Summary Claim coupons
// @Description Atomically claim coupons from an offer's remaining supply
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ClaimCouponsRequest true "Claim request"
// @Success 201 {object} resdto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /coupons/claims [post]
func (h *CouponHandler) ClaimCoupons(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.ClaimCouponsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.claimCommands.ClaimCoupons(c.Request.Context(), req.OfferID, userID, req.GetQuantity())
	if err != nil {
		h.respondClaimError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromClaimResult(result))
}

func (h *CouponHandler) respondClaimError(c *gin.Context, err error) {
	var supplyErr *commands.InsufficientSupplyError

	switch {
	case errors.Is(err, commands.ErrOfferNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
	case errors.Is(err, commands.ErrUnknownUser):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unknown or inactive user", nil)
	case errors.As(err, &supplyErr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient coupon supply",
			map[string]any{"remaining": supplyErr.Remaining})
	case errors.Is(err, commands.ErrInsufficientSupply):
		httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient coupon supply", nil)
	case errors.Is(err, commands.ErrDuplicateClaim):
		httperr.AbortWithError(c, http.StatusConflict, err, "Claim limit for this offer reached", nil)
	case errors.Is(err, commands.ErrOfferNotClaimable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Offer is not claimable", nil)
	case errors.Is(err, commands.ErrInvalidQuantity):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be at least 1", nil)
	case errors.Is(err, commands.ErrPaymentDeclined):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Payment was declined", nil)
	case errors.Is(err, commands.ErrTransientConflict):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
			"Claim conflicted with concurrent requests, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary List my coupons
// @Description List the authenticated user's coupons with display state
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CouponView
// @Failure 401 {object} map[string]string
// @Router /coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	views, err := h.couponQueries.ListUserCoupons(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get coupon
// @Description Get one of the authenticated user's coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} queries.CouponView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [get]
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	userID, id, ok := h.ownedCouponID(c)
	if !ok {
		return
	}

	view, err := h.couponQueries.GetCoupon(c.Request.Context(), id, userID)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Redeem coupon
// @Description Permanently redeem an assigned coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /coupons/{id}/redeem [post]
func (h *CouponHandler) RedeemCoupon(c *gin.Context) {
	userID, id, ok := h.ownedCouponID(c)
	if !ok {
		return
	}

	redeemed, err := h.redeemCommands.RedeemCoupon(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
		case errors.Is(err, commands.ErrNotOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Coupon belongs to another user", nil)
		case errors.Is(err, commands.ErrAlreadyRedeemed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Coupon already redeemed", nil)
		case errors.Is(err, commands.ErrCouponExpired):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Coupon has expired", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RedeemResponse{
		ID:         redeemed.ID(),
		Code:       string(redeemed.Code()),
		State:      redeemed.State().String(),
		RedeemedAt: redeemed.RedeemedAt(),
	})
}

// @Summary Get redemption proof
// @Description Get the data an external renderer needs to produce a proof document
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} queries.RedemptionProof
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id}/proof [get]
func (h *CouponHandler) GetRedemptionProof(c *gin.Context) {
	userID, id, ok := h.ownedCouponID(c)
	if !ok {
		return
	}

	proof, err := h.couponQueries.GetRedemptionProof(c.Request.Context(), id, userID)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, proof)
}

// @Summary Validate coupon code
// @Description Business-side check whether a coupon code is currently redeemable
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCodeRequest true "Code to validate"
// @Success 200 {object} queries.CodeValidationView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/validate [post]
func (h *CouponHandler) ValidateCode(c *gin.Context) {
	var req reqdto.ValidateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.couponQueries.ValidateCouponCode(c.Request.Context(), req.GetCode())
	if err != nil {
		if errors.Is(err, queries.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown coupon code", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *CouponHandler) ownedCouponID(c *gin.Context) (userID, couponID uuid.UUID, ok bool) {
	userID, authed := middleware.GetUserID(c)
	if !authed {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return uuid.Nil, uuid.Nil, false
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon ID format", nil)
		return uuid.Nil, uuid.Nil, false
	}

	return userID, couponID, true
}

func (h *CouponHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
	case errors.Is(err, queries.ErrNotOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Coupon belongs to another user", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
