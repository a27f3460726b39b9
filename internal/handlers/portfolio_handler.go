package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "folio/internal/errors"
	"folio/internal/services"
)

// PortfolioHandler handles portfolio and performance requests.
type PortfolioHandler struct {
	portfolioService   services.PortfolioServicer
	performanceService services.PerformanceServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer, performanceService services.PerformanceServicer) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService:   portfolioService,
		performanceService: performanceService,
	}
}

// AddHoldingRequest represents the request payload for adding a holding.
type AddHoldingRequest struct {
	Ticker     string  `json:"ticker" binding:"required,max=20,ticker"`
	Shares     float64 `json:"shares" binding:"required,gt=0"`
	Investment float64 `json:"investment" binding:"required,gt=0"`
}

// UpdateHoldingRequest represents the request payload for editing a holding.
type UpdateHoldingRequest struct {
	Shares     float64 `json:"shares" binding:"required,gt=0"`
	Investment float64 `json:"investment" binding:"required,gt=0"`
}

// GetPortfolio handles the full portfolio load.
// @Summary     Get portfolio
// @Description Load the portfolio with live market data: enriched holdings, summary, allocation breakdown and performance history
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PortfolioView "Derived portfolio view"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     429 {object} ErrorResponse "Market data rate limited"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.portfolioService.LoadPortfolio(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// AddHolding handles adding a new holding.
// @Summary     Add holding
// @Description Add a new holding; the ticker is verified against the market data service and the response carries the enriched position
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddHoldingRequest true "Holding details"
// @Success     201 {object} models.Holding "Holding created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Ticker not found"
// @Failure     409 {object} ErrorResponse "Duplicate ticker"
// @Failure     429 {object} ErrorResponse "Market data rate limited"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /portfolio/holdings [post]
func (h *PortfolioHandler) AddHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.portfolioService.AddHolding(c.Request.Context(), userID, req.Ticker, req.Shares, req.Investment)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"holding": holding})
}

// UpdateHolding handles editing an existing holding.
// @Summary     Update holding
// @Description Replace the shares and investment of an existing holding and re-enrich it from a fresh quote
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       ticker  path string true "Holding ticker"
// @Param       request body UpdateHoldingRequest true "New position values"
// @Success     200 {object} models.Holding "Holding updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Failure     429 {object} ErrorResponse "Market data rate limited"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /portfolio/holdings/{ticker} [put]
func (h *PortfolioHandler) UpdateHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.portfolioService.UpdateHolding(c.Request.Context(), userID, c.Param("ticker"), req.Shares, req.Investment)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// RemoveHolding handles removing a holding.
// @Summary     Remove holding
// @Description Remove a holding by ticker; removing the last holding clears the performance history
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       ticker path string true "Holding ticker"
// @Success     204 "Holding removed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /portfolio/holdings/{ticker} [delete]
func (h *PortfolioHandler) RemoveHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.portfolioService.RemoveHolding(c.Request.Context(), userID, c.Param("ticker")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPerformance handles listing the monthly performance history.
// @Summary     Get performance history
// @Description Get the monthly performance points in chronological order
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.PerformancePoint "Performance points"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/performance [get]
func (h *PortfolioHandler) GetPerformance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := h.performanceService.GetHistory(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"performance": points})
}
