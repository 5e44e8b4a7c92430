package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/finance-gateway/internal/catalog"
	"github.com/guttosm/finance-gateway/internal/domain/dto"
	"github.com/guttosm/finance-gateway/internal/middleware"
	"github.com/guttosm/finance-gateway/internal/service"
	"github.com/guttosm/finance-gateway/internal/validation"
)

// Version is reported by the root route and the Swagger document.
const Version = "1.0"

// Handler provides the HTTP handlers of the public v1 API.
//
// Responsibilities:
//   - Validate query parameters through the validation package
//   - Call the conversion and stock services with the request context
//   - Wrap results in the success envelope, failures in the error envelope
type Handler struct {
	validator   *validation.Validator
	conversions service.ConversionService
	stocks      service.StockService
}

// NewHandler constructs a Handler.
//
// Parameters:
//   - v: query parameter validator.
//   - conversions: currency conversion use cases.
//   - stocks: B3 stock use cases.
func NewHandler(v *validation.Validator, conversions service.ConversionService, stocks service.StockService) *Handler {
	return &Handler{validator: v, conversions: conversions, stocks: stocks}
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// ─── Info ─────────────────────────────────────────

// Info godoc
// @Summary      API basic information
// @Description  Name, version and the list of public endpoints
// @Tags         info
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse{data=dto.APIInfo}
// @Router       / [get]
func (h *Handler) Info(c *gin.Context) {
	ok(c, dto.APIInfo{
		Name:          "finance-gateway",
		Version:       Version,
		Description:   "Currency conversion (Frankfurter) and B3 stock data (brapi) behind one normalized API.",
		Documentation: "/swagger/index.html",
		Endpoints: []dto.Endpoint{
			{Method: http.MethodGet, Path: "/v1/conversion/historical", Description: "Convert an amount on a single date"},
			{Method: http.MethodGet, Path: "/v1/conversion/interval", Description: "Convert an amount over a date range"},
			{Method: http.MethodGet, Path: "/v1/currencies", Description: "Supported currencies"},
			{Method: http.MethodGet, Path: "/v1/b3stocks/all", Description: "Tickers traded on B3"},
			{Method: http.MethodGet, Path: "/v1/b3stocks/quote", Description: "Quote for one ticker"},
			{Method: http.MethodGet, Path: "/v1/b3stocks/stocksinfo", Description: "Filtered and sorted stock list"},
		},
	})
}

// ─── Conversion ───────────────────────────────────

// HistoricalConversion godoc
// @Summary      Historical conversion
// @Description  Converts an amount from one currency to others on a given date
// @Tags         conversion
// @Produce      json
// @Param        from    query     string  false  "Source currency"  default(USD)
// @Param        to      query     string  false  "Comma-separated target currencies"  example(BRL,EUR)
// @Param        amount  query     int     false  "Amount to convert"  default(1)
// @Param        date    query     string  false  "YYYY-MM-DD or DD-MM-YYYY, defaults to today"  example(2025-01-15)
// @Success      200     {object}  dto.SuccessResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      503     {object}  dto.ErrorResponse
// @Router       /v1/conversion/historical [get]
func (h *Handler) HistoricalConversion(c *gin.Context) {
	req, err := h.validator.HistoricalConversion(c.Request.URL.Query())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	out, err := h.conversions.Historical(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	ok(c, out)
}

// IntervalConversion godoc
// @Summary      Interval conversion
// @Description  Converts an amount from one currency to others for every business day in a range
// @Tags         conversion
// @Produce      json
// @Param        from        query     string  false  "Source currency"  default(USD)
// @Param        to          query     string  false  "Comma-separated target currencies"  example(BRL)
// @Param        amount      query     int     false  "Amount to convert"  default(1)
// @Param        start_date  query     string  false  "YYYY-MM-DD or DD-MM-YYYY, defaults to today"  example(2025-01-01)
// @Param        end_date    query     string  false  "YYYY-MM-DD or DD-MM-YYYY, defaults to today"  example(2025-01-31)
// @Success      200         {object}  dto.SuccessResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      503         {object}  dto.ErrorResponse
// @Router       /v1/conversion/interval [get]
func (h *Handler) IntervalConversion(c *gin.Context) {
	req, err := h.validator.IntervalConversion(c.Request.URL.Query())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	out, err := h.conversions.Interval(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	ok(c, out)
}

// Currencies godoc
// @Summary      Supported currencies
// @Description  ISO code to display name of every convertible currency
// @Tags         conversion
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse{data=map[string]string}
// @Router       /v1/currencies [get]
func (h *Handler) Currencies(c *gin.Context) {
	ok(c, catalog.Currencies())
}

// ─── B3 stocks ────────────────────────────────────

// AllStocks godoc
// @Summary      B3 tickers
// @Description  Every ticker currently traded on B3
// @Tags         b3stocks
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse{data=[]string}
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /v1/b3stocks/all [get]
func (h *Handler) AllStocks(c *gin.Context) {
	out, err := h.stocks.All(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	ok(c, out)
}

// StockQuote godoc
// @Summary      Stock quote
// @Description  Quote, history and optional fundamentals/dividends for one ticker
// @Tags         b3stocks
// @Produce      json
// @Param        ticker       query     string  true   "B3 ticker"  example(PETR4)
// @Param        range        query     string  false  "History range"  default(1d)
// @Param        interval     query     string  false  "History interval"  default(1d)
// @Param        fundamental  query     bool    false  "Include fundamentals"
// @Param        dividends    query     bool    false  "Include dividends"
// @Success      200          {object}  dto.SuccessResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      503          {object}  dto.ErrorResponse
// @Router       /v1/b3stocks/quote [get]
func (h *Handler) StockQuote(c *gin.Context) {
	req, err := h.validator.StockQuote(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	out, err := h.stocks.Quote(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	ok(c, out)
}

// StockListing godoc
// @Summary      Stock listing
// @Description  B3 stocks filtered by sector, sorted and paginated
// @Tags         b3stocks
// @Produce      json
// @Param        sector    query     string  false  "Market sector"  example(Finance)
// @Param        sortedBy  query     string  false  "Sort field"  default(name)  Enums(name, close, change, change_abs, volume, market_cap_basic, sector)
// @Param        order     query     string  false  "Sort order"  default(asc)  Enums(asc, desc)
// @Param        page      query     int     false  "Page, starting at 1"  minimum(1)
// @Param        limit     query     int     false  "Page size"  minimum(1)
// @Success      200       {object}  dto.SuccessResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      503       {object}  dto.ErrorResponse
// @Router       /v1/b3stocks/stocksinfo [get]
func (h *Handler) StockListing(c *gin.Context) {
	req, err := h.validator.StockListing(c.Request.URL.Query())
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	out, err := h.stocks.Listing(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	ok(c, out)
}
