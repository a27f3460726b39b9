package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"folio/internal/config"
	"folio/internal/handlers"
	"folio/internal/logger"
	"folio/internal/marketdata"
	"folio/internal/middleware"
	"folio/internal/models"
	"folio/internal/services"
	"folio/internal/validator"
)

const currencyPair = "USDCZK=X"

// testApp holds the full application stack for integration tests, backed by
// an isolated database and a fake market data server.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Market *fakeMarket
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// fakeMarket serves quotes over HTTP in the upstream wire format, so the
// real resty-based client is exercised end to end.
type fakeMarket struct {
	mu     sync.Mutex
	quotes map[string]marketdata.Quote
	status int
	server *httptest.Server
}

func newFakeMarket() *fakeMarket {
	m := &fakeMarket{
		quotes: map[string]marketdata.Quote{
			"AAPL":       {Symbol: "AAPL", LongName: "Apple Inc.", QuoteType: "EQUITY", RegularMarketPrice: 150},
			"VWCE.DE":    {Symbol: "VWCE.DE", LongName: "Vanguard FTSE All-World", QuoteType: "ETF", RegularMarketPrice: 110},
			"BTC-USD":    {Symbol: "BTC-USD", LongName: "Bitcoin USD", QuoteType: "CRYPTOCURRENCY", RegularMarketPrice: 60000},
			currencyPair: {Symbol: currencyPair, QuoteType: "CURRENCY", RegularMarketPrice: 22.5},
		},
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *fakeMarket) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != 0 {
		w.WriteHeader(m.status)
		return
	}

	var body []marketdata.Quote
	for _, ticker := range strings.Split(r.URL.Query().Get("ticker"), ",") {
		if q, ok := m.quotes[ticker]; ok {
			body = append(body, q)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"body": body})
}

// SetStatus makes every subsequent market request answer with the given
// HTTP status. Zero restores normal behavior.
func (m *fakeMarket) SetStatus(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = status
}

// SetPrice changes one symbol's price.
func (m *fakeMarket) SetPrice(symbol string, price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := m.quotes[symbol]
	q.Symbol = symbol
	q.RegularMarketPrice = price
	m.quotes[symbol] = q
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Holding{},
		&models.PerformancePoint{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite and a fake market data server.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	market := newFakeMarket()
	t.Cleanup(market.server.Close)

	quoteClient := marketdata.NewClient(&config.Config{
		MarketDataURL:     market.server.URL,
		MarketDataTimeout: 5 * time.Second,
	})

	// Services
	userService := services.NewUserService(db)
	performanceService := services.NewPerformanceService(db)
	portfolioService := services.NewPortfolioService(db, quoteClient, performanceService, currencyPair)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, performanceService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	pf := protected.Group("/portfolio")
	pf.GET("", portfolioHandler.GetPortfolio)
	pf.POST("/holdings", portfolioHandler.AddHolding)
	pf.PUT("/holdings/:ticker", portfolioHandler.UpdateHolding)
	pf.DELETE("/holdings/:ticker", portfolioHandler.RemoveHolding)
	pf.GET("/performance", portfolioHandler.GetPerformance)

	return &testApp{DB: db, Router: router, Market: market}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// loginUser logs in and returns the token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string)
}

// addHolding creates a holding through the API.
func (app *testApp) addHolding(t *testing.T, token, ticker string, shares, investment float64) {
	t.Helper()
	body := fmt.Sprintf(`{"ticker":%q,"shares":%g,"investment":%g}`, ticker, shares, investment)
	rec := app.request("POST", "/api/v1/portfolio/holdings", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add holding %s failed: %d %s", ticker, rec.Code, rec.Body.String())
	}
}
