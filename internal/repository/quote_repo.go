package repository

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/anujm4467/trading-journel-sub000/config"
	"github.com/anujm4467/trading-journel-sub000/internal/dto"
	"github.com/anujm4467/trading-journel-sub000/pkg/cache"
	"github.com/anujm4467/trading-journel-sub000/pkg/common"
	"github.com/anujm4467/trading-journel-sub000/pkg/httpclient"
	"github.com/anujm4467/trading-journel-sub000/pkg/logger"

	"golang.org/x/time/rate"
)

type QuoteRepository interface {
	GetLastPrice(ctx context.Context, symbol string) (float64, error)
}

type quoteRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	cache          cache.Cache
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	mu             sync.Mutex
}

func NewQuoteRepository(cfg *config.Config, inmemoryCache cache.Cache, log *logger.Logger) QuoteRepository {
	perMinute := cfg.Quotes.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 60
	}
	secondsPerRequest := time.Minute / time.Duration(perMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &quoteRepository{
		httpClient:     httpclient.New(cfg.Quotes.BaseURL, cfg.Quotes.Timeout),
		cfg:            cfg,
		cache:          inmemoryCache,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

// GetLastPrice returns the last traded price for a symbol, serving from the
// in-memory cache when fresh. Used to value open equity positions.
func (r *quoteRepository) GetLastPrice(ctx context.Context, symbol string) (float64, error) {
	cacheKey := fmt.Sprintf(common.KEY_LAST_PRICE, symbol)
	if cached, found := r.cache.Get(cacheKey); found {
		if price, ok := cached.(float64); ok {
			return price, nil
		}
	}

	r.mu.Lock()
	err := r.requestLimiter.Wait(ctx)
	r.mu.Unlock()
	if err != nil {
		return 0, err
	}

	endpoint := "/" + symbol
	queryParams := map[string]string{
		"interval": "1d",
		"range":    "1d",
	}
	headers := map[string]string{
		"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36",
	}

	var quoteResp dto.QuoteChartResponse
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, headers, &quoteResp)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.ErrorContext(ctx, "Quote provider returned Non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("symbol", symbol))
		return 0, fmt.Errorf("quote provider returned status: %d", resp.StatusCode)
	}

	if quoteResp.Chart.Error != nil {
		return 0, fmt.Errorf("quote provider error for %s: %v", symbol, quoteResp.Chart.Error)
	}

	if len(quoteResp.Chart.Result) == 0 || quoteResp.Chart.Result[0].Meta.RegularMarketPrice <= 0 {
		return 0, fmt.Errorf("no price returned for symbol: %s", symbol)
	}

	price := quoteResp.Chart.Result[0].Meta.RegularMarketPrice
	r.cache.Set(cacheKey, price, r.cfg.Quotes.CacheDuration)

	return price, nil
}
