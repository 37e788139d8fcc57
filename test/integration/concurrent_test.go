package integration

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/package-pricing/package-pricing-and-aggregation-engine/test/mock"
)

// TestConcurrent_MultiplePricingRequests tests that concurrent pricing
// requests are handled correctly without interference.
func TestConcurrent_MultiplePricingRequests(t *testing.T) {
	// Arrange
	rates := mock.NewRateClient("mock-tbo").
		WithDelay(10 * time.Millisecond) // Small delay to increase overlap
	ts := NewTestServer(rates)

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	// Act - Fire concurrent requests
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.PricingRequest(DefaultPricingBody())
		}(i)
	}

	wg.Wait()

	// Assert - All requests should succeed with identical totals
	for i := 0; i < numRequests; i++ {
		assert.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		pricing, err := results[i].ParsePricingResponse()
		require.NoError(t, err)
		assert.InDelta(t, 1725.0, pricing.Breakdown.GrandTotal, 0.001, "request %d total", i)
		assert.False(t, pricing.Degraded, "request %d should not degrade", i)
	}
}

// TestConcurrent_CacheSharedAcrossRequests tests that the rate cache is
// shared: after the first request warms it, later requests skip the provider.
func TestConcurrent_CacheSharedAcrossRequests(t *testing.T) {
	// Arrange
	rates := mock.NewRateClient("mock-tbo")
	ts := NewTestServer(rates)

	// Warm the cache with one sequential request.
	warm := ts.PricingRequest(DefaultPricingBody())
	require.Equal(t, http.StatusOK, warm.Code)
	warmCalls := rates.SearchCallCount()
	assert.Equal(t, 2, warmCalls)

	// Act - concurrent identical requests
	numRequests := 5
	var wg sync.WaitGroup
	results := make([]Response, numRequests)
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.PricingRequest(DefaultPricingBody())
		}(i)
	}
	wg.Wait()

	// Assert - all served from cache, no extra provider calls
	for i := 0; i < numRequests; i++ {
		assert.Equal(t, http.StatusOK, results[i].Code)

		pricing, err := results[i].ParsePricingResponse()
		require.NoError(t, err)
		assert.Equal(t, 2, pricing.Metadata.HotelsFromCache)
	}
	assert.Equal(t, warmCalls, rates.SearchCallCount())
}

// TestConcurrent_IndependentResults tests that concurrent requests for
// different traveler counts each get their own totals.
func TestConcurrent_IndependentResults(t *testing.T) {
	// Arrange
	ts := NewTestServer(mock.NewRateClient("mock-tbo").WithDelay(5 * time.Millisecond))

	coupleBody := DefaultPricingBody()
	coupleBody["travelers"] = map[string]int{"adults": 2}

	familyBody := DefaultPricingBody()
	familyBody["travelers"] = map[string]int{"adults": 2, "children": 2}

	var wg sync.WaitGroup
	var coupleResp, familyResp Response

	// Act
	wg.Add(2)
	go func() {
		defer wg.Done()
		coupleResp = ts.PricingRequest(coupleBody)
	}()
	go func() {
		defer wg.Done()
		familyResp = ts.PricingRequest(familyBody)
	}()
	wg.Wait()

	// Assert
	require.Equal(t, http.StatusOK, coupleResp.Code)
	require.Equal(t, http.StatusOK, familyResp.Code)

	couple, err := coupleResp.ParsePricingResponse()
	require.NoError(t, err)
	family, err := familyResp.ParsePricingResponse()
	require.NoError(t, err)

	// couple: 1000 - 100 + 600 = 1500; family: 1500 - 150 + 600 = 1950.
	assert.InDelta(t, 1500.0, couple.Breakdown.GrandTotal, 0.001)
	assert.InDelta(t, 1950.0, family.Breakdown.GrandTotal, 0.001)
}
