package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuitableCropsFallback(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"rice", "sugarcane", "cotton"}, suitableCrops("clay", "tropical"))
	assert.Equal(t, []string{"jowar", "bajra", "gram"}, suitableCrops("loamy", "arid"))
	assert.Equal(t, fallbackCrops, suitableCrops("clay", "polar"))
	assert.Equal(t, fallbackCrops, suitableCrops("", ""))
}

func TestBasePriceFallback(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2500, basePriceFor("rice"))
	assert.Equal(t, 350, basePriceFor("sugarcane"))
	assert.Equal(t, fallbackBasePrice, basePriceFor("quinoa"))
}

func TestNPKFallback(t *testing.T) {
	t.Parallel()
	assert.Equal(t, NPK{N: 120, P: 60, K: 40}, npkFor("rice"))
	assert.Equal(t, fallbackNPK, npkFor("quinoa"))
}

func TestBaseYieldFallback(t *testing.T) {
	t.Parallel()
	assert.Equal(t, float64(800), baseYieldFor("sugarcane"))
	assert.Equal(t, float64(fallbackBaseYield), baseYieldFor("quinoa"))
}

func TestDiseasesFallback(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"rust", "powdery_mildew", "septoria"}, diseasesFor("wheat"))
	assert.Equal(t, fallbackDiseases, diseasesFor("okra"))
}

func TestDefaultTargetsHaveEnoughEntries(t *testing.T) {
	t.Parallel()
	// The default query slices the first 5 crops and 3 cities.
	assert.GreaterOrEqual(t, len(marketCrops), 5)
	assert.GreaterOrEqual(t, len(marketCities), 3)
}
