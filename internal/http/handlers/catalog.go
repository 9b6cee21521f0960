package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"arheb/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// The catalog endpoints serve the fixture payloads byte for byte, the
// way the mobile clients consumed them before this backend existed.

// GET /api/categories
func GetCategories(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", getFixtures().CategoriesRaw)
}

// GET /api/products
func GetProducts(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", getFixtures().ProductsRaw)
}

// GET /api/products/:id
func GetProduct(c *gin.Context) {
	p := getFixtures().ProductByID(c.Param("id"))
	if p == nil {
		RespondError(c, http.StatusNotFound, "Product not found", nil)
		return
	}
	Respond(c, http.StatusOK, "Product retrieved", p)
}

// GET /api/home
func GetHome(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", getFixtures().HomeRaw)
}

// GET /api/stores
func GetStores(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", getFixtures().StoresRaw)
}

// GET /api/stores/:id
func GetStore(c *gin.Context) {
	s := getFixtures().StoreByID(c.Param("id"))
	if s == nil {
		RespondError(c, http.StatusNotFound, "Store not found", nil)
		return
	}
	Respond(c, http.StatusOK, "Store retrieved", s)
}

// GET /api/stores/top-rated?limit=
func GetTopRatedStores(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			RespondError(c, http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		limit = n
	}

	all := getFixtures().Stores
	sorted := make([]models.Store, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Rate != sorted[b].Rate {
			return sorted[a].Rate > sorted[b].Rate
		}
		return sorted[a].NumberOfReviews > sorted[b].NumberOfReviews
	})
	if limit > len(sorted) {
		limit = len(sorted)
	}
	Respond(c, http.StatusOK, "Top rated stores", sorted[:limit])
}

// GET /api/stores/:id/products
func GetStoreProducts(c *gin.Context) {
	f := getFixtures()
	storeID := c.Param("id")
	if f.StoreByID(storeID) == nil {
		RespondError(c, http.StatusNotFound, "Store not found", nil)
		return
	}
	products := f.ProductsByStore(storeID)
	Respond(c, http.StatusOK, "Store products retrieved", gin.H{
		"storeId":  storeID,
		"products": products,
	})
}
