package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"arheb/internal/domain/models"
)

// File names of the static catalog payloads.
const (
	CategoriesFile = "categories_response.json"
	ProductsFile   = "products_listing_response.json"
	HomeFile       = "home_response.json"
	StoresFile     = "stores_listing_response.json"
)

type categoriesData struct {
	Categories []models.Category `json:"categories"`
}

type productsData struct {
	Products []models.Product `json:"products"`
}

type homeData struct {
	Banners           []models.Banner   `json:"banners"`
	Categories        []models.Category `json:"categories"`
	MostPopularStores []models.Store    `json:"mostPopularStores"`
	Offers            []models.Offer    `json:"offers"`
}

type storesData struct {
	Stores []models.Store `json:"stores"`
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Fixtures keeps each payload twice: raw, so the API can serve the
// file byte for byte, and parsed, for seeding and lookups.
type Fixtures struct {
	CategoriesRaw json.RawMessage
	ProductsRaw   json.RawMessage
	HomeRaw       json.RawMessage
	StoresRaw     json.RawMessage

	Categories []models.Category
	Products   []models.Product
	Banners    []models.Banner
	HomeCats   []models.Category
	HomeStores []models.Store
	Offers     []models.Offer
	Stores     []models.Store
}

// Load reads every payload from dir. A missing file is an error; the
// catalog cannot serve without its fixtures.
func Load(dir string) (*Fixtures, error) {
	f := &Fixtures{}

	var cats categoriesData
	raw, err := readPayload(filepath.Join(dir, CategoriesFile), &cats)
	if err != nil {
		return nil, err
	}
	f.CategoriesRaw, f.Categories = raw, cats.Categories

	var prods productsData
	raw, err = readPayload(filepath.Join(dir, ProductsFile), &prods)
	if err != nil {
		return nil, err
	}
	f.ProductsRaw, f.Products = raw, prods.Products

	var home homeData
	raw, err = readPayload(filepath.Join(dir, HomeFile), &home)
	if err != nil {
		return nil, err
	}
	f.HomeRaw = raw
	f.Banners, f.HomeCats, f.HomeStores, f.Offers =
		home.Banners, home.Categories, home.MostPopularStores, home.Offers

	var stores storesData
	raw, err = readPayload(filepath.Join(dir, StoresFile), &stores)
	if err != nil {
		return nil, err
	}
	f.StoresRaw, f.Stores = raw, stores.Stores

	return f, nil
}

func readPayload(path string, data any) (json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", filepath.Base(path), err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", filepath.Base(path), err)
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			return nil, fmt.Errorf("parse fixture data %s: %w", filepath.Base(path), err)
		}
	}
	return json.RawMessage(raw), nil
}

// ProductByID looks a product up in the listing payload.
func (f *Fixtures) ProductByID(id string) *models.Product {
	for i := range f.Products {
		if f.Products[i].ID == id {
			return &f.Products[i]
		}
	}
	return nil
}

// StoreByID looks a store up in the listing payload.
func (f *Fixtures) StoreByID(id string) *models.Store {
	for i := range f.Stores {
		if f.Stores[i].ID == id {
			return &f.Stores[i]
		}
	}
	return nil
}

// ProductsByStore filters the listing by store id.
func (f *Fixtures) ProductsByStore(storeID string) []models.Product {
	var out []models.Product
	for _, p := range f.Products {
		if p.Store != nil && p.Store.ID == storeID {
			out = append(out, p)
		}
	}
	return out
}

// StoreIDForProduct resolves the store behind a product, used when
// checkout gets no explicit storeId.
func (f *Fixtures) StoreIDForProduct(productID string) string {
	if p := f.ProductByID(productID); p != nil && p.Store != nil {
		return p.Store.ID
	}
	return ""
}
