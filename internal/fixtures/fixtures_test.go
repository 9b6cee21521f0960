package fixtures

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, CategoriesFile, `{"success":true,"data":{"categories":[
		{"id":"cat-1","name":"Food","subCategories":[{"id":"sub-1","name":"Pizza"}]}]}}`)
	writeFixture(t, dir, ProductsFile, `{"success":true,"data":{"products":[
		{"id":"p-1","name":"Margherita","price":120,"store":{"id":"s-1","name":"Pizza House"}},
		{"id":"p-2","name":"Burger","price":80,"store":{"id":"s-2"}}]}}`)
	writeFixture(t, dir, HomeFile, `{"success":true,"data":{"banners":[{"id":"b-1"}],
		"categories":[{"id":"cat-1","name":"Food"}],
		"mostPopularStores":[{"id":"s-1","name":"Pizza House","rate":4.5}],
		"offers":[{"id":"o-1","title":"Half off"}]}}`)
	writeFixture(t, dir, StoresFile, `{"success":true,"data":{"stores":[
		{"id":"s-1","name":"Pizza House","rate":4.5,"numberOfReviews":10},
		{"id":"s-2","name":"Burger Spot","rate":3.9,"numberOfReviews":4}]}}`)
	return dir
}

func TestLoadParsesAllPayloads(t *testing.T) {
	f, err := Load(fixtureDir(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(f.Categories) != 1 || len(f.Categories[0].SubCategories) != 1 {
		t.Fatalf("categories not parsed: %+v", f.Categories)
	}
	if len(f.Products) != 2 || len(f.Stores) != 2 {
		t.Fatalf("products/stores not parsed")
	}
	if len(f.Banners) != 1 || len(f.HomeStores) != 1 || len(f.Offers) != 1 {
		t.Fatalf("home payload not parsed")
	}
	if len(f.CategoriesRaw) == 0 || len(f.HomeRaw) == 0 {
		t.Fatalf("raw payloads must be retained")
	}
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("empty dir must fail to load")
	}
}

func TestLookups(t *testing.T) {
	f, err := Load(fixtureDir(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if p := f.ProductByID("p-1"); p == nil || p.Name != "Margherita" {
		t.Fatalf("ProductByID failed: %+v", p)
	}
	if f.ProductByID("nope") != nil {
		t.Fatalf("unknown product should be nil")
	}
	if s := f.StoreByID("s-2"); s == nil || s.Name != "Burger Spot" {
		t.Fatalf("StoreByID failed")
	}
	if got := f.ProductsByStore("s-1"); len(got) != 1 || got[0].ID != "p-1" {
		t.Fatalf("ProductsByStore failed: %+v", got)
	}
	if f.StoreIDForProduct("p-2") != "s-2" {
		t.Fatalf("StoreIDForProduct failed")
	}
	if f.StoreIDForProduct("nope") != "" {
		t.Fatalf("unknown product must yield empty store id")
	}
}
