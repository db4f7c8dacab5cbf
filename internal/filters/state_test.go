package filters

import (
	"net/url"
	"reflect"
	"testing"

	"bonsaigallery/internal/models"
)

func TestToggle_SymmetricAndOrderPreserving(t *testing.T) {
	s := DefaultState()

	s.ToggleSize(models.TreeSizeMini)
	s.ToggleSize(models.TreeSizeSmall)
	s.ToggleSize(models.TreeSizeMedium)

	// Убираем средний элемент — порядок соседей не меняется
	s.ToggleSize(models.TreeSizeSmall)
	want := []models.TreeSize{models.TreeSizeMini, models.TreeSizeMedium}
	if !reflect.DeepEqual(s.Sizes, want) {
		t.Fatalf("порядок после удаления нарушен: %v", s.Sizes)
	}

	// Двойной toggle возвращает в исходное
	s.ToggleCareLevel(models.CareLevelBeginner)
	s.ToggleCareLevel(models.CareLevelBeginner)
	if len(s.CareLevels) != 0 {
		t.Fatalf("двойной toggle должен дать пустой список: %v", s.CareLevels)
	}
}

func TestHasActiveFilters_PriceVariants(t *testing.T) {
	s := DefaultState()
	if s.HasActiveFilters() || s.HasActiveFiltersStrict() {
		t.Fatal("дефолтное состояние не должно считаться активным")
	}

	// Суженная цена: панель фильтров не видит, витрина видит
	s.PriceRange = [2]float64{100, 500}
	if s.HasActiveFilters() {
		t.Fatal("цена не должна влиять на нестрогий вариант")
	}
	if !s.HasActiveFiltersStrict() {
		t.Fatal("строгий вариант обязан учитывать цену")
	}

	s = DefaultState()
	s.ToggleTreeType(models.TreeTypePine)
	if !s.HasActiveFilters() {
		t.Fatal("выбранный тип дерева должен активировать фильтры")
	}
}

func TestToQuery_OmitsDefaults(t *testing.T) {
	s := DefaultState()
	if got := s.ToQuery(); len(got) != 0 {
		t.Fatalf("дефолтное состояние должно давать пустой запрос: %v", got)
	}

	s.ToggleSize(models.TreeSizeMini)
	s.ToggleSize(models.TreeSizeSmall)
	s.Search = "juniper"
	s.SortBy = models.SortPriceAsc
	s.InStockOnly = true
	s.PriceRange = [2]float64{100, 500} // в запрос не попадает

	q := s.ToQuery()
	if q.Get("sizes") != "mini,small" {
		t.Fatalf("sizes: %q", q.Get("sizes"))
	}
	if q.Get("search") != "juniper" {
		t.Fatalf("search: %q", q.Get("search"))
	}
	if q.Get("sortBy") != "price-asc" {
		t.Fatalf("sortBy: %q", q.Get("sortBy"))
	}
	if q.Get("inStock") != "true" {
		t.Fatalf("inStock: %q", q.Get("inStock"))
	}
	if q.Has("priceMin") || q.Has("priceMax") || q.Has("priceRange") {
		t.Fatal("цена не должна сериализоваться")
	}
	if q.Has("careLevels") || q.Has("treeTypes") {
		t.Fatal("пустые списки не должны сериализоваться")
	}
}

func TestToQuery_DefaultSortOmitted(t *testing.T) {
	s := DefaultState()
	s.SortBy = models.SortNewest
	if s.ToQuery().Has("sortBy") {
		t.Fatal("сортировка по умолчанию не должна попадать в запрос")
	}
}

func TestFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("sizes", "mini,small")
	q.Set("careLevels", "beginner")
	q.Set("sortBy", "name")
	q.Set("inStock", "true")
	q.Set("search", "maple")

	s := FromQuery(q)
	if !reflect.DeepEqual(s.Sizes, []models.TreeSize{models.TreeSizeMini, models.TreeSizeSmall}) {
		t.Fatalf("sizes: %v", s.Sizes)
	}
	if !reflect.DeepEqual(s.CareLevels, []models.CareLevel{models.CareLevelBeginner}) {
		t.Fatalf("careLevels: %v", s.CareLevels)
	}
	if s.SortBy != models.SortName {
		t.Fatalf("sortBy: %q", s.SortBy)
	}
	if !s.InStockOnly {
		t.Fatal("inStock=true должен включать фильтр наличия")
	}
	if s.Search != "maple" {
		t.Fatalf("search: %q", s.Search)
	}
	// Цена из запроса не читается
	if s.PriceRange != [2]float64{DefaultPriceMin, DefaultPriceMax} {
		t.Fatalf("цена должна остаться дефолтной: %v", s.PriceRange)
	}
}

func TestFromQuery_UnknownSortIgnored(t *testing.T) {
	q := url.Values{}
	q.Set("sortBy", "popularity")
	if s := FromQuery(q); s.SortBy != models.SortNewest {
		t.Fatalf("неизвестная сортировка должна игнорироваться: %q", s.SortBy)
	}
}

func TestFromQuery_InStockLiteral(t *testing.T) {
	for _, raw := range []string{"1", "TRUE", "yes", "false", ""} {
		q := url.Values{}
		if raw != "" {
			q.Set("inStock", raw)
		}
		if FromQuery(q).InStockOnly {
			t.Fatalf("inStock=%q не должен включать фильтр", raw)
		}
	}
}

func TestFromQuery_Empty(t *testing.T) {
	s := FromQuery(url.Values{})
	if !reflect.DeepEqual(s, DefaultState()) {
		t.Fatalf("пустой запрос должен давать дефолтное состояние: %+v", s)
	}
}
