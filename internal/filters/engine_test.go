package filters

import (
	"testing"
	"time"

	"bonsaigallery/internal/models"
)

func sampleTrees() []models.Tree {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Tree{
		{
			ID: "t1", Name: "Juniper Cascade", Species: "Juniperus procumbens",
			TreeType: models.TreeTypeJuniper, Size: models.TreeSizeSmall,
			CareLevel: models.CareLevelBeginner, Price: 100,
			InStock: true, CreatedAt: base,
		},
		{
			ID: "t2", Name: "Trident Maple", Species: "Acer buergerianum",
			TreeType: models.TreeTypeMaple, Size: models.TreeSizeMedium,
			CareLevel: models.CareLevelIntermediate, Price: 50,
			InStock: true, CreatedAt: base.AddDate(0, 1, 0),
		},
		{
			ID: "t3", Name: "Black Pine", Species: "Pinus thunbergii",
			TreeType: models.TreeTypePine, Size: models.TreeSizeLarge,
			CareLevel: models.CareLevelExpert, Price: 450,
			Description: "Классическая японская сосна",
			InStock:     false, CreatedAt: base.AddDate(0, 2, 0),
		},
	}
}

func ids(trees []models.Tree) []string {
	out := make([]string, len(trees))
	for i, t := range trees {
		out[i] = t.ID
	}
	return out
}

func assertOrder(t *testing.T, got []models.Tree, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("ожидалось %v, получено %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("ожидалось %v, получено %v", want, gotIDs)
		}
	}
}

func TestApply_DefaultStateSortsNewestFirst(t *testing.T) {
	got := Apply(sampleTrees(), DefaultState())
	assertOrder(t, got, "t3", "t2", "t1")
}

func TestApply_PriceAscending(t *testing.T) {
	s := DefaultState()
	s.SortBy = models.SortPriceAsc
	got := Apply(sampleTrees(), s)
	assertOrder(t, got, "t2", "t1", "t3")
}

func TestApply_NameSort(t *testing.T) {
	s := DefaultState()
	s.SortBy = models.SortName
	got := Apply(sampleTrees(), s)
	assertOrder(t, got, "t3", "t1", "t2")
}

// Фасеты соединяются по AND: дерево должно пройти каждый выбранный фасет.
func TestApply_FacetsConjunctive(t *testing.T) {
	s := DefaultState()
	s.ToggleTreeType(models.TreeTypeJuniper)
	s.ToggleTreeType(models.TreeTypeMaple)
	got := Apply(sampleTrees(), s)
	assertOrder(t, got, "t2", "t1")

	s.ToggleCareLevel(models.CareLevelBeginner)
	got = Apply(sampleTrees(), s)
	assertOrder(t, got, "t1")
}

func TestApply_PriceBoundsInclusive(t *testing.T) {
	s := DefaultState()
	s.PriceRange = [2]float64{50, 100}
	got := Apply(sampleTrees(), s)
	assertOrder(t, got, "t2", "t1")
}

// Поиск — подстрока без учёта регистра по имени, виду или описанию.
func TestApply_SearchAcrossFields(t *testing.T) {
	s := DefaultState()

	s.Search = "JUNIP"
	assertOrder(t, Apply(sampleTrees(), s), "t1") // имя и вид

	s.Search = "buergerianum"
	assertOrder(t, Apply(sampleTrees(), s), "t2") // только вид

	s.Search = "японская"
	assertOrder(t, Apply(sampleTrees(), s), "t3") // только описание

	s.Search = "орхидея"
	if got := Apply(sampleTrees(), s); len(got) != 0 {
		t.Fatalf("по несуществующему запросу ничего не должно найтись: %v", ids(got))
	}
}

func TestApply_InStockOnly(t *testing.T) {
	s := DefaultState()
	s.InStockOnly = true
	got := Apply(sampleTrees(), s)
	assertOrder(t, got, "t2", "t1")
}

// Сортировка стабильна: при равном ключе исходный порядок сохраняется.
func TestApply_StableSort(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	trees := []models.Tree{
		{ID: "a", Name: "A", Price: 100, CreatedAt: base},
		{ID: "b", Name: "B", Price: 100, CreatedAt: base},
		{ID: "c", Name: "C", Price: 100, CreatedAt: base},
	}

	s := DefaultState()
	s.SortBy = models.SortPriceAsc
	assertOrder(t, Apply(trees, s), "a", "b", "c")
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	trees := sampleTrees()
	s := DefaultState()
	s.SortBy = models.SortPriceAsc
	_ = Apply(trees, s)

	if trees[0].ID != "t1" || trees[1].ID != "t2" || trees[2].ID != "t3" {
		t.Fatalf("входной срез не должен меняться: %v", ids(trees))
	}
}
