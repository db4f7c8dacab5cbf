package filters

import (
	"sort"
	"strings"

	"bonsaigallery/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Apply применяет фильтры к загруженному списку деревьев: чистая функция,
// без I/O. Фасеты соединяются по AND, поиск — подстрока без учёта регистра
// по имени, виду или описанию (OR по полям). Сортировка стабильная: ничьи
// остаются в исходном относительном порядке.
func Apply(trees []models.Tree, state State) []models.Tree {
	result := make([]models.Tree, 0, len(trees))

	searchLower := strings.ToLower(state.Search)

	for _, tree := range trees {
		if !matches(tree, state, searchLower) {
			continue
		}
		result = append(result, tree)
	}

	sortTrees(result, state.SortBy)

	return result
}

func matches(tree models.Tree, state State, searchLower string) bool {
	if len(state.Sizes) > 0 && !containsSize(state.Sizes, tree.Size) {
		return false
	}
	if len(state.CareLevels) > 0 && !containsCareLevel(state.CareLevels, tree.CareLevel) {
		return false
	}
	if len(state.TreeTypes) > 0 && !containsTreeType(state.TreeTypes, tree.TreeType) {
		return false
	}

	// Границы диапазона включительные
	if tree.Price < state.PriceRange[0] || tree.Price > state.PriceRange[1] {
		return false
	}

	if searchLower != "" {
		if !strings.Contains(strings.ToLower(tree.Name), searchLower) &&
			!strings.Contains(strings.ToLower(tree.Species), searchLower) &&
			!strings.Contains(strings.ToLower(tree.Description), searchLower) {
			return false
		}
	}

	if state.InStockOnly && !tree.InStock {
		return false
	}

	return true
}

func sortTrees(trees []models.Tree, sortBy models.SortOption) {
	switch sortBy {
	case models.SortPriceAsc:
		sort.SliceStable(trees, func(i, j int) bool {
			return trees[i].Price < trees[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(trees, func(i, j int) bool {
			return trees[i].Price > trees[j].Price
		})
	case models.SortName:
		cl := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(trees, func(i, j int) bool {
			return cl.CompareString(trees[i].Name, trees[j].Name) < 0
		})
	case models.SortOldest:
		sort.SliceStable(trees, func(i, j int) bool {
			return trees[i].CreatedAt.Before(trees[j].CreatedAt)
		})
	default:
		// newest — и он же дефолт для неизвестного значения
		sort.SliceStable(trees, func(i, j int) bool {
			return trees[i].CreatedAt.After(trees[j].CreatedAt)
		})
	}
}

func containsSize(list []models.TreeSize, v models.TreeSize) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsCareLevel(list []models.CareLevel, v models.CareLevel) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsTreeType(list []models.TreeType, v models.TreeType) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
