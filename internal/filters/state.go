package filters

import (
	"net/url"
	"strings"

	"bonsaigallery/internal/models"
)

// Границы ценового диапазона по умолчанию. Диапазон цены намеренно не
// сериализуется в строку запроса ни в одну сторону — так ведёт себя галерея:
// выставленный программно диапазон теряется при перезагрузке страницы.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 10000
)

// State — каноническое представление активных фильтров галереи.
// Чистое значение: идентичности за пределами полей нет, целиком заменяемо.
type State struct {
	Sizes       []models.TreeSize
	CareLevels  []models.CareLevel
	TreeTypes   []models.TreeType
	PriceRange  [2]float64
	Search      string
	SortBy      models.SortOption
	InStockOnly bool
}

func DefaultState() State {
	return State{
		Sizes:       []models.TreeSize{},
		CareLevels:  []models.CareLevel{},
		TreeTypes:   []models.TreeType{},
		PriceRange:  [2]float64{DefaultPriceMin, DefaultPriceMax},
		Search:      "",
		SortBy:      models.SortNewest,
		InStockOnly: false,
	}
}

// HasActiveFilters — вариант «для панели фильтров»: суженный ценовой диапазон
// активным НЕ считается. Второй вариант ниже считает — оба воспроизводятся
// отдельно, по своим местам вызова, унификация не подтверждена продуктом.
func (s State) HasActiveFilters() bool {
	return len(s.Sizes) > 0 ||
		len(s.CareLevels) > 0 ||
		len(s.TreeTypes) > 0 ||
		s.Search != "" ||
		s.InStockOnly
}

// HasActiveFiltersStrict — вариант «для витрины»: учитывает и цену.
func (s State) HasActiveFiltersStrict() bool {
	return s.HasActiveFilters() ||
		s.PriceRange[0] > DefaultPriceMin ||
		s.PriceRange[1] < DefaultPriceMax
}

// ToggleSize — симметричный toggle: добавить, если нет; убрать, если есть.
// Порядок остальных элементов не трогаем.
func (s *State) ToggleSize(size models.TreeSize) {
	for i, v := range s.Sizes {
		if v == size {
			s.Sizes = append(s.Sizes[:i], s.Sizes[i+1:]...)
			return
		}
	}
	s.Sizes = append(s.Sizes, size)
}

func (s *State) ToggleCareLevel(level models.CareLevel) {
	for i, v := range s.CareLevels {
		if v == level {
			s.CareLevels = append(s.CareLevels[:i], s.CareLevels[i+1:]...)
			return
		}
	}
	s.CareLevels = append(s.CareLevels, level)
}

func (s *State) ToggleTreeType(treeType models.TreeType) {
	for i, v := range s.TreeTypes {
		if v == treeType {
			s.TreeTypes = append(s.TreeTypes[:i], s.TreeTypes[i+1:]...)
			return
		}
	}
	s.TreeTypes = append(s.TreeTypes, treeType)
}

// ToQuery кодирует состояние в параметры адресной строки. Значения по
// умолчанию опускаются; списки склеиваются запятой; цена не пишется никогда.
func (s State) ToQuery() url.Values {
	query := url.Values{}

	if len(s.Sizes) > 0 {
		parts := make([]string, len(s.Sizes))
		for i, v := range s.Sizes {
			parts[i] = string(v)
		}
		query.Set("sizes", strings.Join(parts, ","))
	}
	if len(s.CareLevels) > 0 {
		parts := make([]string, len(s.CareLevels))
		for i, v := range s.CareLevels {
			parts[i] = string(v)
		}
		query.Set("careLevels", strings.Join(parts, ","))
	}
	if len(s.TreeTypes) > 0 {
		parts := make([]string, len(s.TreeTypes))
		for i, v := range s.TreeTypes {
			parts[i] = string(v)
		}
		query.Set("treeTypes", strings.Join(parts, ","))
	}
	if s.Search != "" {
		query.Set("search", s.Search)
	}
	if s.SortBy != models.SortNewest {
		query.Set("sortBy", string(s.SortBy))
	}
	if s.InStockOnly {
		query.Set("inStock", "true")
	}

	return query
}

// FromQuery восстанавливает состояние из строки запроса при загрузке
// страницы. Отсутствующий параметр оставляет значение по умолчанию;
// неизвестный sortBy игнорируется; inStock активен только на литерале
// "true". Полного round-trip нет: цена из запроса не читается.
func FromQuery(query url.Values) State {
	s := DefaultState()

	if raw := query.Get("sizes"); raw != "" {
		for _, v := range strings.Split(raw, ",") {
			s.Sizes = append(s.Sizes, models.TreeSize(v))
		}
	}
	if raw := query.Get("careLevels"); raw != "" {
		for _, v := range strings.Split(raw, ",") {
			s.CareLevels = append(s.CareLevels, models.CareLevel(v))
		}
	}
	if raw := query.Get("treeTypes"); raw != "" {
		for _, v := range strings.Split(raw, ",") {
			s.TreeTypes = append(s.TreeTypes, models.TreeType(v))
		}
	}
	if raw := query.Get("search"); raw != "" {
		s.Search = raw
	}
	if raw := query.Get("sortBy"); models.IsSortOption(raw) {
		s.SortBy = models.SortOption(raw)
	}
	if query.Get("inStock") == "true" {
		s.InStockOnly = true
	}

	return s
}
