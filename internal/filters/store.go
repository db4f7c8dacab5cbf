package filters

import (
	"net/url"
	"sync"
	"time"

	"bonsaigallery/internal/models"
)

// SyncDelay — пауза перед записью фильтров в адресную строку.
const SyncDelay = 300 * time.Millisecond

// Navigator принимает новую строку запроса при навигации.
type Navigator func(query url.Values)

// Store держит состояние фильтров сессии и синхронизирует его с адресной
// строкой. Каждый мутатор перезапускает дебаунс; к моменту срабатывания
// записывается именно текущее состояние, так что последняя мутация
// выигрывает.
type Store struct {
	mu    sync.Mutex
	state State
	nav   Navigator
	sync  *Debouncer
}

func NewStore(nav Navigator) *Store {
	return NewStoreWithDelay(nav, SyncDelay)
}

func NewStoreWithDelay(nav Navigator, delay time.Duration) *Store {
	s := &Store{
		state: DefaultState(),
		nav:   nav,
	}
	s.sync = NewDebouncer(delay, s.pushQuery)
	return s
}

// State возвращает снимок текущего состояния.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// InitFromQuery восстанавливает состояние при загрузке страницы.
// Навигацию не трогает: адресная строка и так источник этих значений.
func (s *Store) InitFromQuery(query url.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = FromQuery(query)
}

func (s *Store) ToggleSize(size models.TreeSize) {
	s.mu.Lock()
	s.state.ToggleSize(size)
	s.mu.Unlock()
	s.sync.Trigger()
}

func (s *Store) ToggleCareLevel(level models.CareLevel) {
	s.mu.Lock()
	s.state.ToggleCareLevel(level)
	s.mu.Unlock()
	s.sync.Trigger()
}

func (s *Store) ToggleTreeType(treeType models.TreeType) {
	s.mu.Lock()
	s.state.ToggleTreeType(treeType)
	s.mu.Unlock()
	s.sync.Trigger()
}

func (s *Store) SetSearch(search string) {
	s.mu.Lock()
	s.state.Search = search
	s.mu.Unlock()
	s.sync.Trigger()
}

func (s *Store) SetSortBy(sortBy models.SortOption) {
	s.mu.Lock()
	s.state.SortBy = sortBy
	s.mu.Unlock()
	s.sync.Trigger()
}

func (s *Store) ToggleInStockOnly() {
	s.mu.Lock()
	s.state.InStockOnly = !s.state.InStockOnly
	s.mu.Unlock()
	s.sync.Trigger()
}

// Reset возвращает состояние к дефолту и сразу, без дебаунса, чистит строку
// запроса; отложенная запись старого состояния снимается.
func (s *Store) Reset() {
	s.sync.Cancel()

	s.mu.Lock()
	s.state = DefaultState()
	s.mu.Unlock()

	if s.nav != nil {
		s.nav(url.Values{})
	}
}

func (s *Store) HasActiveFilters() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HasActiveFilters()
}

func (s *Store) pushQuery() {
	s.mu.Lock()
	query := s.state.ToQuery()
	s.mu.Unlock()

	if s.nav != nil {
		s.nav(query)
	}
}
