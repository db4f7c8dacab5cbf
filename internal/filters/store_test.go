package filters

import (
	"net/url"
	"sync"
	"testing"
	"time"

	"bonsaigallery/internal/models"
)

// recorder собирает вызовы навигации для проверки дебаунса.
type recorder struct {
	mu    sync.Mutex
	calls []url.Values
}

func (r *recorder) nav(q url.Values) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, q)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *recorder) last(t *testing.T) url.Values {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		t.Fatal("навигация не вызывалась")
	}
	return r.calls[len(r.calls)-1]
}

const testDelay = 20 * time.Millisecond

func TestStore_DebounceCoalesces(t *testing.T) {
	rec := &recorder{}
	store := NewStoreWithDelay(rec.nav, testDelay)

	// Серия быстрых мутаций — одна запись по заднему фронту
	store.ToggleSize(models.TreeSizeMini)
	store.ToggleSize(models.TreeSizeSmall)
	store.SetSearch("pine")
	store.SetSortBy(models.SortPriceDesc)

	if rec.count() != 0 {
		t.Fatal("запись не должна происходить до истечения паузы")
	}

	time.Sleep(4 * testDelay)

	if got := rec.count(); got != 1 {
		t.Fatalf("серия мутаций должна схлопнуться в один вызов, получено %d", got)
	}

	q := rec.last(t)
	if q.Get("sizes") != "mini,small" || q.Get("search") != "pine" || q.Get("sortBy") != "price-desc" {
		t.Fatalf("записано не финальное состояние: %v", q)
	}
}

func TestStore_LastMutationWins(t *testing.T) {
	rec := &recorder{}
	store := NewStoreWithDelay(rec.nav, testDelay)

	store.SetSearch("first")
	time.Sleep(testDelay / 2)
	store.SetSearch("second")

	time.Sleep(4 * testDelay)

	if got := rec.count(); got != 1 {
		t.Fatalf("ожидался один вызов, получено %d", got)
	}
	if q := rec.last(t); q.Get("search") != "second" {
		t.Fatalf("должно записаться последнее значение: %v", q)
	}
}

func TestStore_ResetImmediateAndCancelsPending(t *testing.T) {
	rec := &recorder{}
	store := NewStoreWithDelay(rec.nav, testDelay)

	store.ToggleTreeType(models.TreeTypeMaple)
	store.Reset()

	// Сброс пишет пустой запрос сразу, не дожидаясь паузы
	if got := rec.count(); got != 1 {
		t.Fatalf("сброс должен дать немедленный вызов, получено %d", got)
	}
	if q := rec.last(t); len(q) != 0 {
		t.Fatalf("сброс должен чистить строку запроса: %v", q)
	}

	// Отложенная запись старого состояния снята
	time.Sleep(4 * testDelay)
	if got := rec.count(); got != 1 {
		t.Fatalf("отложенная запись должна быть отменена, вызовов %d", got)
	}

	if store.HasActiveFilters() {
		t.Fatal("после сброса активных фильтров быть не должно")
	}
}

func TestStore_InitFromQueryNoNavigation(t *testing.T) {
	rec := &recorder{}
	store := NewStoreWithDelay(rec.nav, testDelay)

	q := url.Values{}
	q.Set("treeTypes", "pine")
	q.Set("inStock", "true")
	store.InitFromQuery(q)

	time.Sleep(4 * testDelay)
	if rec.count() != 0 {
		t.Fatal("восстановление из запроса не должно трогать навигацию")
	}

	s := store.State()
	if len(s.TreeTypes) != 1 || s.TreeTypes[0] != models.TreeTypePine || !s.InStockOnly {
		t.Fatalf("состояние восстановлено неверно: %+v", s)
	}
}

func TestStore_StateIsSnapshot(t *testing.T) {
	rec := &recorder{}
	store := NewStoreWithDelay(rec.nav, testDelay)

	store.ToggleInStockOnly()
	snap := store.State()
	store.ToggleInStockOnly()

	if !snap.InStockOnly {
		t.Fatal("снимок не должен меняться после последующих мутаций")
	}
	time.Sleep(4 * testDelay)
}
