package schedule

import (
	"sort"

	"crew-planner/internal/models"
)

// служебные значения фильтра по городу
const (
	CityAll  = "all"  // все сотрудники
	CityNone = "none" // сотрудники без города
)

type CityOption struct {
	Value string // значение query-параметра
	Label string // подпись в интерфейсе
	Count int
}

// ListCities строит варианты фильтра: сначала "Все города",
// затем города по алфавиту, в конце "Без города" — только если
// есть хотя бы один сотрудник без города.
func ListCities(workers []models.Worker) []CityOption {
	counts := map[string]int{}
	withoutCity := 0
	for _, w := range workers {
		if w.City == "" {
			withoutCity++
			continue
		}
		counts[w.City]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	opts := []CityOption{
		{Value: CityAll, Label: "Все города", Count: len(workers)},
	}
	for _, name := range names {
		opts = append(opts, CityOption{Value: name, Label: name, Count: counts[name]})
	}
	if withoutCity > 0 {
		opts = append(opts, CityOption{Value: CityNone, Label: "Без города", Count: withoutCity})
	}
	return opts
}

// FilterWorkers оставляет только строки выбранного города.
// Фильтр влияет только на строки матрицы, не на выборку назначений.
func FilterWorkers(workers []models.Worker, selected string) []models.Worker {
	switch selected {
	case "", CityAll:
		return workers
	case CityNone:
		out := make([]models.Worker, 0, len(workers))
		for _, w := range workers {
			if w.City == "" {
				out = append(out, w)
			}
		}
		return out
	default:
		out := make([]models.Worker, 0, len(workers))
		for _, w := range workers {
			if w.City == selected {
				out = append(out, w)
			}
		}
		return out
	}
}
