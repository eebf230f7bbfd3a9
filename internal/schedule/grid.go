package schedule

import (
	"time"

	"crew-planner/internal/models"
)

// Cell — клетка матрицы: один сотрудник, один день.
type Cell struct {
	Day        time.Time
	Assignment *models.Assignment // nil — сотрудник свободен
}

func (c Cell) Occupied() bool {
	return c.Assignment != nil
}

type Row struct {
	Worker models.Worker
	Cells  []Cell
}

type Grid struct {
	Days []time.Time
	Rows []Row
}

// FindCoveringAssignment возвращает первое назначение сотрудника,
// покрывающее данный день, или nil. По бизнес-правилу у сотрудника
// не больше одного назначения на день; если пересечения всё же есть,
// берём первое совпадение.
func FindCoveringAssignment(workerID uint, day time.Time, assignments []models.Assignment) *models.Assignment {
	d := Day(day)
	for i := range assignments {
		if assignments[i].WorkerID == workerID && assignments[i].Covers(d) {
			return &assignments[i]
		}
	}
	return nil
}

// BuildGrid собирает матрицу сотрудники × дни текущего окна.
// Перебор по клеткам: при наших размерах (сотрудники × 14 дней)
// индексация не нужна.
func BuildGrid(workers []models.Worker, days []time.Time, assignments []models.Assignment) Grid {
	grid := Grid{
		Days: days,
		Rows: make([]Row, 0, len(workers)),
	}
	for _, w := range workers {
		row := Row{
			Worker: w,
			Cells:  make([]Cell, 0, len(days)),
		}
		for _, day := range days {
			row.Cells = append(row.Cells, Cell{
				Day:        day,
				Assignment: FindCoveringAssignment(w.ID, day, assignments),
			})
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}
