package schedule

import "time"

// окно графика — две недели
const WindowDays = 14

// Day нормализует дату к полуночи UTC: в графике есть только календарные дни.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek возвращает понедельник той недели, в которую попадает ref.
func StartOfWeek(ref time.Time) time.Time {
	d := Day(ref)
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0 ... Sunday = 6
	return d.AddDate(0, 0, -offset)
}

// ComputeWindow возвращает 14 подряд идущих дней,
// первый — понедельник недели ref. Границы месяцев не учитываются.
func ComputeWindow(ref time.Time) []time.Time {
	start := StartOfWeek(ref)
	days := make([]time.Time, WindowDays)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// PageForward сдвигает опорную дату на неделю вперёд.
// Соседние окна пересекаются на одну неделю — так и задумано.
func PageForward(ref time.Time) time.Time {
	return Day(ref).AddDate(0, 0, 7)
}

// PageBackward сдвигает опорную дату на неделю назад.
func PageBackward(ref time.Time) time.Time {
	return Day(ref).AddDate(0, 0, -7)
}
