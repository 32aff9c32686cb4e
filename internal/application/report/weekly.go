package report

import (
	"sort"
	"time"

	"github.com/jhoicas/pinturas-api/internal/domain/entity"
)

// WeeklySeries agrupa los puntos (fecha, monto) en semanas calendario que
// terminan en domingo y suma cada cubeta. Las semanas sin registros no
// aparecen (no se rellenan con cero). Resultado ascendente por semana.
func WeeklySeries(points []entity.DatedAmount) []entity.WeekPoint {
	buckets := make(map[time.Time]*entity.WeekPoint)
	for _, p := range points {
		we := weekEnding(p.Date)
		b, ok := buckets[we]
		if !ok {
			b = &entity.WeekPoint{WeekEnding: we}
			buckets[we] = b
		}
		b.Total = b.Total.Add(p.Amount)
	}
	out := make([]entity.WeekPoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekEnding.Before(out[j].WeekEnding) })
	return out
}

// weekEnding devuelve el domingo que cierra la semana de d, a medianoche UTC.
// Un domingo pertenece a su propia semana (etiqueta en el borde derecho).
func weekEnding(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	offset := (7 - int(day.Weekday())) % 7
	return day.AddDate(0, 0, offset)
}
