package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pinturas-api/internal/application/report"
	"github.com/jhoicas/pinturas-api/internal/domain/entity"
)

func amount(date, v string) entity.DatedAmount {
	return entity.DatedAmount{Date: day(date), Amount: dec(v)}
}

func TestWeeklySeries_CubetaTerminaEnDomingo(t *testing.T) {
	// Lunes a domingo de la misma semana caen en la misma cubeta
	series := report.WeeklySeries([]entity.DatedAmount{
		amount("2024-04-29", "100"), // lunes
		amount("2024-05-02", "50"),  // jueves
		amount("2024-05-05", "25"),  // domingo: pertenece a su propia semana
	})
	require.Len(t, series, 1)
	assert.Equal(t, time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), series[0].WeekEnding)
	assert.True(t, series[0].Total.Equal(dec("175")))
}

func TestWeeklySeries_LunesAbreSemanaNueva(t *testing.T) {
	series := report.WeeklySeries([]entity.DatedAmount{
		amount("2024-05-05", "10"), // domingo, semana 2024-05-05
		amount("2024-05-06", "20"), // lunes siguiente, semana 2024-05-12
	})
	require.Len(t, series, 2)
	assert.Equal(t, time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), series[0].WeekEnding)
	assert.Equal(t, time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), series[1].WeekEnding)
}

func TestWeeklySeries_HuecosAusentesYOrden(t *testing.T) {
	// Dos semanas con hueco entre medio; entrada en desorden
	series := report.WeeklySeries([]entity.DatedAmount{
		amount("2024-05-20", "30"), // semana 2024-05-26
		amount("2024-05-01", "10"), // semana 2024-05-05
	})
	require.Len(t, series, 2, "las semanas sin registros no se rellenan con cero")
	assert.True(t, series[0].WeekEnding.Before(series[1].WeekEnding), "orden ascendente")
	assert.True(t, series[0].Total.Equal(dec("10")))
	assert.True(t, series[1].Total.Equal(dec("30")))
}

func TestWeeklySeries_Vacia(t *testing.T) {
	assert.Empty(t, report.WeeklySeries(nil))
}
