package domain

import "time"

// DateRange é o intervalo de datas (inclusivo) já normalizado
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (d DateRange) StartDate() string {
	return d.Start.Format(time.DateOnly)
}

func (d DateRange) EndDate() string {
	return d.End.Format(time.DateOnly)
}

// Days retorna a quantidade de dias do intervalo, incluindo as duas pontas
func (d DateRange) Days() int {
	return int(d.End.Sub(d.Start).Hours()/24) + 1
}

func (d DateRange) String() string {
	return d.StartDate() + " to " + d.EndDate()
}
