package booking

import (
	"time"

	"github.com/BruksfildServices01/tutor-scheduler/internal/httperr"
	"github.com/google/uuid"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func NewSeriesID() string {
	return uuid.NewString()
}

// SeriesDates gera as datas semanais da série: startDate + 7*i dias.
// A aritmética é feita ao meio-dia UTC para não derrapar em horário de verão.
func SeriesDates(startDate string, weeks int) ([]string, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	ref := time.Date(start.Year(), start.Month(), start.Day(), 12, 0, 0, 0, time.UTC)

	dates := make([]string, 0, weeks)
	for i := 0; i < weeks; i++ {
		dates = append(dates, ref.AddDate(0, 0, 7*i).Format(DateLayout))
	}
	return dates, nil
}

// LessonStart combina dia + hora local da aula num instante de referência
func LessonStart(date, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+hhmm, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	return t, nil
}
