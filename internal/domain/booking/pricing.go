package booking

import "github.com/BruksfildServices01/tutor-scheduler/internal/httperr"

// ===============================
// Series Pricing
// ===============================

type SeriesPricing struct {
	RegularPrice    float64 `json:"regular_price"`
	DiscountPercent int     `json:"discount_percent"`
	DiscountedTotal float64 `json:"discounted_total"`
	PerLessonPrice  float64 `json:"per_lesson_price"`
}

// Pacotes vendidos: 1, 2, 4 ou 8 semanas. Qualquer outro valor é erro,
// nunca arredondado.
var allowedWeeks = map[int]bool{1: true, 2: true, 4: true, 8: true}

func discountPercentFor(weeks int) int {
	switch {
	case weeks >= 8:
		return 15
	case weeks >= 4:
		return 10
	default:
		return 5
	}
}

func PriceSeries(hourlyRate float64, weeks int) (SeriesPricing, error) {
	if !allowedWeeks[weeks] {
		return SeriesPricing{}, httperr.ErrBusiness("invalid_weeks")
	}

	percent := discountPercentFor(weeks)
	regular := hourlyRate * float64(weeks)
	total := regular * (1 - float64(percent)/100)

	return SeriesPricing{
		RegularPrice:    regular,
		DiscountPercent: percent,
		DiscountedTotal: total,
		PerLessonPrice:  total / float64(weeks),
	}, nil
}
