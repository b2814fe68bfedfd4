package utils

import "time"

const dateLayout = "2006-01-02"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DatePassed indica se o dia informado já terminou em relação a now.
// O dia de vencimento ainda não conta como passado.
func DatePassed(date, now time.Time) bool {
	if date.IsZero() {
		return false
	}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	y, m, d = date.Date()
	due := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return today.After(due)
}

// FormatDate formata uma data no layout usado pelos formulários
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
