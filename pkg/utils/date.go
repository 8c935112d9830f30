package utils

import "time"

const (
	DateLayout      = "2006-01-02"
	MonthLayout     = "2006-01"
	TimestampLayout = "2006-01-02 15:04:05"
	FileStampLayout = "20060102_150405"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
