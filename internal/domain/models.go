package domain

import "time"

// TimeLayout is the display format for reading timestamps. Readings are
// stored as timestamptz; API responses always format explicitly.
const TimeLayout = "2006-01-02 15:04:05"

// MonthLayout is the calendar-month label format (MM-YYYY).
const MonthLayout = "01-2006"

// Reading is the canonical record every inbound payload variant is
// normalized into before storage.
type Reading struct {
	ID          int64     `db:"id" json:"id"`
	Temperature float64   `db:"suhu" json:"suhu"`
	Humidity    float64   `db:"humidity" json:"humidity"`
	Lux         float64   `db:"lux" json:"lux"`
	CapturedAt  time.Time `db:"captured_at" json:"-"`
}

// RelayCommand is an outbound relay state change. Only ON and OFF exist;
// commands are fire-and-forget and never persisted.
type RelayCommand string

const (
	RelayOn  RelayCommand = "ON"
	RelayOff RelayCommand = "OFF"
)

// TopReading is one entry of the extreme ranking in the summary view.
// Field names follow the dashboard wire format.
type TopReading struct {
	ID          int64   `json:"idx"`
	Temperature float64 `json:"suhun"`
	Humidity    float64 `json:"humid"`
	Lux         float64 `json:"kecerahan"`
	Timestamp   string  `json:"timestamp"`
}

// MonthBucket labels one calendar month of activity.
type MonthBucket struct {
	MonthYear string `json:"month_year"`
}

// Summary is the /api/summary response body. Scalar fields are nil when
// no readings exist.
type Summary struct {
	TempMax      *float64      `json:"suhumax"`
	TempMin      *float64      `json:"suhumin"`
	TempMean     *float64      `json:"suhurata"`
	HumidMax     *float64      `json:"humidmax"`
	HumidMin     *float64      `json:"humidmin"`
	HumidMean    *float64      `json:"humidrata"`
	TopReadings  []TopReading  `json:"nilai_suhu_max_humid_max"`
	RecentMonths []MonthBucket `json:"month_year_max"`
}
