package config

import "time"

const (
	NumFloors      = 8
	TravelDuration = 250 * time.Millisecond // per floor
	ArrivalPause   = 300 * time.Millisecond // between stops when auto-processing
	LogLevel       = "info"

	MaxFloors = 10 // floors are entered as single digits
)

type Config struct {
	NumFloors      int
	TravelDuration time.Duration
	ArrivalPause   time.Duration
	LogLevel       string
	LogFile        string // empty logs to stdout only
}

func Default() Config {
	return Config{
		NumFloors:      NumFloors,
		TravelDuration: TravelDuration,
		ArrivalPause:   ArrivalPause,
		LogLevel:       LogLevel,
	}
}
