package domain

import (
	"time"

	"github.com/fd1az/project-tracker/internal/apperror"
)

// Timeframe is the reporting window a metric change is summarized over.
type Timeframe string

const (
	Timeframe24h Timeframe = "24h"
	Timeframe7d  Timeframe = "7d"
	Timeframe30d Timeframe = "30d"
)

// DefaultTimeframe is selected when the drawer is first shown.
const DefaultTimeframe = Timeframe7d

// Timeframes lists the selectable windows in display order.
func Timeframes() []Timeframe {
	return []Timeframe{Timeframe24h, Timeframe7d, Timeframe30d}
}

// ParseTimeframe validates a raw timeframe value.
func ParseTimeframe(s string) (Timeframe, error) {
	for _, tf := range Timeframes() {
		if string(tf) == s {
			return tf, nil
		}
	}
	return "", apperror.Validation(apperror.CodeInvalidTimeframe, s)
}

// Label is the text shown for the option.
func (tf Timeframe) Label() string {
	return string(tf)
}

// Duration returns the window length, or zero for an unknown timeframe.
func (tf Timeframe) Duration() time.Duration {
	switch tf {
	case Timeframe24h:
		return 24 * time.Hour
	case Timeframe7d:
		return 7 * 24 * time.Hour
	case Timeframe30d:
		return 30 * 24 * time.Hour
	}
	return 0
}

// Next returns the following option, wrapping around.
func (tf Timeframe) Next() Timeframe {
	return tf.shift(1)
}

// Prev returns the preceding option, wrapping around.
func (tf Timeframe) Prev() Timeframe {
	return tf.shift(-1)
}

func (tf Timeframe) shift(delta int) Timeframe {
	all := Timeframes()
	for i, t := range all {
		if t == tf {
			return all[(i+delta+len(all))%len(all)]
		}
	}
	return DefaultTimeframe
}
