package training

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownWorkoutCode is returned for a type code outside the catalog.
	ErrUnknownWorkoutCode = errors.New("неизвестный тип тренировки")
	// ErrArgumentCount is returned when the number of readings does not match the type.
	ErrArgumentCount = errors.New("неверное количество показаний")
	// ErrInvalidValue is returned when a reading is out of range.
	ErrInvalidValue = errors.New("недопустимое значение показания")
)

// Kind describes a supported workout type code.
type Kind struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

type kind struct {
	Kind
	build func(v []float64) (Training, error)
}

var kinds = []kind{
	{
		Kind: Kind{Code: "SWM", Name: "Swimming", Fields: []string{"action", "duration", "weight", "length_pool", "count_pool"}},
		build: func(v []float64) (Training, error) {
			b, err := newBase(v)
			if err != nil {
				return nil, err
			}
			if !(v[3] >= 0) {
				return nil, fmt.Errorf("%w: length_pool = %v", ErrInvalidValue, v[3])
			}
			laps, err := count("count_pool", v[4])
			if err != nil {
				return nil, err
			}
			return Swimming{Base: b, LengthPool: v[3], CountPool: laps}, nil
		},
	},
	{
		Kind: Kind{Code: "RUN", Name: "Running", Fields: []string{"action", "duration", "weight"}},
		build: func(v []float64) (Training, error) {
			b, err := newBase(v)
			if err != nil {
				return nil, err
			}
			return Running{Base: b}, nil
		},
	},
	{
		Kind: Kind{Code: "WLK", Name: "SportsWalking", Fields: []string{"action", "duration", "weight", "height"}},
		build: func(v []float64) (Training, error) {
			b, err := newBase(v)
			if err != nil {
				return nil, err
			}
			if !(v[3] > 0) {
				return nil, fmt.Errorf("%w: height = %v", ErrInvalidValue, v[3])
			}
			return SportsWalking{Base: b, Height: v[3]}, nil
		},
	},
}

// Catalog lists the supported workout types.
func Catalog() []Kind {
	out := make([]Kind, len(kinds))
	for i, k := range kinds {
		out[i] = k.Kind
	}
	return out
}

// ReadPackage builds the workout for a sensor package.
func ReadPackage(code string, values []float64) (Training, error) {
	for _, k := range kinds {
		if k.Code != code {
			continue
		}
		if len(values) != len(k.Fields) {
			return nil, fmt.Errorf("%w: %s ожидает %d, получено %d", ErrArgumentCount, code, len(k.Fields), len(values))
		}
		for i, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %s = %v", ErrInvalidValue, k.Fields[i], v)
			}
		}
		return k.build(values)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutCode, code)
}

func newBase(v []float64) (Base, error) {
	action, err := count("action", v[0])
	if err != nil {
		return Base{}, err
	}
	// The negated comparison also rejects NaN.
	if !(v[1] > 0) {
		return Base{}, fmt.Errorf("%w: duration = %v", ErrInvalidValue, v[1])
	}
	if !(v[2] >= 0) {
		return Base{}, fmt.Errorf("%w: weight = %v", ErrInvalidValue, v[2])
	}
	return Base{Action: action, Duration: v[1], Weight: v[2]}, nil
}

// count converts a reading that must be a non-negative whole number.
func count(field string, f float64) (int, error) {
	if f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s = %v", ErrInvalidValue, field, f)
	}
	return int(f), nil
}
