package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Component field helpers for common component names
func Component(name string) Field {
	return String("component", name)
}

func Dataset(name string) Field {
	return String("dataset", name)
}

func CostCenter(name string) Field {
	return String("cost_center", name)
}

func Service(name string) Field {
	return String("service", name)
}

func Driver(name string) Field {
	return String("driver", name)
}

func RunID(id string) Field {
	return String("run_id", id)
}

func Rows(n int) Field {
	return Int("rows", n)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
