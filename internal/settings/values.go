package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownKey is returned for keys outside the recognized field set.
	ErrUnknownKey = errors.New("unknown settings key")

	// ErrNotNumeric is returned when a numeric field does not hold an integer.
	ErrNotNumeric = errors.New("value is not an integer")
)

// Values holds every configuration value as text, exactly as loaded or
// entered. Numeric fields are converted only on request through Int.
type Values struct {
	ArduinoDir   string `json:"arduinodir" yaml:"arduinodir"`
	CFlags       string `json:"cflags" yaml:"cflags"`
	LDFlags      string `json:"ldflags" yaml:"ldflags"`
	ObjcopyFlags string `json:"objcopyflags" yaml:"objcopyflags"`
	Programmer   string `json:"programmer" yaml:"programmer"`
	Port         string `json:"port" yaml:"port"`
	UploadSpeed  string `json:"uploadspeed" yaml:"uploadspeed"`
	NumTemps     string `json:"numtemps" yaml:"numtemps"`
	MinADC       string `json:"minadc" yaml:"minadc"`
	MaxADC       string `json:"maxadc" yaml:"maxadc"`
	T0           string `json:"t0" yaml:"t0"`
	R1           string `json:"r1" yaml:"r1"`
}

// Change is a single field whose text differs between two Values.
type Change struct {
	Key string
	Old string
	New string
}

// Defaults returns the built-in value of every field.
func Defaults() Values {
	var v Values
	for _, f := range fields {
		f.Set(&v, f.Default)
	}
	return v
}

// Get returns the text of the field named by key.
func (v Values) Get(key string) (string, bool) {
	f, ok := Lookup(key)
	if !ok {
		return "", false
	}
	return f.Get(&v), true
}

// Set assigns text to the field named by key.
func (v *Values) Set(key, text string) error {
	f, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	f.Set(v, text)
	return nil
}

// Int parses a field as a base-10 integer. Surrounding whitespace is allowed.
func (v Values) Int(key string) (int, error) {
	text, ok := v.Get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrNotNumeric, key, text)
	}
	return n, nil
}

// Diff lists the fields whose text differs from other, in display order.
func (v Values) Diff(other Values) []Change {
	var changes []Change
	for _, f := range fields {
		before, after := f.Get(&v), f.Get(&other)
		if before != after {
			changes = append(changes, Change{Key: f.Key, Old: before, New: after})
		}
	}
	return changes
}
