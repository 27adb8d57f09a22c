package settings

import (
	"slices"
	"strconv"
)

// Field describes one configuration value. The order of Fields is the
// order of the editor rows and of the keys written on save.
type Field struct {
	get     func(*Values) string
	set     func(*Values, string)
	Key     string
	Label   string
	Help    string
	Default string
	Numeric bool
}

// Get returns the field's current text in v.
func (f Field) Get(v *Values) string {
	return f.get(v)
}

// Set assigns text to the field in v.
func (f Field) Set(v *Values, text string) {
	f.set(v, text)
}

var fields = []Field{
	{
		Key:     "arduinodir",
		Label:   "Arduino Directory",
		Help:    "Where to find the arduino tools (avr-gcc, avrdude, etc). Only used on Windows; elsewhere the tools are expected on PATH.",
		Default: "",
		get:     func(v *Values) string { return v.ArduinoDir },
		set:     func(v *Values, s string) { v.ArduinoDir = s },
	},
	{
		Key:   "cflags",
		Label: "C Compiler Flags",
		Help: "Flags passed to avr-gcc. %F_CPU% is replaced by the CPU clock rate, %CPU% by the CPU and " +
			"%ALNAME% by the source file name with .c replaced by .al.",
		Default: "",
		get:     func(v *Values) string { return v.CFlags },
		set:     func(v *Values, s string) { v.CFlags = s },
	},
	{
		Key:     "ldflags",
		Label:   "LD Flags",
		Help:    "Flags passed to avr-gcc to be passed on to the linker.",
		Default: "",
		get:     func(v *Values) string { return v.LDFlags },
		set:     func(v *Values, s string) { v.LDFlags = s },
	},
	{
		Key:     "objcopyflags",
		Label:   "Object Copy Flags",
		Help:    "Flags passed to avr-objcopy.",
		Default: "",
		get:     func(v *Values) string { return v.ObjcopyFlags },
		set:     func(v *Values, s string) { v.ObjcopyFlags = s },
	},
	{
		Key:     "programmer",
		Label:   "AVR Programmer",
		Help:    "The programmer type passed to avrdude.",
		Default: "wiring",
		get:     func(v *Values) string { return v.Programmer },
		set:     func(v *Values, s string) { v.Programmer = s },
	},
	{
		Key:     "port",
		Label:   "Port",
		Help:    "The port the firmware is uploaded through, passed to avrdude.",
		Default: "/dev/ttyACM0",
		get:     func(v *Values) string { return v.Port },
		set:     func(v *Values, s string) { v.Port = s },
	},
	{
		Key:     "uploadspeed",
		Label:   "Upload Speed",
		Help:    "The baud rate used to talk to the bootloader.",
		Default: strconv.Itoa(38400),
		Numeric: true,
		get:     func(v *Values) string { return v.UploadSpeed },
		set:     func(v *Values, s string) { v.UploadSpeed = s },
	},
	{
		Key:   "numtemps",
		Label: "Number of Temps",
		Help: "Number of entries generated for thermistor tables. More entries slightly improve accuracy " +
			"but cost binary size. Default is 25.",
		Default: strconv.Itoa(25),
		Numeric: true,
		get:     func(v *Values) string { return v.NumTemps },
		set:     func(v *Values, s string) { v.NumTemps = s },
	},
	{
		Key:     "minadc",
		Label:   "Minimum ADC value",
		Help:    "The minimum ADC value returned by the thermistor. Typically 0.",
		Default: strconv.Itoa(1),
		Numeric: true,
		get:     func(v *Values) string { return v.MinADC },
		set:     func(v *Values, s string) { v.MinADC = s },
	},
	{
		Key:     "maxadc",
		Label:   "Maximum ADC value",
		Help:    "The maximum ADC value returned by the thermistor. Typically 1023 (10-bit ADC).",
		Default: strconv.Itoa(1023),
		Numeric: true,
		get:     func(v *Values) string { return v.MaxADC },
		set:     func(v *Values, s string) { v.MaxADC = s },
	},
	{
		Key:     "t0",
		Label:   "T0",
		Help:    "The T0 value used for thermistor table calculation. Typically 25.",
		Default: strconv.Itoa(25),
		Numeric: true,
		get:     func(v *Values) string { return v.T0 },
		set:     func(v *Values, s string) { v.T0 = s },
	},
	{
		Key:     "r1",
		Label:   "R1",
		Help:    "The R1 value used for thermistor table calculation. Typically 0.",
		Default: strconv.Itoa(0),
		Numeric: true,
		get:     func(v *Values) string { return v.R1 },
		set:     func(v *Values, s string) { v.R1 = s },
	},
}

// fieldIndex maps an INI key to its position in fields.
var fieldIndex = func() map[string]int {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Key] = i
	}
	return index
}()

// Fields returns the field descriptors in display order.
func Fields() []Field {
	return slices.Clone(fields)
}

// Lookup returns the descriptor for an INI key. Keys are case-sensitive.
func Lookup(key string) (Field, bool) {
	i, ok := fieldIndex[key]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}

// Keys returns the recognized INI keys in display order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}
