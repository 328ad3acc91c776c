package config

// builtinPresets cover the common ways a numeric field is used.
// They are read-only; Builtin hands out copies.
var builtinPresets = map[string]Preset{
	"percent": {
		Description: "Whole percentage from 0 to 100",
		Mode:        "decimal",
		Suffix:      "%",
		Min:         "0",
		Max:         "100",
		Increment:   "1",
	},
	"currency": {
		Description: "Euro amount with grouped thousands, stepped by one cent",
		Mode:        "decimal",
		Prefix:      "€",
		Grouping:    true,
		Min:         "0",
		Increment:   "0.01",
		Initial:     "0.00",
	},
	"rgb": {
		Description:    "24-bit RGB colour",
		Mode:           "color",
		ShowBasePrefix: true,
		Min:            "0",
		Max:            "16777215",
		Increment:      "1",
		Initial:        "16734003",
	},
	"flags8": {
		Description:    "8-bit flag register",
		Mode:           "binary",
		ShowBasePrefix: true,
		Min:            "0",
		Max:            "255",
		Increment:      "1",
		Initial:        "170",
	},
	"unix-perms": {
		Description:    "Unix file permission bits",
		Mode:           "octal",
		ShowBasePrefix: true,
		Min:            "0",
		Max:            "511",
		Increment:      "1",
		Initial:        "493",
	},
	"ipv4": {
		Description: "IPv4 address, stepped one octet at a time",
		Mode:        "ipv4",
		Min:         "0",
		Max:         "4294967295",
		Increment:   "1",
		Initial:     "3232235777",
	},
}

// Builtin returns a copy of the built-in preset called name, or nil.
func Builtin(name string) *Preset {
	p, ok := builtinPresets[name]
	if !ok {
		return nil
	}
	return &p
}

// IsBuiltin reports whether name is a built-in preset.
func IsBuiltin(name string) bool {
	_, ok := builtinPresets[name]
	return ok
}
