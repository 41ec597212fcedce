package leaderboard

import (
	_ "embed"
	"strings"

	"github.com/titanous/json5"
)

//go:embed countries.json5
var countriesAsset []byte

// Countries resolves two-letter country codes to display names.
type Countries struct {
	names map[string]string
	codes map[string]string
}

// LoadCountries decodes a json5 object of code -> display name.
func LoadCountries(asset []byte) (Countries, error) {
	var names map[string]string
	err := json5.Unmarshal(asset, &names)
	if err != nil {
		return Countries{}, err
	}

	c := Countries{
		names: make(map[string]string, len(names)),
		codes: make(map[string]string, len(names)),
	}
	for code, name := range names {
		code = strings.ToUpper(strings.TrimSpace(code))
		c.names[code] = name
		c.codes[strings.ToLower(name)] = code
	}
	return c, nil
}

var defaultCountries Countries

func init() {
	var err error
	defaultCountries, err = LoadCountries(countriesAsset)
	if err != nil {
		panic(err)
	}
}

// DefaultCountries returns the table embedded in the binary.
func DefaultCountries() Countries {
	return defaultCountries
}

// Name returns the display name for code, or code itself when unknown.
func (c Countries) Name(code string) string {
	name, ok := c.names[strings.ToUpper(code)]
	if !ok {
		return code
	}
	return name
}

// Code is the reverse of Name, it matches display names case-insensitively.
func (c Countries) Code(name string) (string, bool) {
	code, ok := c.codes[strings.ToLower(name)]
	return code, ok
}

func (c Countries) Len() int {
	return len(c.names)
}
