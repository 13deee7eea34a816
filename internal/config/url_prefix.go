package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	errPrefixScheme = errors.New("scheme must be http or https")
	errPrefixHost   = errors.New("host is required")
	errPrefixSuffix = errors.New("query and fragment are not allowed")
)

// URLPrefix базовый адрес, к которому добавляется короткий код. Хранится без завершающего слеша.
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", value, err)
	}

	switch {
	case parsed.Scheme != "http" && parsed.Scheme != "https":
		err = errPrefixScheme
	case parsed.Host == "":
		err = errPrefixHost
	case parsed.RawQuery != "" || parsed.Fragment != "" || parsed.ForceQuery:
		err = errPrefixSuffix
	}
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", value, err)
	}

	*p = URLPrefix(strings.TrimRight(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
