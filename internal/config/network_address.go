package config

import (
	"fmt"
	"net"
	"strconv"
)

// NetworkAddress адрес, на котором слушает HTTP сервер. Пустой Host означает все интерфейсы.
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set разбирает значение флага -a вида host:port, IPv6 хост записывается в квадратных скобках
func (a *NetworkAddress) Set(value string) error {
	host, rawPort, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("invalid server address %q: %w", value, err)
	}

	port, err := strconv.ParseUint(rawPort, 10, 16)
	if err != nil {
		return fmt.Errorf("invalid server port %q: %w", rawPort, err)
	}

	*a = NetworkAddress{Host: host, Port: int(port)}

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}

func (a NetworkAddress) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
