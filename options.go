package fstream

import "github.com/Kirov7/fstream/driver"

type OpenOptions struct {
	// Driver selects the handle implementation for path-based opens.
	Driver driver.HandleType
}

func DefaultOptions() OpenOptions {
	return OpenOptions{
		Driver: driver.StandardIO,
	}
}
