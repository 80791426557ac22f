package types

import "errors"

// Config validation errors.
var (
	ErrPasswordEmpty   = errors.New("password must not be empty")
	ErrListenAddrEmpty = errors.New("listen address must not be empty")
	ErrDBPathEmpty     = errors.New("database path must not be empty")
)

// Config holds the runtime parameters for the pantry server.
type Config struct {
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`
	DBPath     string `json:"db_path" yaml:"db_path"`
	CSVPath    string `json:"csv_path" yaml:"csv_path"`
	Password   string `json:"password" yaml:"password"`
}

// Validate checks that the Config is well-formed for serving. It returns a
// sentinel error from this package on failure. The password is the shared
// secret gating mutating requests and must be set.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return ErrListenAddrEmpty
	}
	if c.DBPath == "" {
		return ErrDBPathEmpty
	}
	if c.Password == "" {
		return ErrPasswordEmpty
	}
	return nil
}
