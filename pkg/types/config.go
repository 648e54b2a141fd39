package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds backend selection and parameters for opening a Store.
type Config struct {
	Backend   string `json:"backend" yaml:"backend" mapstructure:"backend" validate:"required,oneof=text jsonl sqlite"`
	DataDir   string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	BoardFile string `json:"board_file" yaml:"board_file" mapstructure:"board_file" validate:"omitempty,excludesall=/"`
}

// Supported backend names.
const (
	BackendText   = "text"
	BackendJSONL  = "jsonl"
	BackendSQLite = "sqlite"
)

// DefaultBoardFile is the text backend's file name when Config.BoardFile is empty.
const DefaultBoardFile = "board.txt"

// Config validation errors.
var (
	ErrBackendEmpty     = errors.New("backend must not be empty")
	ErrBackendUnknown   = errors.New("unknown backend")
	ErrBoardFileInvalid = errors.New("board file must be a plain file name")
)

var validate = validator.New()

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := verrs[0]
	switch {
	case fe.Field() == "Backend" && fe.Tag() == "required":
		return ErrBackendEmpty
	case fe.Field() == "Backend":
		return fmt.Errorf("%w: %q", ErrBackendUnknown, c.Backend)
	case fe.Field() == "BoardFile":
		return fmt.Errorf("%w: %q", ErrBoardFileInvalid, c.BoardFile)
	default:
		return err
	}
}

// BoardFileName returns BoardFile, or DefaultBoardFile when it is unset.
func (c Config) BoardFileName() string {
	if c.BoardFile == "" {
		return DefaultBoardFile
	}
	return c.BoardFile
}
