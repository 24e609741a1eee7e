package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/magiconair/properties"
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-pcqueue/pkg/common/apperr"
)

const (
	loggerPrefix   = "logger."
	documentPrefix = "document."
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no key is set.
func Default() Config {
	cfg, err := decode(properties.NewProperties())
	if err != nil {
		// defaults are compile-time constants
		panic(err)
	}
	return cfg
}

// Load reads a "key = value" config file. Office keys sit at the top level
// (nClerk, nDoc, tClerk, nScanner, tScanner, sQueue); logger and document id
// keys use the "logger." and "document." prefixes.
func Load(path string) (Config, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return Config{}, apperr.MapError("settings", errors.Wrapf(err, "read %s", path),
			apperr.CodeInvalidConfig, apperr.MsgLoadFailed)
	}
	return parse(p)
}

// Parse reads a config from an in-memory buffer.
func Parse(data []byte) (Config, error) {
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return Config{}, apperr.MapError("settings", errors.Wrap(err, "parse config"),
			apperr.CodeInvalidConfig, apperr.MsgLoadFailed)
	}
	return parse(p)
}

func parse(p *properties.Properties) (Config, error) {
	cfg, err := decode(p)
	if err != nil {
		return Config{}, apperr.MapError("settings", err, apperr.CodeInvalidConfig, apperr.MsgLoadFailed)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(p *properties.Properties) (Config, error) {
	var cfg Config
	if err := p.Decode(&cfg.Office); err != nil {
		return cfg, errors.Wrap(err, "decode office")
	}
	if err := p.FilterStripPrefix(loggerPrefix).Decode(&cfg.Logger); err != nil {
		return cfg, errors.Wrap(err, "decode logger")
	}
	if err := p.FilterStripPrefix(documentPrefix).Decode(&cfg.Document); err != nil {
		return cfg, errors.Wrap(err, "decode document")
	}
	return cfg, nil
}

// Validate checks value ranges of every section.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return apperr.MapError("settings", err, apperr.CodeInvalidConfig, apperr.MsgValidateFailed)
	}
	if total := cfg.Document.Config.Node + cfg.Document.Config.Step; cfg.Document.Config.TotalBits <= total {
		return apperr.NewError("settings", apperr.CodeInvalidConfig, apperr.MsgValidateFailed,
			errors.Errorf("document total bits %d must exceed node+step bits %d", cfg.Document.Config.TotalBits, total))
	}
	return nil
}
