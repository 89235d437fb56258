package config

import (
	"fmt"
	"strings"

	"bindprop/internal/logging"
)

// ColorMode selects when log and report output is colourised.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota // colour when writing to a terminal
	ColorOn
	ColorOff
)

func (m ColorMode) String() string {
	switch m {
	case ColorOn:
		return "on"
	case ColorOff:
		return "off"
	default:
		return "auto"
	}
}

// ParseColor converts auto|on|off (and the usual boolean spellings).
func ParseColor(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "on", "always", "true", "yes":
		return ColorOn, nil
	case "off", "never", "false", "no":
		return ColorOff, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode: %q (expected: auto|on|off)", s)
	}
}

// Resolve reports whether colour is wanted, given whether the output is
// a terminal.
func (m ColorMode) Resolve(terminal bool) bool {
	switch m {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		return terminal
	}
}

// Logging converts the [log] section into a sink configuration.
// terminal reports whether stderr is a terminal; it only matters for
// color = "auto".
func (c LogConfig) Logging(terminal bool) (logging.Config, error) {
	level, err := logging.ParseLevel(c.Level)
	if err != nil {
		return logging.Config{}, err
	}
	format, err := logging.ParseFormat(c.Format)
	if err != nil {
		return logging.Config{}, err
	}
	mode, err := logging.ParseMode(c.Mode)
	if err != nil {
		return logging.Config{}, err
	}
	colorMode, err := ParseColor(c.Color)
	if err != nil {
		return logging.Config{}, err
	}
	toFile := c.Output != "" && c.Output != "-"
	return logging.Config{
		Level: level,
		Mode:  mode,
		Encoder: logging.Encoder{
			Format:    format,
			Detailed:  c.Detailed,
			Color:     format == logging.FormatText && !toFile && colorMode.Resolve(terminal),
			Timestamp: c.Timestamp,
		},
		OutputPath: c.Output,
		RingSize:   c.RingSize,
	}, nil
}
