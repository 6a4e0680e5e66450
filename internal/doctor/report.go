package doctor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format는 진단 리포트 출력 형식이다.
type Format string

const (
	FormatText Format = "text"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat은 --format 플래그 값을 Format으로 변환한다.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatTOML, FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("doctor.ParseFormat: 지원하지 않는 형식: %s", s)
	}
}

// Report는 진단 결과 묶음이다.
type Report struct {
	FindScript string       `toml:"find_script" yaml:"find_script" json:"find_script"`
	Checks     []DiagResult `toml:"checks" yaml:"checks" json:"checks"`
}

// Encode는 리포트를 지정한 형식으로 w에 출력한다.
func (r *Report) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(r); err != nil {
			return fmt.Errorf("doctor.Encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("doctor.Encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("doctor.Encode: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("doctor.Encode: %w", err)
		}
	default:
		for _, c := range r.Checks {
			if _, err := fmt.Fprintf(w, "  [%s] %s: %s\n", statusIcon(c.Status), c.Name, c.Message); err != nil {
				return fmt.Errorf("doctor.Encode: %w", err)
			}
			if c.Fix != "" {
				if _, err := fmt.Fprintf(w, "      Fix: %s\n", c.Fix); err != nil {
					return fmt.Errorf("doctor.Encode: %w", err)
				}
			}
		}
	}
	return nil
}

func statusIcon(s Status) string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarn:
		return "!!"
	case StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
