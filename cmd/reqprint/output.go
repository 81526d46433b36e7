package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/reqprint/pkg/fingerprint"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var errUnknownOutput = errors.New("unknown output format")

type digestReport struct {
	UserAgent      string `json:"user_agent" yaml:"user_agent"`
	ForwardedFor   string `json:"forwarded_for" yaml:"forwarded_for"`
	ClientHints    string `json:"client_hints" yaml:"client_hints"`
	AcceptLanguage string `json:"accept_language" yaml:"accept_language"`
	UserID         string `json:"user_id" yaml:"user_id"`
	Canonical      string `json:"canonical" yaml:"canonical"`
	Digest         string `json:"digest" yaml:"digest"`
}

func writeDigest(w io.Writer, format string, s fingerprint.SignalSet) error {
	report := digestReport{
		UserAgent:      s.UserAgent,
		ForwardedFor:   s.ForwardedFor,
		ClientHints:    s.ClientHints,
		AcceptLanguage: s.AcceptLanguage,
		UserID:         s.CallerID,
		Canonical:      s.Canonical(),
		Digest:         fingerprint.Derive(s),
	}

	switch format {
	case outputText, "":
		_, err := fmt.Fprintln(w, report.Digest)
		return err
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", errUnknownOutput, format)
	}
}
