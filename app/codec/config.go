package codec

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is a list of records to compose.
type Config struct {
	Records []RecordConfig `yaml:"records"`
}

// RecordConfig describes the data of one record. Which fields are used
// depends on Type.
type RecordConfig struct {
	Type string `yaml:"type"`

	// CNAME, MB, MD, MF, MG, MR, NS, PTR
	Name string `yaml:"name,omitempty"`

	// A, WKS
	Addr string `yaml:"addr,omitempty"`

	// MX
	Preference uint16 `yaml:"preference,omitempty"`
	Exchange   string `yaml:"exchange,omitempty"`

	// SOA
	Mname   string `yaml:"mname,omitempty"`
	Rname   string `yaml:"rname,omitempty"`
	Serial  uint32 `yaml:"serial,omitempty"`
	Refresh uint32 `yaml:"refresh,omitempty"`
	Retry   uint32 `yaml:"retry,omitempty"`
	Expire  uint32 `yaml:"expire,omitempty"`
	Minimum uint32 `yaml:"minimum,omitempty"`

	// HINFO
	Cpu string `yaml:"cpu,omitempty"`
	Os  string `yaml:"os,omitempty"`

	// MINFO
	Rmailbx string `yaml:"rmailbx,omitempty"`
	Emailbx string `yaml:"emailbx,omitempty"`

	// NULL, hex encoded.
	Data string `yaml:"data,omitempty"`

	// TXT. Long text is split into 255 byte strings.
	Text string `yaml:"text,omitempty"`

	// WKS
	Protocol uint8    `yaml:"protocol,omitempty"`
	Ports    []uint16 `yaml:"ports,omitempty"`
}

func loadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file, %w", err)
	}
	return decodeConfig(b)
}

func decodeConfig(b []byte) (*Config, error) {
	m := make(map[string]any)
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("failed to decode yaml config, %w", err)
	}

	cfg := new(Config)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		TagName:     "yaml",
		Result:      cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init yaml decoder, %w", err)
	}
	if err := decoder.Decode(m); err != nil {
		return nil, fmt.Errorf("failed to decode config, %w", err)
	}
	return cfg, nil
}

func configTemplate() *Config {
	return &Config{
		Records: []RecordConfig{
			{Type: "A", Addr: "192.0.2.1"},
			{Type: "CNAME", Name: "www.example.com."},
			{Type: "MX", Preference: 10, Exchange: "mail.example.com."},
			{
				Type:    "SOA",
				Mname:   "ns1.example.com.",
				Rname:   "hostmaster.example.com.",
				Serial:  2024010101,
				Refresh: 7200,
				Retry:   3600,
				Expire:  1209600,
				Minimum: 300,
			},
			{Type: "HINFO", Cpu: "amd64", Os: "linux"},
			{Type: "MINFO", Rmailbx: "admin.example.com.", Emailbx: "errors.example.com."},
			{Type: "NULL", Data: "deadbeef"},
			{Type: "TXT", Text: "v=spf1 -all"},
			{Type: "WKS", Addr: "192.0.2.1", Protocol: 6, Ports: []uint16{22, 80, 443}},
		},
	}
}

func genConfigTemplate(w io.Writer) error {
	b := new(bytes.Buffer)
	encoder := yaml.NewEncoder(b)
	encoder.SetIndent(2)
	if err := encoder.Encode(configTemplate()); err != nil {
		return fmt.Errorf("failed to encode config, %w", err)
	}
	encoder.Close()
	_, err := w.Write(b.Bytes())
	return err
}
