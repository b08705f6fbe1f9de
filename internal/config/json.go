package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so a config file can say "5m" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			Path string `json:"path"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Catalog struct {
		TablePath string   `json:"table_path"`
		Encoding  string   `json:"encoding"`
		CacheTTL  Duration `json:"cache_ttl"`
	} `json:"catalog,omitempty"`

	Export struct {
		Title       string `json:"title"`
		Subtitle    string `json:"subtitle"`
		Directorate string `json:"directorate"`
		Address     string `json:"address"`
		Appendix    string `json:"appendix"`
		Obligee     string `json:"obligee"`
		EIK         string `json:"eik"`
		Site        string `json:"site"`
		Footer      string `json:"footer"`
	} `json:"export,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{Path: jsonCfg.Storage.DB.Path},
		},
		Catalog: Catalog{
			TablePath: jsonCfg.Catalog.TablePath,
			Encoding:  jsonCfg.Catalog.Encoding,
			CacheTTL:  time.Duration(jsonCfg.Catalog.CacheTTL),
		},
		Export: Export{
			Title:       jsonCfg.Export.Title,
			Subtitle:    jsonCfg.Export.Subtitle,
			Directorate: jsonCfg.Export.Directorate,
			Address:     jsonCfg.Export.Address,
			Appendix:    jsonCfg.Export.Appendix,
			Obligee:     jsonCfg.Export.Obligee,
			EIK:         jsonCfg.Export.EIK,
			Site:        jsonCfg.Export.Site,
			Footer:      jsonCfg.Export.Footer,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
