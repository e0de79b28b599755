package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted as strings ("10ms") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Camera struct {
		Source      string `json:"source"`
		Device      string `json:"device"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		JPEGQuality int    `json:"jpeg_quality"`
	} `json:"camera,omitempty"`

	Capture struct {
		FrameCount       int      `json:"frame_count"`
		FrameDelay       Duration `json:"frame_delay"`
		FrameTimeout     Duration `json:"frame_timeout"`
		EmptyFramePolicy string   `json:"empty_frame_policy"`
	} `json:"capture,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RegisterPath   string   `json:"register_path"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Journal struct {
			Path string `json:"path"`
		} `json:"journal,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	UI struct {
		Mode string `json:"mode"`
	} `json:"ui,omitempty"`
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
		App: App{Version: jsonCfg.App.Version},
		Camera: Camera{
			Source:      jsonCfg.Camera.Source,
			Device:      jsonCfg.Camera.Device,
			Width:       jsonCfg.Camera.Width,
			Height:      jsonCfg.Camera.Height,
			JPEGQuality: jsonCfg.Camera.JPEGQuality,
		},
		Capture: Capture{
			FrameCount:       jsonCfg.Capture.FrameCount,
			FrameDelay:       time.Duration(jsonCfg.Capture.FrameDelay),
			FrameTimeout:     time.Duration(jsonCfg.Capture.FrameTimeout),
			EmptyFramePolicy: jsonCfg.Capture.EmptyFramePolicy,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RegisterPath:   jsonCfg.Adapter.RegisterPath,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
			Journal: Journal{Path: jsonCfg.Storage.Journal.Path},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		UI: UI{Mode: jsonCfg.UI.Mode},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "10ms" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
