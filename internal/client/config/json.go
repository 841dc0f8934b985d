package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// RequestTimeout is a Go duration string such as "5s".
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	RequestTimeout     string `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c or -config flag (see flagx.JsonConfigFlags). Only non-empty values are
// copied. It panics on read, unmarshal or duration parse errors.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
