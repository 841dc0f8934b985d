package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// Empty values leave the corresponding Config field unchanged.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	StoreKind        string `json:"store_kind"`
	DatabaseDSN      string `json:"database_dsn"`
	SQLitePath       string `json:"sqlite_path"`
	S3RootUser       string `json:"s3_root_user"`
	S3RootPassword   string `json:"s3_root_password"`
	S3Bucket         string `json:"s3_bucket"`
	S3Region         string `json:"s3_region"`
	S3BaseEndpoint   string `json:"s3_base_endpoint"`
	S3Prefix         string `json:"s3_prefix"`
	LogLevel         string `json:"log_level"`
	LogFormat        string `json:"log_format"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags. If neither
// is set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	overlay(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	overlay(&config.StoreKind, c.StoreKind)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.SQLitePath, c.SQLitePath)
	overlay(&config.S3RootUser, c.S3RootUser)
	overlay(&config.S3RootPassword, c.S3RootPassword)
	overlay(&config.S3Bucket, c.S3Bucket)
	overlay(&config.S3Region, c.S3Region)
	overlay(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	overlay(&config.S3Prefix, c.S3Prefix)
	overlay(&config.LogLevel, c.LogLevel)
	overlay(&config.LogFormat, c.LogFormat)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
