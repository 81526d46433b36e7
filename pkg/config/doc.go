// Package config loads environment variables into tagged structs.
//
// A .env file in the working directory is loaded once, if present, then
// github.com/caarlos0/env parses the process environment into the struct.
// Each struct type is parsed once per process; later calls get a copy of
// the cached value.
//
//	type HTTPConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
