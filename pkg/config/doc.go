// Package config loads environment-based configuration into tagged structs,
// caching each configuration type so it is parsed exactly once per process.
//
// Every package in the kit exposes an env-tagged Config struct; this package
// is the single way they get populated:
//
//	var apiCfg apiclient.Config
//	config.MustLoad(&apiCfg)
//
//	var redisCfg kv.RedisConfig
//	if err := config.Load(&redisCfg); err != nil {
//	    // handle error
//	}
//
// A .env file in the working directory is loaded once before the first
// parse; real environment variables take precedence over it. Defaults come
// from `envDefault` tags, so a zero-environment process still starts with
// usable settings.
package config
