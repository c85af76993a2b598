package main

import "github.com/spf13/viper"

func setDefaults() {
	viper.SetDefault("unleash_path", "http://localhost:4242/api")
	viper.SetDefault("service_name", "case-status-api")
	viper.SetDefault("app_version", "0.1.0")
	viper.SetDefault("port", "8170")
	viper.SetDefault("case_service_url", "http://localhost:8190")
	viper.SetDefault("office_service_url", "http://localhost:8191")
	viper.SetDefault("document_store_url", "http://localhost:8192")
	viper.SetDefault("dispatch_store_url", "http://localhost:8193")
}
