package store

import "github.com/MKhiriev/go-sign-in/internal/config"

func clientStorageConfig(dsn string) config.ClientStorage {
	return config.ClientStorage{DB: config.ClientDB{DSN: dsn}}
}
