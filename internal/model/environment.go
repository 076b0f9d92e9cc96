package model

// Environment names the deployment the companion runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// StorageDriver selects the key-value backend.
type StorageDriver string

const (
	StorageMemory StorageDriver = "memory"
	StorageSQLite StorageDriver = "sqlite"
)
