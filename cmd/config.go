package cmd

// Config carries the process configuration read from the environment.
// StorageDriver selects the record store backend: "memory" or "postgres".
// The DB fields are only consulted for the postgres driver.
type Config struct {
	HTTPPort      string
	StorageDriver string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
}
