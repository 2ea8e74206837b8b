// Package config manages application configuration for the places API.
//
// Load layers built-in defaults, an optional YAML file named by CONFIG_FILE,
// an optional .env file and the process environment, in that order of
// precedence, using github.com/spf13/viper and github.com/joho/godotenv.
//
//	cfg, err := config.Load()
//	if err == nil {
//		err = cfg.Validate()
//	}
//
// # Environment Variables
//
//	SERVER_PORT            - HTTP port (default: 5000)
//	SERVER_ENV             - development, production or test
//	SERVER_READ_TIMEOUT    - e.g. 15s
//	SERVER_WRITE_TIMEOUT   - e.g. 15s
//	LOG_LEVEL              - debug, info, warn or error
//	CORS_ALLOWED_ORIGINS   - comma separated origins, * for any
//	DB_HOST, DB_PORT       - SurrealDB address
//	DB_NAMESPACE           - SurrealDB namespace
//	DB_DATABASE            - SurrealDB database
//	DB_USER, DB_PASSWORD   - SurrealDB root credentials
//	RATE_LIMIT_RPS         - signup/login requests per second per client
//	RATE_LIMIT_BURST       - signup/login burst per client
//	BCRYPT_COST            - password hashing cost
//
// Validate reports every problem at once using errors.Join.
package config
