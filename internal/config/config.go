package config

import (
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	MySQLHost     string
	MySQLPort     int
	MySQLUser     string
	MySQLPassword string
	MySQLDB       string

	KafkaBrokers []string
}

// Load reads the optional env file first; variables already set in the
// process environment win over the file.
func Load() Config {
	path := EnvDefault("ENV_FILE", ".env")
	if err := godotenv.Load(path); err != nil {
		log.Printf("Notice: %s file not found: %v. Using system environment variables", path, err)
	}

	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "golden-sneaker"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),

		MySQLHost:     EnvDefault("MYSQL_HOST", "localhost"),
		MySQLPort:     EnvIntDefault("MYSQL_PORT", 3306),
		MySQLUser:     EnvDefault("MYSQL_USER", "root"),
		MySQLPassword: os.Getenv("MYSQL_PASSWORD"),
		MySQLDB:       EnvDefault("MYSQL_DB", "golden_sneaker"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
	}
}

func (c Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.MySQLUser
	mc.Passwd = c.MySQLPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.MySQLHost, strconv.Itoa(c.MySQLPort))
	mc.DBName = c.MySQLDB
	mc.ParseTime = true
	return mc.FormatDSN()
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.ServerPort)
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
