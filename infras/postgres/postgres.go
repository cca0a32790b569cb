package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
)

// Connection pairs a read and a write pool. The repository issues selects on
// Read and everything else, including sequence reads, on Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	username string
	password string
	host     string
	port     string
	name     string
	sslMode  string
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	read := endpoint{
		username: pg.Read.Username,
		password: pg.Read.Password,
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		name:     dbName(cfg, pg.Read.Name),
		sslMode:  pg.Read.SSLMode,
	}

	write := endpoint{
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		name:     dbName(cfg, pg.Write.Name),
		sslMode:  pg.Write.SSLMode,
	}

	return &Connection{
		Read:  connect("read", read, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect("write", write, pg.MaxRetry, pg.RetryWaitTime),
	}
}

func dbName(cfg *config.Config, baseName string) string {
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func connect(label string, ep endpoint, maxRetry, waitTime int) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		ep.username,
		ep.password,
		net.JoinHostPort(ep.host, ep.port),
		ep.name,
		ep.sslMode,
	)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", label).
				Str("host", ep.host).
				Str("port", ep.port).
				Str("dbName", ep.name).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(maxIdleConnections)
			sqlDB.SetMaxOpenConns(maxOpenConnections)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", label).
			Str("host", ep.host).
			Str("port", ep.port).
			Str("dbName", ep.name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
