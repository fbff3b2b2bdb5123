// Command pdoq runs a single SQL statement through the pdo wrapper and
// prints the result: rows as JSON lines, writes as an affected-row count.
//
//	pdoq -driver sqlite -dsn ./app.db "SELECT * FROM users WHERE id = :id" -bind '{"id": 1}'
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	pdo "github.com/gabrysiak/pdo-wrapper"
	"github.com/gabrysiak/pdo-wrapper/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

func main() {
	configPath := flag.String("config", "", "config file path (overrides discovery)")
	driver := flag.String("driver", "", "database driver (overrides config)")
	dsn := flag.String("dsn", "", "data source name (overrides config)")
	format := flag.String("format", "", "error report format, html or text (overrides config)")
	bindJSON := flag.String("bind", "", "bind parameters as a JSON object")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, path, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if path != "" {
		log.Debug().Str("path", path).Msg("loaded config")
	}

	if *driver != "" {
		cfg.Database.Driver = *driver
	}
	if *dsn != "" {
		cfg.Database.DSN = *dsn
	}
	if *format != "" {
		cfg.Errors.Format = *format
	}

	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		log = log.Level(level)
	}

	query, err := readStatement(flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("no statement to run")
	}

	var bind any
	if *bindJSON != "" {
		params := map[string]any{}
		if err := json.Unmarshal([]byte(*bindJSON), &params); err != nil {
			log.Fatal().Err(err).Msg("invalid -bind value")
		}
		bind = params
	}

	conn, err := pdo.Open(cfg.Database.Driver, cfg.Database.ConnString(), pdo.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer conn.Close()

	conn.SetErrorCallback(func(msg string) {
		fmt.Fprintln(os.Stderr, msg)
	}, pdo.Format(cfg.Errors.Format))

	res, err := conn.Run(context.Background(), query, bind)
	if err != nil {
		// The error sink already rendered the details.
		os.Exit(1)
	}

	switch res.Kind {
	case pdo.KindRows:
		enc := json.NewEncoder(os.Stdout)
		for _, row := range res.Rows {
			if err := enc.Encode(row); err != nil {
				log.Fatal().Err(err).Msg("failed to encode row")
			}
		}
		log.Info().Int("rows", len(res.Rows)).Msg("query finished")
	case pdo.KindCount:
		fmt.Println(res.Affected)
		log.Info().Int64("affected", res.Affected).Msg("write finished")
	default:
		log.Info().Msg("statement executed")
	}
}

// readStatement takes the SQL from the positional arguments, falling back to
// stdin so statements can be piped in.
func readStatement(args []string) (string, error) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query != "" {
		return query, nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		query = strings.TrimSpace(string(data))
	}
	if query == "" {
		return "", fmt.Errorf("pass a statement as an argument or on stdin")
	}
	return query, nil
}

func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}
