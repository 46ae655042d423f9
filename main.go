package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lettergames/jumble-server/internal/httpserver"
	"github.com/lettergames/jumble-server/internal/session"
	"github.com/lettergames/jumble-server/internal/store"
	"github.com/lettergames/jumble-server/internal/vocab"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// One shared vocabulary, read-only after load.
	var words *vocab.Vocab
	if cfg.VocabFile != "" {
		words, err = vocab.Load(cfg.VocabFile)
	} else {
		words, err = vocab.Default()
	}
	if err != nil {
		log.Fatal().Err(err).Str("vocabFile", cfg.VocabFile).Msg("failed to load vocabulary")
	}

	var st store.Store
	if cfg.DBPath != "" {
		sqlStore, db, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("dbPath", cfg.DBPath).Msg("failed to open database")
		}
		defer db.Close()
		st = sqlStore
	} else {
		st = store.NewMemoryStore()
	}

	srv, err := httpserver.New(httpserver.Options{
		Vocab:        words,
		Store:        st,
		Sessions:     session.NewCodec(cfg.SecretKey, cfg.SecureCookies),
		SuccessAt:    cfg.SuccessAtCount,
		Seed:         cfg.Seed,
		ClientOrigin: cfg.ClientOrigin,
		Secure:       cfg.SecureCookies,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}

	addr := cfg.Host + ":" + cfg.Port
	log.Info().Str("addr", addr).Int("words", words.Len()).Bool("seeded", cfg.Seed != nil).Msg("starting jumble server")
	if err := srv.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
