package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/controle-epi-api/internal/infrastructure/postgres"
	"github.com/jhoicas/controle-epi-api/pkg/config"
	"github.com/jhoicas/controle-epi-api/pkg/logger"
)

const usage = `uso: migrate <comando> [args]

comandos: up, up-by-one, up-to VERSION, down, down-to VERSION, redo, reset, status, version`

func main() {
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "carregar configuração:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	command, args := flag.Arg(0), flag.Args()[1:]
	if err := postgres.Migrate(context.Background(), cfg.DB, command, args...); err != nil {
		log.Fatal().Err(err).Str("comando", command).Msg("migração falhou")
	}
	log.Info().Str("comando", command).Msg("migração concluída")
}
