package main

import (
	"context"
	"log"
	"time"

	"github.com/vfg2006/analytics-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/analytics-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/analytics-dashboard-api/internal/config"
)

func setupLogger() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func main() {
	setupLogger()
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco: %v", err)
	}
	defer conn.Close()

	if err := migration.Apply(ctx, conn); err != nil {
		log.Fatalf("ERRO ao aplicar migração: %v", err)
	}

	log.Printf("Migração concluída em %v", time.Since(startTime))
}
