package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/infrastructure/database/postgres"
	"github.com/vfg2006/mua-studio-api/infrastructure/storage"
	"github.com/vfg2006/mua-studio-api/internal/config"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/pkg/utils"
)

// Dump é o conteúdo exportado do armazenamento do navegador: uma chave por coleção,
// cada uma com a lista serializada de entidades
type Dump map[string][]map[string]any

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func main() {
	setupLogger()

	dumpPath := flag.String("dump", "storage-dump.json", "arquivo JSON exportado do navegador")
	dryRun := flag.Bool("dry-run", false, "apenas valida o arquivo, sem gravar")
	flag.Parse()

	dump, err := readDump(*dumpPath)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao ler o arquivo de exportação")
	}

	slots, err := buildSlots(dump)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao preparar as coleções")
	}

	if *dryRun {
		logrus.WithField("slots", len(slots)).Info("Dry-run concluído, nada foi gravado")
		return
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}

	backend := storage.NewPostgresBackend(conn)
	defer backend.Close()

	if err := backend.Migrate(); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar a tabela de slots")
	}

	startTime := time.Now()
	payloads := make(map[string][]byte, len(slots))
	for kind, payload := range slots {
		payloads[kind.String()] = payload
	}

	if err := backend.SetMany(ctx, payloads); err != nil {
		logrus.WithError(err).Fatal("ERRO ao gravar coleções, nada foi importado")
	}

	logrus.Infof("Migração concluída em %v. Coleções importadas: %d", time.Since(startTime), len(payloads))
}

func readDump(path string) (Dump, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	dump := Dump{}
	if err := utils.JSON.Unmarshal(raw, &dump); err != nil {
		return nil, errors.Wrap(err, "decoding dump")
	}

	return dump, nil
}

// buildSlots converte o dump em payloads prontos para o backend. Chaves desconhecidas
// são ignoradas e IDs numéricos antigos viram texto.
func buildSlots(dump Dump) (map[domain.Kind][]byte, error) {
	slots := make(map[domain.Kind][]byte)

	for key, records := range dump {
		kind := domain.Kind(key)
		if !kind.IsValid() {
			logrus.WithField("key", key).Warn("AVISO: chave desconhecida ignorada")
			continue
		}

		for i := range records {
			normalizeIDs(records[i])
		}

		payload, err := utils.JSON.Marshal(records)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s", kind)
		}

		slots[kind] = payload
		logrus.WithFields(logrus.Fields{
			"kind":    kind,
			"records": len(records),
		}).Info("Coleção preparada")
	}

	return slots, nil
}

var idFields = []string{"id", "clientId", "projectId", "bookingId", "memberId"}

func normalizeIDs(record map[string]any) {
	for _, field := range idFields {
		if value, ok := record[field].(float64); ok {
			record[field] = strconv.FormatFloat(value, 'f', -1, 64)
		}
	}
}
