package main

import (
	"log"
	"log/slog"
	"os"

	"AESCipherService/internal/config/serverConfig"
	"AESCipherService/internal/config/storageConfig"
	"AESCipherService/internal/infrastructure/kafka"
	"AESCipherService/internal/infrastructure/postgres"
	"AESCipherService/internal/repository"
	"AESCipherService/internal/service"
	transport "AESCipherService/internal/transport/http"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}
}

func main() {

	storageCfg, err := storageConfig.MustLoadStorageConfig()
	if err != nil {
		log.Fatalf("%s", err.Error())
	}

	config, err := serverConfig.MustLoadServerConfig()
	if err != nil {
		log.Fatalf("%s", err.Error())
	}

	dataBase, err := postgres.NewStorage(storageCfg)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	repos := repository.NewRepository(dataBase)

	var audit *kafka.Producer
	if config.Kafka.Enabled {
		audit = kafka.NewProducer(config.Kafka.Broker, config.Kafka.AuditTopic)
		defer audit.Close()
	}

	cipherService := service.NewService(repos, audit)

	if err := transport.RunHTTPServer(config.Server, cipherService); err != nil {
		log.Fatalf("cannot start HTTP server: %v", err)
	}
}
