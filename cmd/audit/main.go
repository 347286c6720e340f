package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"AESCipherService/internal/infrastructure/kafka"
)

// Tails the cipher audit topic and logs every event.
func main() {
	var (
		brokerFlag = flag.String("broker", "localhost:9092", "Kafka broker address")
		topicFlag  = flag.String("topic", "cipher_audit", "audit topic")
		groupFlag  = flag.String("group", "audit-log", "consumer group id")
	)
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := kafka.NewConsumer(*brokerFlag, *topicFlag, *groupFlag, func(event kafka.AuditEvent) {
		slog.Info("cipher call",
			"operation", event.Operation,
			"mode", event.Mode,
			"user_id", event.UserID,
			"key_id", event.KeyID,
			"success", event.Success,
			"at", event.At,
		)
	})
	consumer.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
