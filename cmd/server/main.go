// server runs the defguard core gRPC service for desktop-client MFA logins.
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/bhardwajRahul/defguard/internal/activity"
	activityrepo "github.com/bhardwajRahul/defguard/internal/activity/repository"
	"github.com/bhardwajRahul/defguard/internal/clientmfa"
	"github.com/bhardwajRahul/defguard/internal/config"
	"github.com/bhardwajRahul/defguard/internal/db"
	devicerepo "github.com/bhardwajRahul/defguard/internal/device/repository"
	"github.com/bhardwajRahul/defguard/internal/gateway"
	locationrepo "github.com/bhardwajRahul/defguard/internal/location/repository"
	"github.com/bhardwajRahul/defguard/internal/mail"
	netdevrepo "github.com/bhardwajRahul/defguard/internal/netdev/repository"
	"github.com/bhardwajRahul/defguard/internal/security"
	"github.com/bhardwajRahul/defguard/internal/server"
	"github.com/bhardwajRahul/defguard/internal/server/interceptors"
	"github.com/bhardwajRahul/defguard/internal/telemetry/otel"
	userrepo "github.com/bhardwajRahul/defguard/internal/user/repository"
)

const serviceName = "defguard-core"

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	privateKey, err := security.ParsePrivateKey(cfg.JWTPrivateKey)
	if err != nil {
		log.Fatal("parse JWT private key", zap.Error(err))
	}
	publicKey, err := security.ParsePublicKey(cfg.JWTPublicKey)
	if err != nil {
		log.Fatal("parse JWT public key", zap.Error(err))
	}
	tokens := security.NewTokenProvider(privateKey, publicKey, cfg.JWTIssuer)

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db", zap.Error(err))
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, serviceName, cfg.OTLPInsecure)
	if err != nil {
		log.Fatal("telemetry", zap.Error(err))
	}
	providers.SetGlobal()

	pubsub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermill.NopLogger{})
	defer pubsub.Close()

	forwarder := activity.NewKafkaForwarder(cfg.ActivityKafkaBrokersList(), cfg.ActivityKafkaTopic)
	defer forwarder.Close()
	activityWorker := activity.NewWorker(pubsub, activityrepo.NewPostgresRepository(conn), forwarder, log)
	go func() {
		if err := activityWorker.Run(ctx); err != nil {
			log.Error("activity worker stopped", zap.Error(err))
		}
	}()

	mailQueue := mail.NewQueue(64)
	sender := mail.NewSMTPSender(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPSender)
	mailWorker := mail.NewWorker(mailQueue, sender, log)
	go mailWorker.Run(ctx)

	sessions := clientmfa.NewSessionStore()
	go sessions.RunReaper(ctx, cfg.ReaperInterval(), log)

	svc := clientmfa.NewService(
		userrepo.NewPostgresRepository(conn),
		locationrepo.NewPostgresRepository(conn),
		devicerepo.NewPostgresRepository(conn),
		netdevrepo.NewPostgresRepository(conn),
		tokens,
		gateway.NewWatermillNotifier(pubsub),
		activity.NewWatermillNotifier(pubsub),
		mailQueue,
		sessions,
		cfg.TokenTTL(),
		log,
	)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal("listen", zap.Error(err))
	}
	defer lis.Close()

	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors.UnaryLogging(log)),
	)
	server.RegisterServices(s, server.Deps{ClientMfa: svc, Log: log})

	go func() {
		log.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := s.Serve(lis); err != nil {
			log.Fatal("serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	s.GracefulStop()
	mailQueue.Close()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Warn("telemetry shutdown", zap.Error(err))
	}
	log.Info("stopped")
}
