package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/nikhildhanda04/vmatch/api/device"
	"github.com/nikhildhanda04/vmatch/api/like"
	apimatch "github.com/nikhildhanda04/vmatch/api/match"
	"github.com/nikhildhanda04/vmatch/api/message"
	"github.com/nikhildhanda04/vmatch/chat"
	"github.com/nikhildhanda04/vmatch/db"
	"github.com/nikhildhanda04/vmatch/env"
	"github.com/nikhildhanda04/vmatch/matching"
	"github.com/nikhildhanda04/vmatch/middleware"
	"github.com/nikhildhanda04/vmatch/notify"
	"github.com/nikhildhanda04/vmatch/server"
)

func main() {
	logger := log.New(os.Stdout, "vmatch ", log.LstdFlags|log.Lshortfile)

	gdb, err := db.Open(env.DB_CONN)
	if err != nil {
		logger.Fatalln(err)
	}

	producer, err := notify.NewProducer(env.NSQD_TCP_ADDR)
	if err != nil {
		logger.Fatalln(err)
	}
	mailer := notify.NewMailer(env.SMTP_HOST, env.SMTP_PORT, env.SMTP_USER, env.SMTP_PASS, env.SMTP_FROM, env.APP_URL, logger)
	consumer, err := notify.NewConsumer(gdb, mailer, notify.NewPusher(), logger)
	if err != nil {
		logger.Fatalln(err)
	}
	if err := consumer.Start(env.NSQLOOKUPD_ADDR); err != nil {
		logger.Fatalln(err)
	}

	cleanup := func() {
		consumer.Stop()
		producer.Stop()
		db.Close(gdb)
	}
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cleanup()
		fmt.Println("quit")
		os.Exit(0)
	}()

	svc := matching.NewService(gdb, producer, logger)
	store := chat.NewStore(gdb, logger)
	authn := middleware.Authenticator(logger, env.HS256_SECRET, gdb)

	r := chi.NewRouter()
	server.SetupMiddlewares(r)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	like.NewHandlers(logger, svc, authn).SetupRoutes(r)
	apimatch.NewHandlers(logger, svc, authn).SetupRoutes(r)
	message.NewHandlers(logger, store, authn).SetupRoutes(r)
	device.NewHandlers(logger, gdb, authn).SetupRoutes(r)

	srv := server.New(":"+env.APP_PORT, r)
	logger.Printf("listening on :%s", env.APP_PORT)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalln(err)
	}
}
