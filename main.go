package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mdp/qrterminal/v3"
	log "github.com/sirupsen/logrus"

	"pvdiscs.dev/command"
	"pvdiscs.dev/config"
	"pvdiscs.dev/data"
	"pvdiscs.dev/lang"
	"pvdiscs.dev/permission"
	"pvdiscs.dev/server"
	"pvdiscs.dev/track"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	addr := flag.String("addr", cfg.Addr, "address to listen on")
	db := flag.String("db", cfg.DB, "path to the sqlite database")
	fallback := flag.String("lang", cfg.Lang, "fallback language")
	ops := flag.String("ops", "", "comma separated operator names, added to DISCS_OPS")
	level := flag.String("log-level", cfg.LogLevel.String(), "log level")
	qr := flag.Bool("qr", cfg.QR, "print a QR code of the console url")
	flag.Parse()

	cfg.Addr = *addr
	cfg.DB = *db
	cfg.Lang = *fallback
	cfg.Operators = append(cfg.Operators, config.SplitList(*ops)...)
	cfg.QR = *qr
	if cfg.LogLevel, err = log.ParseLevel(*level); err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	store, err := data.Open(cfg.DB)
	if err != nil {
		log.WithError(err).Fatal("opening database")
	}
	defer store.Close()

	langs, err := lang.Load(cfg.Lang)
	if err != nil {
		log.WithError(err).Fatal("loading languages")
	}

	srv := server.New(server.Options{
		Permissions:   permission.NewRegistry(store),
		Languages:     langs,
		Grants:        store,
		Operators:     cfg.Operators,
		OperatorToken: cfg.OpToken,
	})

	discs := command.NewHandler(srv).
		MustAddSubCommand(command.Burn(store, track.NewCache(track.NewResolver(10*time.Second), time.Hour))).
		MustAddSubCommand(command.Erase(store)).
		MustAddSubCommand(command.Search(store))

	if len(cfg.Operators) > 0 && cfg.OpToken == "" {
		log.Warn("DISCS_OPS is set without DISCS_OP_TOKEN; operators must be made from the console")
	}

	err = srv.RegisterCommand(server.Command{
		Name:      "disc",
		Usage:     "/disc <burn|erase|search>",
		Aliases:   []string{"discs"},
		Executor:  discs,
		Completer: discs,
	})
	if err != nil {
		log.WithError(err).Fatal("registering commands")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hs := &http.Server{Addr: cfg.Addr, Handler: srv.Handler()}
	go func() {
		log.WithFields(log.Fields{
			"addr":      cfg.Addr,
			"languages": langs.Locales(),
		}).Info("listening")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("http server stopped")
			stop()
		}
	}()

	if cfg.QR {
		qrterminal.GenerateHalfBlock(cfg.ConsoleURL(), qrterminal.L, os.Stdout)
	}
	log.Infof("console at %s?name=<player>", cfg.ConsoleURL())

	go func() {
		if err := srv.RunConsole(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Warn("console input closed")
		}
	}()

	<-ctx.Done()

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdown); err != nil {
		log.WithError(err).Warn("shutdown")
	}
}
