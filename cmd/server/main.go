package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mrksrus/dual-focus/internal/config"
	"github.com/mrksrus/dual-focus/internal/serverapp"
)

func main() {
	// .env is optional; real env vars still apply without it.
	_ = godotenv.Load()

	cfg, err := config.Load("dualfocus.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config:        cfg,
		DataDir:       cfg.Storage.DataDir,
		StaticDir:     "static",
		UseDiskStatic: useDiskStaticByEnv(),
		Logger:        log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("dual-focus listening on http://localhost%s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}

func useDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DUALFOCUS_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
