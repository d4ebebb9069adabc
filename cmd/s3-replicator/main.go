package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"s3-replicator/cmd"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using the process environment")
	}

	if err := cmd.NewRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
