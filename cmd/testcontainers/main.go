package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/articles-api/internal/config"
	"github.com/localnerve/articles-api/internal/testutil"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var outFilename string
	flag.StringVar(&outFilename, "o", "", "write the store settings to this file")
	flag.Parse()

	usage := `
Start a database container for local development, chosen by STORE_TYPE and DB_TYPE,
and print the settings that point the service at it.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH] [-o OUT_FILE_PATH]

ENV_FILE_PATH: path to a .env file read for STORE_TYPE and DB_TYPE
OUT_FILE_PATH: path to write the printed settings, usable as ENV_FILE

example
  STORE_TYPE=mongo testcontainers -o /tmp/articles.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	ctx := context.Background()

	var (
		container *testutil.StoreContainer
		err       error
	)
	if strings.EqualFold(os.Getenv("STORE_TYPE"), config.StoreMongo) {
		container, err = testutil.StartMongo(ctx)
	} else {
		dbType := os.Getenv("DB_TYPE")
		if dbType == "" || dbType == "sqlite" {
			dbType = "postgres"
		}
		container, err = testutil.StartSQL(ctx, dbType)
	}
	if err != nil {
		log.Fatalf("Failed to create test container: %v\n", err)
	}

	settings := strings.Join(container.Env(), "\n") + "\n"
	fmt.Print(settings)
	if outFilename != "" {
		if err := os.WriteFile(outFilename, []byte(settings), 0o600); err != nil {
			log.Printf("Failed to write %s: %v\n", outFilename, err)
		}
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating test container...\n", sig)
	if err := container.Terminate(ctx); err != nil {
		log.Printf("Failed to terminate container: %v\n", err)
	}
}
