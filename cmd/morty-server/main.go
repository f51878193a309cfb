package main

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/technopolitica/morty/internal/client"
	"github.com/technopolitica/morty/internal/config"
	"github.com/technopolitica/morty/internal/db"
	"github.com/technopolitica/morty/internal/server"
)

func loadPublicKey(publicKeyURL *url.URL) (publicKey *rsa.PublicKey, err error) {
	switch publicKeyURL.Scheme {
	case "file":
		filePath := publicKeyURL.Path
		var pemBytes []byte
		pemBytes, err = os.ReadFile(filePath)
		if err != nil {
			return
		}
		pemBlock, _ := pem.Decode(pemBytes)
		if pemBlock == nil {
			err = fmt.Errorf("no PEM data found in %s", filePath)
			return
		}
		switch pemBlock.Type {
		case "RSA PUBLIC KEY":
			publicKey, err = x509.ParsePKCS1PublicKey(pemBlock.Bytes)
		case "PUBLIC KEY":
			var parsed any
			parsed, err = x509.ParsePKIXPublicKey(pemBlock.Bytes)
			if err != nil {
				return
			}
			var ok bool
			publicKey, ok = parsed.(*rsa.PublicKey)
			if !ok {
				err = fmt.Errorf("public key is not an RSA key")
			}
		default:
			err = fmt.Errorf("invalid public key of type %s", pemBlock.Type)
		}
		return
	default:
		err = fmt.Errorf("unsupported public key source: %s", publicKeyURL.Scheme)
		return
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s\n", err)
	}

	dbURL := flag.String("db-url", cfg.DBURL, "URL-formatted connection string to the database server. Currently only postgres:// URLS are supported.")
	port := flag.Int("port", cfg.Port, "port to listen on")
	publicKey := flag.String("public-key", cfg.PublicKey, "URL to the public key used to sign auth tokens. Currently only file:// protocols are supported.")
	upstreamURL := flag.String("upstream-url", cfg.UpstreamURL, "base URL of the character catalog API")
	upstreamTimeout := flag.Duration("upstream-timeout", cfg.UpstreamTimeout, "timeout for a single request to the character catalog")
	requestTimeout := flag.Duration("request-timeout", cfg.RequestTimeout, "timeout for handling a single API request")
	flag.Parse()

	if *dbURL == "" {
		log.Print("-db-url is required\n")
		flag.Usage()
		os.Exit(1)
	}

	if *publicKey == "" {
		log.Print("-public-key is required\n")
		flag.Usage()
		os.Exit(1)
	}
	publicKeyURL, err := url.Parse(*publicKey)
	if err != nil {
		log.Fatalf("failed to parse public key as URL: %s\n", err)
	}
	if publicKeyURL.Path == "" {
		log.Fatalf("public key url cannot have an empty path\n")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, *dbURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %s\n", err)
	}
	defer pool.Close()

	key, err := loadPublicKey(publicKeyURL)
	if err != nil {
		log.Fatalf("failed to read public key: %s\n", err)
	}

	catalog, err := client.New(*upstreamURL, client.WithTimeout(*upstreamTimeout), client.WithUserAgent("morty-server"))
	if err != nil {
		log.Fatalf("failed to create catalog client: %s\n", err)
	}

	router := server.New(server.Config{
		Repository:     db.NewRepository(pool),
		Catalog:        catalog,
		PublicKey:      key,
		RequestTimeout: *requestTimeout,
	})
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		log.Fatalf("failed to listen on specified address: %s\n", err)
	}

	httpServer := &http.Server{Handler: router}
	done := make(chan error)
	go func() {
		done <- httpServer.Serve(listener)
	}()
	log.Printf("listening on http://%s...\n", listener.Addr())

	select {
	case err = <-done:
	case <-ctx.Done():
		log.Printf("shutting down...")
		err = httpServer.Shutdown(context.Background())
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %s", err)
	}
}
