package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	api "github.com/ndnb/architecture-web-gateway/api"
	"github.com/ndnb/architecture-web-gateway/config"
	"github.com/ndnb/architecture-web-gateway/upstream"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	// The upstream base URL is resolved exactly once here; everything
	// downstream receives it by injection.
	baseURL := config.APIBaseURL(c)
	fmt.Printf("Upstream API: %s\n", baseURL)

	gateway := upstream.NewGateway(baseURL, config.AppPathPrefix(), &http.Client{})
	currentUpstream := upstream.New(gateway)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentUpstream)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
