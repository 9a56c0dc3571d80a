package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"microblog/app/repositories"
	"microblog/app/routes"
	"microblog/config"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("microblog version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: microblog <command>

Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog API server.
`
	fmt.Println(helpText)
}

// serve starts the blog API over an in-memory store. All state lives
// and dies with the process.
func serve() {
	cfg := config.Load()

	db, err := repositories.OpenInMemory()
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer db.Close()

	router := routes.SetupRoutes(db, cfg)

	addr := ":" + cfg.Port
	log.Printf("Starting blog API on %s", addr)
	if err := routes.StartServer(addr, routes.WithCORS(router)); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
