package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/cardfield/internal/game"
	cfmcp "github.com/peterkuimelis/cardfield/internal/mcp"
)

func main() {
	balanceFile := flag.String("balance", "", "path to a balance YAML file (optional)")
	flag.Parse()

	if *balanceFile != "" {
		b, err := game.LoadBalance(*balanceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfmcp.SetBalance(b)
	}

	s := server.NewMCPServer("cardfield", "1.0.0")
	cfmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
