package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/peterkuimelis/cardfield/internal/game"
	"github.com/peterkuimelis/cardfield/internal/net"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	balanceFile := flag.String("balance", "", "path to a balance YAML file (optional)")
	flag.Parse()

	balance := game.DefaultBalance()
	if *balanceFile != "" {
		b, err := game.LoadBalance(*balanceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		balance = b
	}

	srv := net.NewServer(balance)
	if err := srv.ListenAndServe(*addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
