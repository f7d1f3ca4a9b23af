package main

import (
	"context"
	"fmt"
	"os"

	"github.com/klabast/wb-services/holiday-csv/internal/commands"
)

func main() {
	if err := commands.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
