package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"doc-text-extractor/internal/client"
	"doc-text-extractor/internal/config"
	"doc-text-extractor/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	serverURL := flag.String("server", "http://localhost:8080", "extraction gateway base URL")
	outDir := flag.String("out", ".", "directory for the extracted text file")
	copyText := flag.Bool("copy", false, "copy the extracted text to the clipboard")
	save := flag.Bool("save", false, "save the extracted text next to the document")
	timeout := flag.Int("timeout", 120, "request timeout in seconds")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: extract [flags] <file.pdf|.jpg|.jpeg|.png|.webp>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := config.NewConfig()
	validator := service.NewValidator(cfg.GetMaxFileSize())
	gateway := client.NewGatewayClient(*serverURL, time.Duration(*timeout)*time.Second)
	controller := client.NewController(validator, gateway)

	if err := controller.SelectPath(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeout)*time.Second)
	defer cancel()

	if err := controller.Extract(ctx); err != nil {
		if extErr := controller.Err(); extErr != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", extErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}

	result := controller.Result()
	if err := client.Render(os.Stdout, result); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *save {
		path, err := client.SaveTranscript(result, *outDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nSaved to %s\n", path)
	}

	if *copyText {
		if err := client.CopyToClipboard(result); err != nil {
			fmt.Fprintf(os.Stderr, "warning: clipboard copy failed: %v\n", err)
		} else {
			fmt.Println("Copied to clipboard")
		}
	}
}
