// Package main provides the signer command-line tool for signing and verifying
// pipeline artifacts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"scrubber/pkg/metadata"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	inputPath := flag.String("input", "", "Path to artifact file (e.g., cleaned_output.json)")
	verify := flag.Bool("verify", false, "Verify an existing signature instead of signing")
	secret := flag.String("secret", os.Getenv("SCRUBBER_SIGNING_SECRET"), "Signing secret (default: SCRUBBER_SIGNING_SECRET)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: signer -input <artifact> [-verify] [-secret <secret>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *secret == "" {
		log.Fatalf("Signing secret required: set SCRUBBER_SIGNING_SECRET or pass -secret\n")
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Error reading file: %v\n", err)
	}

	fmt.Printf("📂 Reading: %s (%d bytes)\n", *inputPath, len(data))

	if *verify {
		sig, readErr := metadata.ReadFile(*inputPath)
		if readErr != nil {
			log.Fatalf("Error reading signature: %v\n", readErr)
		}

		if _, verifyErr := metadata.Verify(data, sig, *secret); verifyErr != nil {
			log.Fatalf("❌ Verification failed: %v\n", verifyErr)
		}

		fmt.Printf("✅ Signature valid (signed at %s)\n", sig.SignedAt)

		return
	}

	fmt.Println("✍️  Signing artifact...")

	if err := metadata.WriteFile(*inputPath, metadata.Sign(data, *secret)); err != nil {
		log.Fatalf("Error writing signature: %v\n", err)
	}

	fmt.Printf("✅ Signed and saved to: %s\n", metadata.SigPath(*inputPath))
}
