package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/eventsignal/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed setter adapters for the signaler package",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of typed arguments to generate adapters for",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "signaler/typed.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for signaler started !")
	defer func() {
		log.Printf("Codegen for signaler finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)
	out := cmd.String(outputKey)
	log.Printf("Typed arguments: %d -> %s", genericParamCount, out)

	contents := templates.TypedGen(int(genericParamCount))
	if err := os.WriteFile(out, []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
