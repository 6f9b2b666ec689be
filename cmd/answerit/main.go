// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/answerit"
	"github.com/poiesic/answerit/ai"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/ingestion"
	"github.com/poiesic/answerit/websearch"
	"github.com/poiesic/answerit/workflow"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "answerit",
		Usage: "Adaptive question answering over local documents and web search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a question using the document store, with web search fallback",
				Action:    askCommand,
				ArgsUsage: "QUESTION",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "chat-host",
						Usage: "Chat service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "chat-model",
						Usage: "Chat model for routing, grading and generation",
						Value: "qwen2.5:3b",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL (defaults to chat-host if not specified)",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.StringFlag{
						Name:    "tavily-api-key",
						Usage:   "Tavily API key for web search",
						EnvVars: []string{"TAVILY_API_KEY"},
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum regeneration attempts for ungrounded answers",
						Value: 3,
					},
					&cli.IntFlag{
						Name:  "web-max-results",
						Usage: "Maximum web search results to use as evidence",
						Value: 3,
					},
				},
			},
			{
				Name:      "ingest",
				Usage:     "Load text files into the document store",
				Action:    ingestCommand,
				ArgsUsage: "FILE [FILE...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Target chunk length in characters",
						Value: 250,
					},
					&cli.IntFlag{
						Name:  "chunk-overlap",
						Usage: "Characters shared by adjacent chunks",
						Value: 0,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for embedding (0 = CPU-based default)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	apiKey := c.String("tavily-api-key")
	if apiKey == "" {
		return fmt.Errorf("tavily-api-key is required (or set TAVILY_API_KEY)")
	}

	// Embedding host defaults to the chat host
	embeddingHost := c.String("embedding-host")
	if embeddingHost == "" {
		embeddingHost = c.String("chat-host")
	}

	aiConfig := ai.NewConfig(
		ai.WithChatHost(c.String("chat-host")),
		ai.WithChatModel(c.String("chat-model")),
		ai.WithEmbeddingHost(embeddingHost),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := answerit.NewDatabase(c.String("db"), answerit.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	searchClient, err := websearch.NewTavilyClient(apiKey)
	if err != nil {
		return err
	}

	wf, err := db.NewWorkflow(searchClient,
		workflow.WithMaxRetries(c.Int("max-retries")),
		workflow.WithWebSearchMaxResults(c.Int("web-max-results")),
	)
	if err != nil {
		return err
	}

	result, err := wf.Run(ctx, question)
	if err != nil {
		return fmt.Errorf("workflow failed: %w", err)
	}

	fmt.Printf("Question: %s\n", result.Question)
	if result.Source == core.SourceWeb {
		fmt.Println("Source - Web")
	} else {
		fmt.Println("Source - RAG")
	}
	fmt.Println(result.Generation)

	if !result.Grounded {
		fmt.Fprintln(os.Stderr, "warning: answer may not be grounded in the evidence")
	} else if !result.AddressesQuestion {
		fmt.Fprintln(os.Stderr, "warning: answer may not address the question")
	}

	return nil
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.Args().Len() == 0 {
		return fmt.Errorf("at least one file is required")
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := answerit.NewDatabase(c.String("db"), answerit.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	opts := []ingestion.Option{
		ingestion.WithChunkSize(c.Int("chunk-size")),
		ingestion.WithChunkOverlap(c.Int("chunk-overlap")),
	}
	if c.Int("pool-size") > 0 {
		opts = append(opts, ingestion.WithPoolSize(c.Int("pool-size")))
	}

	pipeline, err := db.NewIngestionPipeline(opts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	total := 0
	for _, path := range c.Args().Slice() {
		contents, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		docs, err := pipeline.Ingest(ctx,
			&ingestion.IngestOptions{Metadata: map[string]string{core.MetadataSource: path}},
			string(contents))
		if err != nil {
			return fmt.Errorf("failed to ingest %s: %w", path, err)
		}

		fmt.Fprintf(os.Stderr, "%s: %d chunks\n", path, len(docs))
		total += len(docs)
	}

	fmt.Fprintf(os.Stderr, "Ingested %d chunks total\n", total)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
