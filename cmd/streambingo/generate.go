package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/streambingo/streambingo/internal/card"
	"github.com/streambingo/streambingo/internal/theme"
)

type generateOptions struct {
	title     string
	themeName string
}

func newGenerateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Generate 24 bingo squares for a topic",
		Long: `Generate 24 bingo squares for a topic using the configured AI model.

Without flags the squares are printed to stdout. With --title they are
saved as a new card ready to play.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Save the result as a new card with this title")
	cmd.Flags().StringVar(&opts.themeName, "theme", string(theme.Default), "Color theme for the saved card")

	return cmd
}

func runGenerate(cmd *cobra.Command, rootFlags *rootFlags, topic string, opts *generateOptions) error {
	if strings.TrimSpace(topic) == "" {
		return newCommandError("generate", "validating topic", errors.New("topic cannot be empty"), "Provide a topic to generate squares for.")
	}

	themeID := theme.ID(opts.themeName)
	if !theme.Valid(themeID) {
		return newCommandError("generate", fmt.Sprintf("validating theme %q", opts.themeName), errors.New("unknown theme"), "Valid themes: neon-pink, cyber-blue, toxic-green, sunset-orange, royal-purple.")
	}

	app, err := openAppEnv(rootFlags)
	if err != nil {
		return err
	}
	defer app.Close()

	gen, err := newGeneratorFactory(app.cfg)()
	if err != nil {
		return newCommandError("generate", "configuring the generator", err, "Set GEMINI_API_KEY in the environment or a .env file.")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), app.cfg.GeneratorTimeout())
	defer cancel()

	app.log.WithFields(map[string]any{"topic": topic}).Info("generating items")

	items, err := gen.Generate(ctx, topic)
	if err != nil {
		app.log.Error(err, "generation failed")
		return newCommandError("generate", fmt.Sprintf("generating squares for %q", topic), err, "Check your network connection and API key, then retry.")
	}

	if opts.title == "" {
		for i, item := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, item)
		}
		return nil
	}

	draft := card.NewDraft()
	draft.SetTitle(opts.title)
	draft.SetTheme(themeID)
	draft.SetItems(items)

	c, err := draft.Build()
	if err != nil {
		return newCommandError("generate", "building card", err, "Provide a non-empty title.")
	}

	if err := app.store.UpsertCard(c); err != nil {
		return newCommandError("generate", "saving card", err, "Check state directory permissions and try again.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved card '%s' (%s) with %d squares\n", c.ID, c.Title, len(c.Items))
	return nil
}
