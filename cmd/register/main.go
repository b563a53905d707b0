// Package main registers the bot's slash commands with Discord.
//
// One-shot administrative tool, not part of the request-serving path.
// Run it once after deploying or whenever the command definitions change.
// With DISCORD_GUILD_ID set, commands are registered for that guild only
// (instant propagation, useful for testing); otherwise globally.
package main

import (
	"fmt"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/clipcat/discord-gifbot-go/internal/config"
	"github.com/clipcat/discord-gifbot-go/internal/gif"
	"github.com/clipcat/discord-gifbot-go/internal/logger"
)

func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        gif.CommandName,
			Description: "Share a random or searched GIF from the catalog",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        gif.SearchOptionName,
					Description: "Keywords to search for",
					Required:    false,
				},
			},
		},
	}
}

func main() {
	cfg, err := config.LoadForMode(config.RegisterMode)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.WithError(err).Error("Failed to create Discord session")
		os.Exit(1)
	}

	registered, err := session.ApplicationCommandBulkOverwrite(cfg.DiscordAppID, cfg.DiscordGuildID, commands())
	if err != nil {
		log.WithError(err).Error("Failed to register commands")
		os.Exit(1)
	}

	scope := "global"
	if cfg.DiscordGuildID != "" {
		scope = "guild " + cfg.DiscordGuildID
	}
	log.WithField("count", len(registered)).
		WithField("scope", scope).
		Info("Commands registered")
}
