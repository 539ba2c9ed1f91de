package store

import (
	"time"

	"github.com/streambingo/streambingo/internal/card"
	"github.com/streambingo/streambingo/internal/theme"
)

// SampleCard returns the built-in card seeded into an empty library on
// first use, so a new install has something to play immediately.
func SampleCard() card.Card {
	created := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	return card.Card{
		ID:          "tga-2025-official",
		Title:       "The Game Awards 2025",
		Description: "Official Bingo for the biggest night in gaming.",
		Theme:       theme.RoyalPurple,
		CreatedAt:   created,
		UpdatedAt:   created,
		Items: []string{
			"Hideo Kojima appears",
			"\"World Premiere\" teaser",
			"Geoff hypes \"one more thing\"",
			"Celebrity flubs a game title",
			"GTA 6 trailer or mention",
			"Orchestra plays a ballad",
			"Expedition 33 wins an award",
			"\"Available now!\" shadow drop",
			"Surprise from Nintendo",
			"Awkward co-host moment",
			"Fortnite crossover announced",
			"Mention of industry layoffs",
			"Death Stranding 2 content",
			"Elden Ring DLC teaser",
			"Unexpected celebrity cameo",
			"\"Global audience\" mention",
			"An Insomniac game showcase",
			"Developer tears up on stage",
			"Audio problems",
			"Speech about \"the future of games\"",
			"AI in games discussion",
			"Luigi meme or mention",
			"Crowd reaction shot",
			"Musical performance",
		},
	}
}
