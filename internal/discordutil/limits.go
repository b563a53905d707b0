package discordutil

// Discord API Limits (Rune count unless noted)
// References: https://discord.com/developers/docs/interactions/message-components
const (
	MaxCustomIDLength    = 100 // Component custom_id length
	MaxButtonLabelLength = 80  // Button label length
	MaxEmbedTitleLength  = 256 // Embed title length
	MaxComponentRows     = 5   // Action rows per message
	MaxButtonsPerRow     = 5   // Buttons per action row (API limit)
	MaxEmbedsPerMessage  = 10  // Embeds per message
)

// Application-defined layout limits
const (
	// PickerButtonsPerRow keeps picker rows at two buttons so labels stay
	// readable on mobile. With the five-row cap this bounds a picker at
	// ten items, which is the display cap used throughout.
	PickerButtonsPerRow = 2

	// MaxPickerItems is the largest number of items one picker message
	// can represent.
	MaxPickerItems = PickerButtonsPerRow * MaxComponentRows
)
