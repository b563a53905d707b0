// Package discordutil provides utility functions for building Discord
// messages and components within the platform's structural limits.
package discordutil

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/clipcat/discord-gifbot-go/internal/catalog"
)

// embedTitleSeparator joins the item path and its tag string in an embed
// title.
const embedTitleSeparator = " · "

// buttonLabelPrefix prefixes every picker button label.
const buttonLabelPrefix = "Post "

// JoinMediaURL joins the fixed media base address with an item path.
func JoinMediaURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// NewItemEmbed builds the single-item visual embed: the item path as the
// title (with the tag string appended when non-empty) and the media
// reference as the image.
func NewItemEmbed(item catalog.Item, mediaBaseURL string) *discordgo.MessageEmbed {
	title := item.URL
	if item.Tags != "" {
		title += embedTitleSeparator + item.Tags
	}

	return &discordgo.MessageEmbed{
		Title: TruncateRunes(title, MaxEmbedTitleLength),
		Image: &discordgo.MessageEmbedImage{
			URL: JoinMediaURL(mediaBaseURL, item.URL),
		},
	}
}

// NewItemEmbeds builds one embed per item, capped at the per-message
// embed limit.
func NewItemEmbeds(items []catalog.Item, mediaBaseURL string) []*discordgo.MessageEmbed {
	if len(items) > MaxEmbedsPerMessage {
		items = items[:MaxEmbedsPerMessage]
	}
	embeds := make([]*discordgo.MessageEmbed, len(items))
	for i, item := range items {
		embeds[i] = NewItemEmbed(item, mediaBaseURL)
	}
	return embeds
}

// NewPickerComponents builds one button per item, grouped into action
// rows of PickerButtonsPerRow, capped at the five-row limit. Each button
// carries a share custom ID encoding the item path and tags.
func NewPickerComponents(items []catalog.Item) []discordgo.MessageComponent {
	if len(items) > MaxPickerItems {
		items = items[:MaxPickerItems]
	}

	var rows []discordgo.MessageComponent
	for start := 0; start < len(items); start += PickerButtonsPerRow {
		end := min(start+PickerButtonsPerRow, len(items))

		buttons := make([]discordgo.MessageComponent, 0, PickerButtonsPerRow)
		for _, item := range items[start:end] {
			buttons = append(buttons, discordgo.Button{
				Label:    buttonLabel(item.URL),
				Style:    discordgo.PrimaryButton,
				CustomID: EncodeShareID(item.URL, item.Tags),
			})
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}
	return rows
}

func buttonLabel(name string) string {
	return buttonLabelPrefix + TruncateRunes(name, MaxButtonLabelLength-len(buttonLabelPrefix))
}
