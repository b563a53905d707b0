// Package gif implements the GIF-share module: catalog search and
// selection for the slash command and share handling for button clicks.
package gif

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/clipcat/discord-gifbot-go/internal/catalog"
	"github.com/clipcat/discord-gifbot-go/internal/discordutil"
	apperrors "github.com/clipcat/discord-gifbot-go/internal/errors"
	"github.com/clipcat/discord-gifbot-go/internal/logger"
	"github.com/clipcat/discord-gifbot-go/internal/sentry"
)

// maxPickerItems is the display cap for search results. It follows from
// the component layout: rows of two buttons, at most five rows.
const maxPickerItems = discordutil.MaxPickerItems

// CommandName is the registered slash command.
const CommandName = "gif"

// SearchOptionName is the optional free-text search option on the command.
const SearchOptionName = "search"

// Catalog fetches the full media listing.
type Catalog interface {
	Fetch(ctx context.Context) ([]catalog.Item, error)
}

// Handler implements the GIF command and share-button logic.
type Handler struct {
	catalog      Catalog
	mediaBaseURL string
	logger       *logger.Logger
}

// NewHandler creates a GIF module handler.
func NewHandler(cat Catalog, mediaBaseURL string, log *logger.Logger) *Handler {
	return &Handler{
		catalog:      cat,
		mediaBaseURL: mediaBaseURL,
		logger:       log.WithModule("gif"),
	}
}

// HandleCommand serves one slash-command invocation. A blank term yields
// a public random pick; a non-blank term yields an ephemeral picker of up
// to ten shuffled matches. The response is always non-nil; a non-nil
// error means the catalog was unreachable and the response degraded to an
// ephemeral error message.
func (h *Handler) HandleCommand(ctx context.Context, term string) (*discordgo.InteractionResponse, error) {
	term = strings.TrimSpace(term)

	items, err := h.catalog.Fetch(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Catalog fetch failed")
		sentry.CaptureException(err)
		return ephemeralMessage(catalogUnavailableMessage), err
	}

	if term == "" {
		return h.randomPick(items), nil
	}
	return h.searchPicker(items, term), nil
}

func (h *Handler) randomPick(items []catalog.Item) *discordgo.InteractionResponse {
	item, ok := catalog.PickRandom(items)
	if !ok {
		// Empty catalog. Treated as a normal no-results outcome.
		h.logger.WithError(apperrors.ErrEmptyCatalog).Warn("Catalog returned no items")
		return ephemeralMessage(emptyCatalogMessage)
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				discordutil.NewItemEmbed(item, h.mediaBaseURL),
			},
		},
	}
}

func (h *Handler) searchPicker(items []catalog.Item, term string) *discordgo.InteractionResponse {
	matches := catalog.Search(items, term)
	if len(matches) == 0 {
		return ephemeralMessage(noResultsMessage(term))
	}

	shown := catalog.Shuffle(matches)
	if len(shown) > maxPickerItems {
		shown = shown[:maxPickerItems]
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    pickerHeader(len(matches), term),
			Embeds:     discordutil.NewItemEmbeds(shown, h.mediaBaseURL),
			Components: discordutil.NewPickerComponents(shown),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	}
}

// HandleComponent serves one button click. It returns the synchronous
// update-message response and, for recognized share actions, the public
// follow-up payload the caller delivers asynchronously. The follow-up is
// nil when the custom ID is not a share action.
func (h *Handler) HandleComponent(customID string) (*discordgo.InteractionResponse, *discordgo.WebhookParams) {
	path, tags, ok := discordutil.DecodeShareID(customID)
	if !ok {
		h.logger.WithError(apperrors.ErrUnknownAction).WithField("custom_id", customID).Warn("Component click with unknown action")
		return updateMessage(unknownActionMessage), nil
	}

	item := catalog.Item{URL: path, Tags: tags}
	followUp := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{
			discordutil.NewItemEmbed(item, h.mediaBaseURL),
		},
	}

	return updateMessage(confirmationMessage(path)), followUp
}

// ephemeralMessage builds an immediate reply visible only to the invoker.
func ephemeralMessage(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}

// updateMessage edits the original message down to plain text. The empty
// slices are deliberate: they clear any embeds and buttons on the edited
// message.
func updateMessage(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	}
}
