package gif

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/clipcat/discord-gifbot-go/internal/catalog"
	"github.com/clipcat/discord-gifbot-go/internal/discordutil"
	apperrors "github.com/clipcat/discord-gifbot-go/internal/errors"
	"github.com/clipcat/discord-gifbot-go/internal/logger"
)

const testMediaBase = "https://media.example.com"

type stubCatalog struct {
	items []catalog.Item
	err   error
}

func (s *stubCatalog) Fetch(ctx context.Context) ([]catalog.Item, error) {
	return s.items, s.err
}

func newTestHandler(items []catalog.Item, err error) *Handler {
	return NewHandler(&stubCatalog{items: items, err: err}, testMediaBase, logger.New("error"))
}

func TestHandleCommandRandomPick(t *testing.T) {
	t.Parallel()

	h := newTestHandler([]catalog.Item{{URL: "a.gif"}}, nil)
	resp, err := h.HandleCommand(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Fatalf("response type = %v, want channel message", resp.Type)
	}
	if resp.Data.Flags&discordgo.MessageFlagsEphemeral != 0 {
		t.Error("random pick must be public, not ephemeral")
	}
	if len(resp.Data.Embeds) != 1 {
		t.Fatalf("got %d embeds, want 1", len(resp.Data.Embeds))
	}
	if !strings.Contains(resp.Data.Embeds[0].Image.URL, "a.gif") {
		t.Errorf("embed image = %q, want it to reference a.gif", resp.Data.Embeds[0].Image.URL)
	}
	if len(resp.Data.Components) != 0 {
		t.Error("single-item reply must carry no buttons")
	}
}

func TestHandleCommandEmptyCatalog(t *testing.T) {
	t.Parallel()

	h := newTestHandler(nil, nil)
	resp, err := h.HandleCommand(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Data.Flags&discordgo.MessageFlagsEphemeral == 0 {
		t.Error("empty-catalog reply must be ephemeral")
	}
	if resp.Data.Content != emptyCatalogMessage {
		t.Errorf("content = %q", resp.Data.Content)
	}
}

func TestHandleCommandCatalogFailure(t *testing.T) {
	t.Parallel()

	h := newTestHandler(nil, apperrors.NewCatalogError("https://c.example.com", 500, errors.New("boom")))
	resp, err := h.HandleCommand(context.Background(), "cat")

	var catErr *apperrors.CatalogError
	if !errors.As(err, &catErr) {
		t.Fatalf("err = %v, want the catalog error surfaced to the caller", err)
	}
	if resp == nil {
		t.Fatal("degraded response must still be non-nil")
	}
	if resp.Data.Flags&discordgo.MessageFlagsEphemeral == 0 {
		t.Error("catalog-failure reply must be ephemeral")
	}
	if resp.Data.Content != catalogUnavailableMessage {
		t.Errorf("content = %q", resp.Data.Content)
	}
	if strings.Contains(resp.Data.Content, "500") || strings.Contains(resp.Data.Content, "boom") {
		t.Error("raw error details must not reach the user")
	}
}

func TestHandleCommandSearchSingleMatch(t *testing.T) {
	t.Parallel()

	items := []catalog.Item{
		{URL: "dancing-cat.gif", Tags: "cat funny"},
		{URL: "rocket.gif", Tags: "space"},
	}
	h := newTestHandler(items, nil)
	resp, err := h.HandleCommand(context.Background(), "cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Data.Flags&discordgo.MessageFlagsEphemeral == 0 {
		t.Error("picker reply must be ephemeral")
	}
	if resp.Data.Content != `Found 1 GIF for "cat":` {
		t.Errorf("header = %q", resp.Data.Content)
	}
	if len(resp.Data.Embeds) != 1 {
		t.Errorf("got %d embeds, want 1", len(resp.Data.Embeds))
	}
	row, ok := resp.Data.Components[0].(discordgo.ActionsRow)
	if !ok || len(row.Components) != 1 {
		t.Fatalf("expected one row with one button, got %+v", resp.Data.Components)
	}
}

func TestHandleCommandSearchMatchesTagOnly(t *testing.T) {
	t.Parallel()

	h := newTestHandler([]catalog.Item{{URL: "clip.gif", Tags: "confetti party"}}, nil)
	resp, err := h.HandleCommand(context.Background(), "confetti")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Data.Embeds) != 1 {
		t.Errorf("term present only in tags must still match, got %d embeds", len(resp.Data.Embeds))
	}
}

func TestHandleCommandSearchNoResults(t *testing.T) {
	t.Parallel()

	h := newTestHandler([]catalog.Item{{URL: "a.gif", Tags: "cat"}}, nil)
	resp, err := h.HandleCommand(context.Background(), "zebra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Data.Content != `No GIFs found for "zebra". Try a different search.` {
		t.Errorf("content = %q", resp.Data.Content)
	}
	if resp.Data.Flags&discordgo.MessageFlagsEphemeral == 0 {
		t.Error("no-results reply must be ephemeral")
	}
	if len(resp.Data.Embeds) != 0 || len(resp.Data.Components) != 0 {
		t.Error("no-results reply must carry no embeds or buttons")
	}
}

func TestHandleCommandSearchTruncation(t *testing.T) {
	t.Parallel()

	items := make([]catalog.Item, 25)
	for i := range items {
		items[i] = catalog.Item{ID: int64(i), URL: "cat.gif", Tags: "cat"}
	}
	h := newTestHandler(items, nil)
	resp, err := h.HandleCommand(context.Background(), "cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Data.Embeds) != maxPickerItems {
		t.Errorf("got %d embeds, want exactly %d", len(resp.Data.Embeds), maxPickerItems)
	}
	if len(resp.Data.Components) != discordutil.MaxComponentRows {
		t.Errorf("got %d rows, want %d", len(resp.Data.Components), discordutil.MaxComponentRows)
	}
	if !strings.Contains(resp.Data.Content, "more specific") {
		t.Errorf("truncated header must hint at narrowing the search, got %q", resp.Data.Content)
	}
}

func TestHandleCommandExactCountHeaders(t *testing.T) {
	t.Parallel()

	items := make([]catalog.Item, 4)
	for i := range items {
		items[i] = catalog.Item{ID: int64(i), URL: "cat.gif", Tags: "cat"}
	}
	h := newTestHandler(items, nil)
	resp, err := h.HandleCommand(context.Background(), "cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Data.Content != `Found 4 GIFs for "cat":` {
		t.Errorf("header = %q", resp.Data.Content)
	}
	if len(resp.Data.Embeds) != 4 {
		t.Errorf("all %d matches must be shown, got %d", len(items), len(resp.Data.Embeds))
	}
}

func TestHandleComponentShare(t *testing.T) {
	t.Parallel()

	h := newTestHandler(nil, nil)
	customID := discordutil.EncodeShareID("dancing-cat.gif", "cat funny")

	resp, followUp := h.HandleComponent(customID)

	if resp.Type != discordgo.InteractionResponseUpdateMessage {
		t.Fatalf("response type = %v, want update message", resp.Type)
	}
	if !strings.Contains(resp.Data.Content, "dancing-cat.gif") {
		t.Errorf("confirmation must name the item, got %q", resp.Data.Content)
	}
	if len(resp.Data.Embeds) != 0 || len(resp.Data.Components) != 0 {
		t.Error("confirmation must clear embeds and buttons")
	}

	if followUp == nil {
		t.Fatal("share click must produce a follow-up payload")
	}
	if len(followUp.Embeds) != 1 {
		t.Fatalf("follow-up has %d embeds, want 1", len(followUp.Embeds))
	}
	if followUp.Embeds[0].Title != "dancing-cat.gif · cat funny" {
		t.Errorf("follow-up embed title = %q", followUp.Embeds[0].Title)
	}
	if followUp.Flags&discordgo.MessageFlagsEphemeral != 0 {
		t.Error("follow-up must be publicly visible")
	}
}

func TestHandleComponentUnknownAction(t *testing.T) {
	t.Parallel()

	h := newTestHandler(nil, nil)
	resp, followUp := h.HandleComponent("other_action:whatever")

	if resp.Type != discordgo.InteractionResponseUpdateMessage {
		t.Fatalf("response type = %v, want update message", resp.Type)
	}
	if resp.Data.Content != "Unknown action." {
		t.Errorf("content = %q", resp.Data.Content)
	}
	if len(resp.Data.Embeds) != 0 || len(resp.Data.Components) != 0 {
		t.Error("unknown-action edit must carry no embeds or buttons")
	}
	if followUp != nil {
		t.Error("unknown action must not produce a follow-up")
	}
}
