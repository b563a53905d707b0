// Package webhook provides the Discord interactions endpoint: signature
// verification, payload parsing, and dispatch by interaction type.
package webhook

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/clipcat/discord-gifbot-go/internal/ctxutil"
	apperrors "github.com/clipcat/discord-gifbot-go/internal/errors"
	"github.com/clipcat/discord-gifbot-go/internal/gif"
	"github.com/clipcat/discord-gifbot-go/internal/logger"
	"github.com/clipcat/discord-gifbot-go/internal/metrics"
	"github.com/gin-gonic/gin"
)

// stopTimeout bounds how long Stop waits for in-flight follow-ups.
const stopTimeout = 5 * time.Second

// FollowupSender delivers a follow-up message for an interaction.
// *discordgo.Session satisfies it.
type FollowupSender interface {
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Handler handles Discord interaction webhooks.
type Handler struct {
	publicKey ed25519.PublicKey
	gif       *gif.Handler
	sender    FollowupSender
	metrics   *metrics.Metrics
	logger    *logger.Logger
	wg        sync.WaitGroup // Tracks async follow-up deliveries
}

// HandlerConfig holds configuration for creating a new Handler.
type HandlerConfig struct {
	// PublicKeyHex is the hex-encoded Ed25519 application public key.
	// A malformed or wrong-length key is not fatal: every request then
	// fails verification with 401.
	PublicKeyHex string
	Gif          *gif.Handler
	Sender       FollowupSender
	Metrics      *metrics.Metrics
	Logger       *logger.Logger
}

// NewHandler creates a new interaction webhook handler.
func NewHandler(cfg HandlerConfig) *Handler {
	h := &Handler{
		gif:     cfg.Gif,
		sender:  cfg.Sender,
		metrics: cfg.Metrics,
		logger:  cfg.Logger.WithModule("webhook"),
	}

	key, err := hex.DecodeString(cfg.PublicKeyHex)
	if err != nil || len(key) != ed25519.PublicKeySize {
		h.logger.Warn("Public key is not a valid Ed25519 key; all requests will be rejected")
	} else {
		h.publicKey = key
	}

	return h
}

// Handle is the Gin handler for POST /interactions.
func (h *Handler) Handle(c *gin.Context) {
	// 1. Signature gate. Runs before any payload parsing; a failure
	// terminates the request with 401 and no further work.
	if !h.verify(c.Request) {
		h.metrics.SignatureRejectionsTotal.Inc()
		h.logger.WithError(apperrors.ErrInvalidSignature).Warn("Invalid interaction signature")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid request signature"})
		return
	}

	// 2. Parse the verified payload.
	var interaction discordgo.Interaction
	if err := json.NewDecoder(c.Request.Body).Decode(&interaction); err != nil {
		h.logger.WithError(err).Warn("Failed to parse interaction payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed interaction payload"})
		return
	}

	// 3. Dispatch by interaction type.
	start := time.Now()
	switch interaction.Type {
	case discordgo.InteractionPing:
		h.handlePing(c, start)
	case discordgo.InteractionApplicationCommand:
		setInteractionType(c, "command")
		h.handleCommand(c, &interaction, start)
	case discordgo.InteractionMessageComponent:
		setInteractionType(c, "component")
		h.handleComponent(c, &interaction, start)
	default:
		h.metrics.UnknownInteractionsTotal.Inc()
		h.logger.WithError(apperrors.ErrUnknownInteraction).WithField("interaction_type", int(interaction.Type)).Warn("Unrecognized interaction type")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported interaction type"})
	}
}

// setInteractionType records the dispatched type on the request context so
// detached contexts for async work carry it alongside the request ID.
func setInteractionType(c *gin.Context, interactionType string) {
	c.Request = c.Request.WithContext(ctxutil.WithInteractionType(c.Request.Context(), interactionType))
}

// verify checks the Ed25519 signature over timestamp+body. Malformed hex
// in the key or signature headers counts as verification failure.
func (h *Handler) verify(r *http.Request) bool {
	if len(h.publicKey) != ed25519.PublicKeySize {
		return false
	}
	return discordgo.VerifyInteraction(r, h.publicKey)
}

func (h *Handler) handlePing(c *gin.Context, start time.Time) {
	c.JSON(http.StatusOK, discordgo.InteractionResponse{
		Type: discordgo.InteractionResponsePong,
	})
	h.metrics.RecordInteraction("ping", "success", time.Since(start).Seconds())
}

func (h *Handler) handleCommand(c *gin.Context, interaction *discordgo.Interaction, start time.Time) {
	var term string
	if data, ok := interaction.Data.(discordgo.ApplicationCommandInteractionData); ok {
		for _, opt := range data.Options {
			if opt.Name == gif.SearchOptionName && opt.Type == discordgo.ApplicationCommandOptionString {
				term = opt.StringValue()
			}
		}
	}

	resp, err := h.gif.HandleCommand(c.Request.Context(), term)
	c.JSON(http.StatusOK, resp)

	status := "success"
	if err != nil {
		status = "error"
	}
	h.metrics.RecordInteraction("command", status, time.Since(start).Seconds())
}

func (h *Handler) handleComponent(c *gin.Context, interaction *discordgo.Interaction, start time.Time) {
	var customID string
	if data, ok := interaction.Data.(discordgo.MessageComponentInteractionData); ok {
		customID = data.CustomID
	}

	resp, followUp := h.gif.HandleComponent(customID)

	// The follow-up is scheduled before the response is written but never
	// blocks it. Its outcome cannot affect the already-decided reply.
	status := "error" // No follow-up means the custom ID was not a share action.
	if followUp != nil {
		status = "success"
		h.deliverFollowupAsync(c, interaction, followUp)
	}

	c.JSON(http.StatusOK, resp)
	h.metrics.RecordInteraction("component", status, time.Since(start).Seconds())
}

// deliverFollowupAsync posts the public follow-up message for a share
// click. Fire-and-forget: failures are counted and logged, nothing more.
// The delivery runs on a context detached from the request so it survives
// the response being written, while keeping the tracing values.
func (h *Handler) deliverFollowupAsync(c *gin.Context, interaction *discordgo.Interaction, params *discordgo.WebhookParams) {
	ctx := ctxutil.PreserveTracing(c.Request.Context())

	log := h.logger
	if requestID, ok := ctxutil.GetRequestID(ctx); ok {
		log = log.WithRequestID(requestID)
	}
	if interactionType := ctxutil.GetInteractionType(ctx); interactionType != "" {
		log = log.WithField("interaction_type", interactionType)
	}

	h.wg.Go(func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Panic in follow-up delivery")
			}
		}()

		if _, err := h.sender.FollowupMessageCreate(interaction, false, params, discordgo.WithContext(ctx)); err != nil {
			h.metrics.RecordFollowup("error")
			log.WithError(err).Warn("Follow-up delivery failed")
			return
		}
		h.metrics.RecordFollowup("success")
	})
}

// Stop waits for in-flight follow-up deliveries to settle, bounded by
// stopTimeout.
func (h *Handler) Stop() {
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(stopTimeout):
		h.logger.Warn("Timeout waiting for follow-up deliveries to finish")
	}
}
