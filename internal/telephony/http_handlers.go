package telephony

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/dialog"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/prompts"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/store"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/pkg/logger"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/pkg/utils"
)

// Handlers converts Twilio voice webhooks into decisions and TwiML.
//
// No business logic lives here: the decision engine decides, this layer
// renders speech and triggers SMS/transfer actions.
type Handlers struct {
	Stores   *store.Resolver
	Behavior *store.BehaviorCache
	Engine   *dialog.Engine
	Transfer *Transferer
	Control  CallControl

	// GatherAction is the webhook path transcripts are posted back to.
	GatherAction string

	// Redis + StoreCap bound concurrent turns per store. Nil Redis disables
	// the cap.
	Redis    *redis.Client
	StoreCap int

	// TransferBudget bounds the background warm-transfer work so nothing
	// outlives its window.
	TransferBudget time.Duration
}

// HandleInboundVoice greets the caller for the resolved store and gathers
// speech.
func (h Handlers) HandleInboundVoice(c *gin.Context) {
	log := logger.FromGin(c)

	form, err := ParseInboundVoice(c.Request)
	if err != nil {
		log.Warn("voice webhook parse failed", "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}

	st := h.Stores.ResolveByDID(c.Request.Context(), form.Called)

	greeting := ""
	voice := ""
	if h.Behavior != nil {
		if b, ok := h.Behavior.Get(c.Request.Context(), st.ID); ok {
			greeting = b.Greeting
			voice = b.Voice
		}
	}

	resp := NewVoiceResponse().WithVoice(voice).
		Say(prompts.Greeting(st.Name, st.Location, greeting)).
		GatherSpeech(h.GatherAction)
	h.writeTwiML(c, resp)
}

// HandleGather runs one decision turn on the caller's transcript.
func (h Handlers) HandleGather(c *gin.Context) {
	log := logger.FromGin(c)

	form, err := ParseGather(c.Request)
	if err != nil {
		log.Warn("gather webhook parse failed", "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}

	st := h.Stores.ResolveByDID(c.Request.Context(), form.Called)

	if form.SpeechResult == "" {
		resp := NewVoiceResponse().Say(prompts.RepeatPrompt()).GatherSpeech(h.GatherAction)
		h.writeTwiML(c, resp)
		return
	}

	release, ok := h.acquireTurnSlot(c.Request.Context(), st.ID, log)
	if !ok {
		h.writeTwiML(c, NewVoiceResponse().Say(prompts.Busy()).Hangup())
		return
	}
	defer release()

	d := h.Engine.Decide(c.Request.Context(), form.SpeechResult, st, form.CallSid)
	log.Info("turn decided",
		"call_sid", form.CallSid,
		"store_id", st.ID,
		"intent", string(d.Intent),
		"outcome", string(d.Outcome),
	)

	h.writeTwiML(c, h.renderDecision(c.Request.Context(), d, st, form, log))
}

// renderDecision maps a decision to TwiML and fires any side actions.
func (h Handlers) renderDecision(ctx context.Context, d dialog.Decision, st store.Context, form GatherForm, log *slog.Logger) *VoiceResponse {
	resp := NewVoiceResponse()

	switch d.Outcome {
	case dialog.OutcomePriceFound:
		resp.Say(prompts.PriceFound(d.Price.Amount)).GatherSpeech(h.GatherAction)

	case dialog.OutcomePriceNotFound:
		resp.Say(prompts.PriceNotFound()).GatherSpeech(h.GatherAction)

	case dialog.OutcomePricingRestricted:
		resp.Say(prompts.PricingRestricted()).Pause(1)

	case dialog.OutcomeOfferBookingSMS:
		if st.BookingURL != "" && h.sendBookingSMS(ctx, form.From, st, log) {
			resp.Say(prompts.SMSSent()).GatherSpeech(h.GatherAction)
		} else {
			resp.Say(prompts.BookingOffer()).GatherSpeech(h.GatherAction)
		}

	case dialog.OutcomeWarmTransfer:
		h.startTransfer(d, form.CallSid, st, log)
		resp.Say(prompts.TransferConnecting()).Pause(30)

	default:
		resp.Say(prompts.Clarification()).GatherSpeech(h.GatherAction)
	}
	return resp
}

func (h Handlers) sendBookingSMS(ctx context.Context, to string, st store.Context, log *slog.Logger) bool {
	if h.Control == nil || to == "" {
		return false
	}
	if err := h.Control.SendSMS(ctx, to, prompts.BookingSMSBody(st.BookingURL)); err != nil {
		log.Warn("booking sms failed", "store_id", st.ID, "err", err)
		return false
	}
	log.Info("booking sms sent", "store_id", st.ID)
	return true
}

// startTransfer runs the warm transfer in the background under its own
// bounded context; the webhook response returns immediately while the caller
// hears the connecting script.
func (h Handlers) startTransfer(d dialog.Decision, callSid string, st store.Context, log *slog.Logger) {
	if h.Transfer == nil || d.Transfer == nil {
		return
	}
	budget := h.TransferBudget
	if budget <= 0 {
		budget = 45 * time.Second
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), budget)
		defer cancel()

		ok, err := h.Transfer.Run(ctx, callSid, d.Transfer.StorePhoneNumber, d.Transfer.BriefingText)
		if err != nil {
			log.Warn("warm transfer failed", "call_sid", callSid, "err", err)
		}
		if ok {
			log.Info("warm transfer bridged", "call_sid", callSid)
			return
		}
		h.transferFallback(ctx, callSid, log)
	}()
}

// transferFallback pulls the caller back out of hold and offers the booking
// link when staff never answered.
func (h Handlers) transferFallback(ctx context.Context, callSid string, log *slog.Logger) {
	if h.Control == nil {
		return
	}
	twiml, err := NewVoiceResponse().Say(prompts.TransferFailed()).GatherSpeech(h.GatherAction).Render()
	if err != nil {
		log.Warn("transfer fallback render failed", "err", err)
		return
	}
	if err := h.Control.UpdateCall(ctx, callSid, twiml); err != nil {
		log.Warn("transfer fallback redirect failed", "call_sid", callSid, "err", err)
	}
}

// acquireTurnSlot enforces the per-store concurrent-turn cap. The returned
// release must be called when the turn finishes.
func (h Handlers) acquireTurnSlot(ctx context.Context, storeID string, log *slog.Logger) (func(), bool) {
	if h.Redis == nil || h.StoreCap <= 0 {
		return func() {}, true
	}
	key := "assistant:turns:" + storeID
	ok, err := utils.AcquireConcurrencyCap(ctx, h.Redis, key, h.StoreCap, time.Minute)
	if err != nil {
		// Redis trouble must not take calls down; run uncapped.
		log.Warn("turn cap check failed, proceeding", "store_id", storeID, "err", err)
		return func() {}, true
	}
	if !ok {
		log.Info("turn cap reached", "store_id", storeID)
		return nil, false
	}
	return func() {
		if err := utils.ReleaseConcurrencyCap(context.WithoutCancel(ctx), h.Redis, key); err != nil {
			log.Warn("turn cap release failed", "store_id", storeID, "err", err)
		}
	}, true
}

func (h Handlers) writeTwiML(c *gin.Context, resp *VoiceResponse) {
	xml, err := resp.Render()
	if err != nil {
		logger.FromGin(c).Error("twiml render failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "twiml failed"})
		return
	}
	c.Header("Content-Type", "application/xml")
	c.String(http.StatusOK, xml)
}
