package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sfomin/gw-currency-rates/internal/conversation"
	"github.com/sfomin/gw-currency-rates/internal/facades"
	"github.com/sfomin/gw-currency-rates/internal/logger"
	"github.com/sfomin/gw-currency-rates/internal/models"
	"github.com/sfomin/gw-currency-rates/internal/services"
)

// Reply is what the chat transport renders for the user. Options are
// keyboard hints; the transport owns their presentation.
type Reply struct {
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
}

// Store is the contract of the reference store client.
type Store interface {
	Add(ctx context.Context, code string, rate decimal.Decimal) error
	Update(ctx context.Context, code string, rate decimal.Decimal) error
	Delete(ctx context.Context, code string) error
	List(ctx context.Context) ([]models.Currency, error)
	Convert(ctx context.Context, code string, amount decimal.Decimal) (*models.Conversion, error)
}

// RateHinter suggests a current market rate for a currency code.
type RateHinter interface {
	GetRateToRUB(ctx context.Context, code string) (decimal.Decimal, error)
}

// Orchestrator translates raw user turns into conversation transitions
// and completed conversations into exactly one store call each.
type Orchestrator struct {
	sessions *SessionStore
	store    Store
	hinter   RateHinter // optional
	admins   map[string]struct{}
}

// NewOrchestrator creates an orchestrator. hinter may be nil; adminIDs
// lists the users allowed to mutate the currency table.
func NewOrchestrator(sessions *SessionStore, store Store, hinter RateHinter, adminIDs []string) *Orchestrator {
	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[strings.TrimSpace(id)] = struct{}{}
	}
	return &Orchestrator{
		sessions: sessions,
		store:    store,
		hinter:   hinter,
		admins:   admins,
	}
}

// manage operations require admin rights; list and convert do not.
var manageOps = map[string]struct{}{
	"add":    {},
	"update": {},
	"delete": {},
}

// HandleTurn feeds one user turn through the conversation engine and,
// when the conversation completes, dispatches the resulting request to
// the store. Every turn yields exactly one reply.
func (o *Orchestrator) HandleTurn(ctx context.Context, userID, text string) Reply {
	sess := o.sessions.Acquire(userID)
	defer sess.Release()

	command := strings.ToLower(strings.TrimSpace(text))

	// Commands outside the conversation proper. Each one discards any
	// operation in progress: partial state must not leak across
	// operations.
	switch command {
	case "start", "help":
		sess.SetState(conversation.Idle())
		return o.helpReply(userID)
	case "list":
		sess.SetState(conversation.Idle())
		return o.handleList(ctx)
	}

	if _, manage := manageOps[command]; manage {
		if !o.isAdmin(userID) {
			logger.Log.Warnw("manage operation denied", "user", userID, "operation", command)
			return Reply{Text: "You do not have access to currency management.", Options: o.menuOptions(userID)}
		}
		// A new top-level operation replaces whatever was in progress.
		sess.SetState(conversation.Idle())
	} else if command == "convert" {
		sess.SetState(conversation.Idle())
	}

	next, request, err := conversation.Advance(sess.State(), text)
	sess.SetState(next)

	if err != nil {
		return o.validationReply(userID, err)
	}

	if request != nil {
		return o.dispatch(ctx, userID, request)
	}

	return o.promptFor(ctx, userID, next)
}

func (o *Orchestrator) isAdmin(userID string) bool {
	_, ok := o.admins[userID]
	return ok
}

func (o *Orchestrator) menuOptions(userID string) []string {
	if o.isAdmin(userID) {
		return []string{"add", "update", "delete", "convert", "list"}
	}
	return []string{"convert", "list"}
}

func (o *Orchestrator) helpReply(userID string) Reply {
	return Reply{
		Text:    "Currency rates bot. Choose an operation.",
		Options: o.menuOptions(userID),
	}
}

// validationReply maps an engine validation error to a re-prompt. The
// session keeps everything collected so far.
func (o *Orchestrator) validationReply(userID string, err error) Reply {
	switch {
	case errors.Is(err, conversation.ErrInvalidCode):
		return Reply{Text: "Please enter a valid currency code (letters only)."}
	case errors.Is(err, conversation.ErrInvalidNumber):
		return Reply{Text: "Please enter a positive number, e.g. 75.5."}
	default:
		return Reply{
			Text:    "Unknown operation. Choose one of the options.",
			Options: o.menuOptions(userID),
		}
	}
}

// promptFor asks for the next field of the operation in progress.
func (o *Orchestrator) promptFor(ctx context.Context, userID string, state conversation.State) Reply {
	switch state.Phase {
	case conversation.PhaseAwaitingCode:
		return Reply{Text: "Enter the currency code:"}
	case conversation.PhaseAwaitingRate:
		text := fmt.Sprintf("Enter the rate of %s to RUB:", state.Code)
		if state.Op == conversation.OpAdd {
			if hint, ok := o.marketHint(ctx, state.Code); ok {
				text += fmt.Sprintf(" (market rate: %s)", hint)
			}
		}
		return Reply{Text: text}
	case conversation.PhaseAwaitingAmount:
		return Reply{Text: fmt.Sprintf("Enter the amount of %s:", state.Code)}
	default:
		return o.helpReply(userID)
	}
}

// marketHint fetches a market rate suggestion; failures only drop the
// hint, never the prompt.
func (o *Orchestrator) marketHint(ctx context.Context, code string) (string, bool) {
	if o.hinter == nil {
		return "", false
	}
	rate, err := o.hinter.GetRateToRUB(ctx, code)
	if err != nil {
		return "", false
	}
	return rate.StringFixed(2), true
}

// handleList is an immediate query with no conversation around it.
func (o *Orchestrator) handleList(ctx context.Context) Reply {
	currencies, err := o.store.List(ctx)
	if err != nil {
		logger.Log.Errorw("list failed", "err", err)
		return Reply{Text: "Service is temporarily unavailable, try again later."}
	}
	if len(currencies) == 0 {
		return Reply{Text: "No currencies stored yet."}
	}

	var b strings.Builder
	b.WriteString("Stored rates:\n")
	for _, c := range currencies {
		fmt.Fprintf(&b, "%s: %s RUB\n", c.Code, c.Rate.StringFixed(2))
	}
	return Reply{Text: strings.TrimRight(b.String(), "\n")}
}

// dispatch sends the completed request to the store and maps every
// outcome to one terminal reply. The conversation is already back at
// Idle whatever happens here.
func (o *Orchestrator) dispatch(ctx context.Context, userID string, req *conversation.Request) Reply {
	var err error
	var success string

	switch req.Op {
	case conversation.OpAdd:
		err = o.store.Add(ctx, req.Code, req.Rate)
		success = fmt.Sprintf("Currency %s added with rate %s.", req.Code, req.Rate)
	case conversation.OpUpdate:
		err = o.store.Update(ctx, req.Code, req.Rate)
		success = fmt.Sprintf("Rate of %s updated to %s.", req.Code, req.Rate)
	case conversation.OpDelete:
		err = o.store.Delete(ctx, req.Code)
		success = fmt.Sprintf("Currency %s deleted.", req.Code)
	case conversation.OpConvert:
		var conv *models.Conversion
		conv, err = o.store.Convert(ctx, req.Code, req.Amount)
		if err == nil {
			success = fmt.Sprintf("%s %s = %s RUB", req.Amount, req.Code, conv.Result.StringFixed(2))
		}
	default:
		return o.helpReply(userID)
	}

	if err != nil {
		return o.failureReply(userID, req, err)
	}

	return Reply{Text: success, Options: o.menuOptions(userID)}
}

func (o *Orchestrator) failureReply(userID string, req *conversation.Request, err error) Reply {
	logger.Log.Errorw("store call failed",
		"user", userID,
		"operation", req.Op.String(),
		"code", req.Code,
		"err", err,
	)

	switch {
	case errors.Is(err, services.ErrCurrencyAlreadyExists):
		return Reply{Text: fmt.Sprintf("Currency %s already exists.", req.Code), Options: o.menuOptions(userID)}
	case errors.Is(err, services.ErrCurrencyNotFound):
		return Reply{Text: fmt.Sprintf("Currency %s not found.", req.Code), Options: o.menuOptions(userID)}
	case errors.Is(err, facades.ErrStoreUnavailable):
		return Reply{
			Text:    "Service is temporarily unavailable. The operation may or may not have been applied, please check before retrying.",
			Options: o.menuOptions(userID),
		}
	default:
		return Reply{Text: "Something went wrong, try again later.", Options: o.menuOptions(userID)}
	}
}
