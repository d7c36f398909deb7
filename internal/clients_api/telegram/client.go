// Package telegram delivers rendered charts to a Telegram chat.
// Every call goes through a rate limiter, a circuit breaker and the retry policy.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"supply-chain-insights/internal/infra/log"
	"supply-chain-insights/internal/infra/retry"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// MaxCaptionLength is Telegram's limit for photo captions.
const MaxCaptionLength = 1024

type Options struct {
	Token         string
	APIEndpoint   string // printf pattern with token and method, defaults to tgbotapi.APIEndpoint
	Timeout       time.Duration
	MaxRetries    int
	RatePerSecond float64
	BaseDelay     time.Duration
	MaxDelay      time.Duration
}

type Client struct {
	bot            *tgbotapi.BotAPI
	rateLimiter    *rate.Limiter
	circuitBreaker *gobreaker.CircuitBreaker
	retry          retry.Options
}

// NewClient authenticates the bot token with getMe.
func NewClient(opts Options) (*Client, error) {
	if opts.Token == "" {
		return nil, errors.New("telegram: bot token is empty")
	}
	if opts.APIEndpoint == "" {
		opts.APIEndpoint = tgbotapi.APIEndpoint
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = 1
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = 30 * time.Second
	}

	httpClient := &http.Client{Timeout: opts.Timeout}
	bot, err := tgbotapi.NewBotAPIWithClient(opts.Token, opts.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("telegram: failed to authorize bot: %w", toAPIError(err))
	}

	circuitBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "TelegramAPI",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.LogWarn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	log.LogInfo("Telegram bot authorized", zap.String("username", bot.Self.UserName))

	return &Client{
		bot:            bot,
		rateLimiter:    rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1),
		circuitBreaker: circuitBreaker,
		retry: retry.Options{
			MaxRetries: opts.MaxRetries,
			BaseDelay:  opts.BaseDelay,
			MaxDelay:   opts.MaxDelay,
		},
	}, nil
}

// ParseChatID accepts a numeric chat id such as "-1001234567890".
func ParseChatID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("telegram: invalid chat id %q: %w", s, err)
	}
	return id, nil
}

// SendPhoto uploads the image at path to chatID and returns the message id.
func (c *Client) SendPhoto(ctx context.Context, chatID int64, path, caption string) (int, error) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	photo.Caption = TruncateCaption(caption)
	photo.ParseMode = tgbotapi.ModeHTML
	return c.send(ctx, "sendPhoto", photo)
}

// SendText posts an HTML message to chatID and returns the message id.
func (c *Client) SendText(ctx context.Context, chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return c.send(ctx, "sendMessage", msg)
}

func (c *Client) send(ctx context.Context, method string, chattable tgbotapi.Chattable) (int, error) {
	var sent tgbotapi.Message

	err := retry.Do(ctx, c.retry, func() error {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		requestID := log.GenerateRequestID()
		start := time.Now()
		log.LogRequest(requestID, method)

		result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			msg, err := c.bot.Send(chattable)
			if err != nil {
				return nil, toAPIError(err)
			}
			return msg, nil
		})
		log.LogResponse(requestID, method, err, time.Since(start).Milliseconds())
		if err != nil {
			return err
		}

		sent = result.(tgbotapi.Message)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("telegram %s: %w", method, err)
	}
	return sent.MessageID, nil
}

// toAPIError maps Telegram API failures onto retry.APIError so the retry
// policy can read the status code and retry_after.
func toAPIError(err error) error {
	var te *tgbotapi.Error
	if errors.As(err, &te) {
		return &retry.APIError{
			StatusCode: te.Code,
			Message:    te.Message,
			RetryAfter: time.Duration(te.RetryAfter) * time.Second,
		}
	}
	return err
}

// TruncateCaption cuts a caption to MaxCaptionLength runes. The cut falls on
// the last line break that fits, so HTML tags and entities of the kept lines
// stay whole; a single overlong line is cut mid-text.
func TruncateCaption(caption string) string {
	runes := []rune(caption)
	if len(runes) <= MaxCaptionLength {
		return caption
	}
	kept := runes[:MaxCaptionLength-1]
	for i := len(kept) - 1; i > 0; i-- {
		if kept[i] == '\n' {
			kept = kept[:i+1]
			break
		}
	}
	return string(kept) + "…"
}
