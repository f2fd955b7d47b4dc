package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sfomin/gw-currency-rates/internal/logger"
	"github.com/sfomin/gw-currency-rates/internal/models"
)

// Error variables
var (
	ErrCurrencyAlreadyExists = errors.New("currency already exists")
	ErrCurrencyNotFound      = errors.New("currency not found")
)

// CurrencyWriter defines write operations on the currencies table.
type CurrencyWriter interface {
	Insert(ctx context.Context, code string, rate decimal.Decimal) (bool, error)
	UpdateRate(ctx context.Context, code string, rate decimal.Decimal) (bool, error)
	Delete(ctx context.Context, code string) (bool, error)
}

// RateCacheInvalidator drops cached rates after a mutation.
type RateCacheInvalidator interface {
	DeleteRate(ctx context.Context, code string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ManageService handles currency mutations and publishes audit events.
type ManageService struct {
	writer      CurrencyWriter
	cache       RateCacheInvalidator
	kafkaWriter KafkaWriter
}

// NewManageService creates a new ManageService. Cache and Kafka writer
// may be nil; the corresponding steps are then skipped.
func NewManageService(
	writer CurrencyWriter,
	cache RateCacheInvalidator,
	kafkaWriter KafkaWriter,
) *ManageService {
	return &ManageService{
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Add inserts a new currency. Uniqueness is decided by the table
// constraint, so two concurrent adds of one code yield exactly one
// ErrCurrencyAlreadyExists.
func (svc *ManageService) Add(ctx context.Context, code string, rate decimal.Decimal) error {
	inserted, err := svc.writer.Insert(ctx, code, rate)
	if err != nil {
		logger.Log.Errorw("failed to insert currency", "code", code, "err", err)
		return err
	}
	if !inserted {
		logger.Log.Errorw("currency already exists", "code", code)
		return ErrCurrencyAlreadyExists
	}

	svc.publishEvent(ctx, "add", code, rate)
	return nil
}

// Update changes the rate of an existing currency.
func (svc *ManageService) Update(ctx context.Context, code string, rate decimal.Decimal) error {
	updated, err := svc.writer.UpdateRate(ctx, code, rate)
	if err != nil {
		logger.Log.Errorw("failed to update currency", "code", code, "err", err)
		return err
	}
	if !updated {
		logger.Log.Errorw("currency not found", "code", code)
		return ErrCurrencyNotFound
	}

	svc.invalidateCache(ctx, code)
	svc.publishEvent(ctx, "update", code, rate)
	return nil
}

// Delete removes a currency.
func (svc *ManageService) Delete(ctx context.Context, code string) error {
	deleted, err := svc.writer.Delete(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to delete currency", "code", code, "err", err)
		return err
	}
	if !deleted {
		logger.Log.Errorw("currency not found", "code", code)
		return ErrCurrencyNotFound
	}

	svc.invalidateCache(ctx, code)
	svc.publishEvent(ctx, "delete", code, decimal.Zero)
	return nil
}

// invalidateCache drops the cached rate so readers pick up the change
// before the TTL expires. Failure only widens the staleness window.
func (svc *ManageService) invalidateCache(ctx context.Context, code string) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.DeleteRate(ctx, code); err != nil {
		logger.Log.Warnw("failed to invalidate rate cache", "code", code, "err", err)
	}
}

// publishEvent publishes a mutation event to Kafka for reconciliation.
func (svc *ManageService) publishEvent(ctx context.Context, operation, code string, rate decimal.Decimal) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "operation", operation, "code", code)
		return
	}

	event := models.CurrencyEvent{
		Operation: operation,
		Code:      code,
		Rate:      rate,
		At:        time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal currency event", "code", code, "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(code),
		Value: payload,
	}
	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish currency event", "code", code, "err", err)
	}
}
