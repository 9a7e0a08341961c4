package service

import (
	"context"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// publishEvent is best-effort: the commit has already happened, so a
// failure is logged and swallowed.
func publishEvent(ctx context.Context, publisher ports.EventPublisher, log zerolog.Logger, event domain.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).
			Str("event", string(event.Type)).
			Str("reference", event.Reference).
			Msg("failed to publish event")
	}
}

// aborted logs a session that is about to roll back and returns err unchanged.
func aborted(log zerolog.Logger, operation, reference string, err error) error {
	log.Error().Err(err).
		Str("operation", operation).
		Str("reference", reference).
		Msg("session aborted")
	return err
}
