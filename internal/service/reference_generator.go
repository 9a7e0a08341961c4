package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
)

const (
	referenceTimeLayout = "20060102150405"
	batchPrefix         = "SETTLE"
	base36Alphabet      = "0123456789abcdefghijklmnopqrstuvwxyz"
	batchSuffixLen      = 9
)

// ReferenceGeneratorService implements ports.ReferenceGenerator.
type ReferenceGeneratorService struct {
	attempts int
	random   io.Reader
	now      func() time.Time
}

// NewReferenceGenerator creates a generator that tries up to attempts
// candidates before giving up.
func NewReferenceGenerator(attempts int) *ReferenceGeneratorService {
	if attempts < 1 {
		attempts = 1
	}
	return &ReferenceGeneratorService{attempts: attempts, random: rand.Reader, now: time.Now}
}

// Generate returns PREFIX-yyyyMMddHHmmss-XXXXXXXX, where the suffix is 8
// uppercase hex digits. exists, when non-nil, is asked about each candidate.
func (g *ReferenceGeneratorService) Generate(ctx context.Context, prefix string, exists ports.ReferenceExistsFunc) (string, error) {
	for i := 0; i < g.attempts; i++ {
		suffix := make([]byte, 4)
		if _, err := io.ReadFull(g.random, suffix); err != nil {
			return "", apperror.InternalError(fmt.Errorf("read random suffix: %w", err))
		}
		ref := fmt.Sprintf("%s-%s-%s", prefix, g.now().UTC().Format(referenceTimeLayout), strings.ToUpper(hex.EncodeToString(suffix)))

		if exists == nil {
			return ref, nil
		}
		taken, err := exists(ctx, ref)
		if err != nil {
			return "", apperror.InternalError(fmt.Errorf("check reference %s: %w", ref, err))
		}
		if !taken {
			return ref, nil
		}
	}
	return "", apperror.ErrConflict(fmt.Sprintf("could not allocate a unique %s reference", prefix))
}

// BatchReference returns SETTLE-<epochMillis>-<9 base36 chars>.
func (g *ReferenceGeneratorService) BatchReference() string {
	buf := make([]byte, batchSuffixLen)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(fmt.Sprintf("read random batch suffix: %v", err))
	}
	for i, b := range buf {
		buf[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}
	return batchPrefix + "-" + strconv.FormatInt(g.now().UnixMilli(), 10) + "-" + string(buf)
}
