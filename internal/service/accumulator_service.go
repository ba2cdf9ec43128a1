package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	handleCacheTTL = 24 * time.Hour
	replayTTL      = 10 * time.Minute
)

// AccumulatorServiceImpl implements ports.AccumulatorService.
//
// Every mutation of one account happens under that account's row lock inside
// a single database transaction, so contributions from the same identity
// apply strictly in admission order and a failing submission leaves no trace.
type AccumulatorServiceImpl struct {
	accountRepo ports.AccountRepository
	handleRepo  ports.HandleRepository
	eventRepo   ports.EventRepository
	capSvc      ports.CapabilityService
	engine      ports.EncryptionEngine
	transactor  ports.DBTransactor
	handleCache ports.HandleCache
	replayGuard ports.ReplayGuard
	log         zerolog.Logger
}

// NewAccumulatorService creates a new AccumulatorServiceImpl.
func NewAccumulatorService(
	accountRepo ports.AccountRepository,
	handleRepo ports.HandleRepository,
	eventRepo ports.EventRepository,
	capSvc ports.CapabilityService,
	engine ports.EncryptionEngine,
	transactor ports.DBTransactor,
	handleCache ports.HandleCache,
	replayGuard ports.ReplayGuard,
	log zerolog.Logger,
) *AccumulatorServiceImpl {
	return &AccumulatorServiceImpl{
		accountRepo: accountRepo,
		handleRepo:  handleRepo,
		eventRepo:   eventRepo,
		capSvc:      capSvc,
		engine:      engine,
		transactor:  transactor,
		handleCache: handleCache,
		replayGuard: replayGuard,
		log:         log,
	}
}

// SubmitContribution folds an encrypted contribution into the submitter's
// running total and returns the new total handle.
func (s *AccumulatorServiceImpl) SubmitContribution(ctx context.Context, req ports.SubmitRequest) (result *ports.SubmitResult, err error) {
	if req.Proof == "" {
		return nil, apperror.ErrInvalidProof(ErrEmptyProof)
	}
	if len(req.Ciphertext) == 0 {
		return nil, apperror.ErrMalformedCiphertext(ErrMalformedCiphertext)
	}

	// Replay check on the ciphertext/proof pair. A fresh encryption always
	// produces fresh bytes, so an exact repeat is a resubmission, not a new
	// contribution. The guard is advisory: on store failure we log and
	// continue, matching the degraded-mode policy of the other Redis paths.
	digest := submissionDigest(req.Ciphertext, req.Proof)
	fresh, guardErr := s.replayGuard.CheckAndSet(ctx, req.Submitter.String(), digest, replayTTL)
	switch {
	case guardErr != nil:
		s.log.Warn().Err(guardErr).Str("submitter", req.Submitter.String()).Msg("replay guard unavailable, allowing submission")
	case !fresh:
		return nil, apperror.ErrProofReplayed()
	default:
		// The digest belongs to a committed submission only. If anything
		// below fails, release it so the caller's resubmission of the same
		// pair is not rejected as a replay.
		defer func() {
			if err == nil {
				return
			}
			if rerr := s.replayGuard.Release(ctx, req.Submitter.String(), digest); rerr != nil {
				s.log.Warn().Err(rerr).Str("submitter", req.Submitter.String()).Msg("failed to release replay digest after aborted submission")
			}
		}()
	}

	// Engine-side proof verification. Nothing has been written yet, so a
	// failure here aborts with zero state change.
	contribution, err := s.engine.VerifyAndDecode(req.Ciphertext, req.Proof, req.Submitter)
	if err != nil {
		if errors.Is(err, ErrMalformedCiphertext) {
			return nil, apperror.ErrMalformedCiphertext(err)
		}
		return nil, apperror.ErrInvalidProof(err)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Materialize the account row before locking it. FOR UPDATE on an
	// absent row locks nothing, and two racing first contributions would
	// each seed from zero and overwrite the other's total.
	if err := s.accountRepo.Ensure(ctx, dbTx, req.Submitter); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ensure account: %w", err))
	}

	// Lock the account row for the duration of the accumulation.
	acct, err := s.accountRepo.GetByOwnerForUpdate(ctx, dbTx, req.Submitter)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}

	// Resolve the current total: the stored ciphertext, or encrypted zero
	// for a first contribution.
	var current []byte
	if acct != nil && acct.HasTotal {
		current = acct.TotalCiphertext
	} else {
		current, err = s.engine.EncryptZero()
		if err != nil {
			return nil, apperror.ErrEngineFailure(fmt.Errorf("encrypt zero: %w", err))
		}
	}

	newTotal, err := s.engine.Add(current, contribution)
	if err != nil {
		return nil, apperror.ErrEngineFailure(fmt.Errorf("homomorphic add: %w", err))
	}

	now := time.Now().UTC()
	newHandle := s.engine.ToExternalHandle(newTotal)
	contribHandle := s.engine.ToExternalHandle(contribution)

	// Record both handles in the immutable history: the total so grants on
	// it stay resolvable after later accumulations, the contribution so the
	// audit reference resolves.
	for _, sh := range []*domain.StoredHandle{
		{Handle: newHandle, OwnerID: req.Submitter, Ciphertext: newTotal, CreatedAt: now},
		{Handle: contribHandle, OwnerID: req.Submitter, Ciphertext: contribution, CreatedAt: now},
	} {
		if err := s.handleRepo.Insert(ctx, dbTx, sh); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("record handle: %w", err))
		}
	}

	first := acct == nil || !acct.HasTotal
	if acct == nil {
		acct = &domain.Account{OwnerID: req.Submitter, CreatedAt: now}
	}
	acct.TotalHandle = newHandle
	acct.TotalCiphertext = newTotal
	acct.HasTotal = true
	acct.UpdatedAt = now

	if err := s.accountRepo.Save(ctx, dbTx, acct); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save account: %w", err))
	}

	// Mandatory grants on the new handle: processing authority and owner.
	if err := s.capSvc.GrantInitialRights(ctx, dbTx, newHandle, req.Submitter); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("grant initial rights: %w", err))
	}

	if err := s.eventRepo.Append(ctx, dbTx, domain.ContributionAccepted(req.Submitter, contribHandle, newHandle)); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append audit event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-commit: refresh the read cache (best-effort).
	if err := s.handleCache.Set(ctx, req.Submitter, newHandle, handleCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("owner", req.Submitter.String()).Msg("failed to cache total handle")
	}

	s.log.Info().
		Str("owner", req.Submitter.String()).
		Str("contribution_handle", contribHandle.String()).
		Str("total_handle", newHandle.String()).
		Bool("first_contribution", first).
		Msg("contribution accumulated")

	return &ports.SubmitResult{
		OwnerID:            req.Submitter,
		ContributionHandle: contribHandle,
		NewTotalHandle:     newHandle,
	}, nil
}

// GetTotalHandle returns the current total handle of any identity, or the
// null sentinel if nothing has been accumulated. It never fails on absent
// accounts and never reveals plaintext.
func (s *AccumulatorServiceImpl) GetTotalHandle(ctx context.Context, owner uuid.UUID) (domain.Handle, error) {
	if h, ok, err := s.handleCache.Get(ctx, owner); err != nil {
		s.log.Warn().Err(err).Str("owner", owner.String()).Msg("handle cache read failed, falling through to DB")
	} else if ok {
		return h, nil
	}

	acct, err := s.accountRepo.GetByOwner(ctx, owner)
	if err != nil {
		return domain.NullHandle, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}

	h := acct.CurrentHandle()
	if !h.IsNull() {
		if err := s.handleCache.Set(ctx, owner, h, handleCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("owner", owner.String()).Msg("failed to cache total handle")
		}
	}
	return h, nil
}

// submissionDigest keys the replay guard. Hashing keeps proof material out
// of Redis keys.
func submissionDigest(ciphertext []byte, proof string) string {
	h := sha256.New()
	h.Write(ciphertext)
	h.Write([]byte(proof))
	return hex.EncodeToString(h.Sum(nil))
}
