package service

import (
	"context"
	"fmt"

	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// CapabilityServiceImpl implements ports.CapabilityService over the
// append-only grant relation. Grants are bound to handle values: sharing or
// publishing affects the owner's handle current at call time, never handles
// minted afterwards.
type CapabilityServiceImpl struct {
	accountRepo ports.AccountRepository
	grantRepo   ports.GrantRepository
	handleRepo  ports.HandleRepository
	eventRepo   ports.EventRepository
	oracle      ports.DecryptionOracle
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewCapabilityService creates a new CapabilityServiceImpl. oracle may be
// nil when no in-process trapdoor is available; DecryptHandle then always
// denies.
func NewCapabilityService(
	accountRepo ports.AccountRepository,
	grantRepo ports.GrantRepository,
	handleRepo ports.HandleRepository,
	eventRepo ports.EventRepository,
	oracle ports.DecryptionOracle,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *CapabilityServiceImpl {
	return &CapabilityServiceImpl{
		accountRepo: accountRepo,
		grantRepo:   grantRepo,
		handleRepo:  handleRepo,
		eventRepo:   eventRepo,
		oracle:      oracle,
		transactor:  transactor,
		log:         log,
	}
}

// GrantInitialRights issues the system and owner grants on a freshly minted
// handle, inside the accumulation's transaction. Idempotent by grant-set
// semantics.
func (s *CapabilityServiceImpl) GrantInitialRights(ctx context.Context, tx pgx.Tx, handle domain.Handle, owner uuid.UUID) error {
	if err := s.grantRepo.Create(ctx, tx, domain.SystemGrant(handle)); err != nil {
		return fmt.Errorf("system grant: %w", err)
	}
	if err := s.grantRepo.Create(ctx, tx, domain.OwnerGrant(handle, owner)); err != nil {
		return fmt.Errorf("owner grant: %w", err)
	}
	return nil
}

// ShareTotal grants viewer decrypt-rights on the owner's current handle.
func (s *CapabilityServiceImpl) ShareTotal(ctx context.Context, owner, viewer uuid.UUID) (domain.Handle, error) {
	if viewer == uuid.Nil || viewer == owner {
		return domain.NullHandle, apperror.ErrInvalidViewer()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return domain.NullHandle, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock the account so the handle being granted cannot advance under us.
	acct, err := s.accountRepo.GetByOwnerForUpdate(ctx, dbTx, owner)
	if err != nil {
		return domain.NullHandle, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if acct == nil || !acct.HasTotal {
		return domain.NullHandle, apperror.ErrNoTotalYet()
	}

	handle := acct.TotalHandle
	if err := s.grantRepo.Create(ctx, dbTx, domain.ViewerGrant(handle, viewer)); err != nil {
		return domain.NullHandle, apperror.InternalError(fmt.Errorf("viewer grant: %w", err))
	}

	if err := s.eventRepo.Append(ctx, dbTx, domain.TotalShared(owner, viewer, handle)); err != nil {
		return domain.NullHandle, apperror.InternalError(fmt.Errorf("append audit event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return domain.NullHandle, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("owner", owner.String()).
		Str("viewer", viewer.String()).
		Str("handle", handle.String()).
		Msg("total shared")

	return handle, nil
}

// MakeTotalPublic irreversibly marks the owner's current handle as publicly
// decryptable. A later accumulation mints a new, private handle.
func (s *CapabilityServiceImpl) MakeTotalPublic(ctx context.Context, owner uuid.UUID) (domain.Handle, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return domain.NullHandle, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	acct, err := s.accountRepo.GetByOwnerForUpdate(ctx, dbTx, owner)
	if err != nil {
		return domain.NullHandle, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if acct == nil || !acct.HasTotal {
		return domain.NullHandle, apperror.ErrNoTotalYet()
	}

	handle := acct.TotalHandle
	if err := s.grantRepo.Create(ctx, dbTx, domain.PublicGrant(handle)); err != nil {
		return domain.NullHandle, apperror.InternalError(fmt.Errorf("public grant: %w", err))
	}

	if err := s.eventRepo.Append(ctx, dbTx, domain.TotalMadePublic(owner, handle)); err != nil {
		return domain.NullHandle, apperror.InternalError(fmt.Errorf("append audit event: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return domain.NullHandle, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("owner", owner.String()).
		Str("handle", handle.String()).
		Msg("total made public")

	return handle, nil
}

// CanDecrypt reports whether a public grant or an identity grant covers
// (handle, caller).
func (s *CapabilityServiceImpl) CanDecrypt(ctx context.Context, handle domain.Handle, caller uuid.UUID) (bool, error) {
	public, err := s.grantRepo.Exists(ctx, handle, domain.GranteePublic, uuid.Nil)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("check public grant: %w", err))
	}
	if public {
		return true, nil
	}

	granted, err := s.grantRepo.Exists(ctx, handle, domain.GranteeIdentity, caller)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("check identity grant: %w", err))
	}
	return granted, nil
}

// DecryptHandle resolves a handle and decrypts it through the trapdoor
// oracle, enforcing the grant relation. Grants on superseded handles keep
// working: the handle history is immutable.
func (s *CapabilityServiceImpl) DecryptHandle(ctx context.Context, caller uuid.UUID, handle domain.Handle) (uint64, error) {
	if s.oracle == nil {
		return 0, apperror.ErrDecryptDenied()
	}

	allowed, err := s.CanDecrypt(ctx, handle, caller)
	if err != nil {
		return 0, err
	}
	if !allowed {
		return 0, apperror.ErrDecryptDenied()
	}

	stored, err := s.handleRepo.Get(ctx, handle)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("resolve handle: %w", err))
	}
	if stored == nil {
		return 0, apperror.ErrUnknownHandle()
	}

	value, err := s.oracle.Decrypt(stored.Ciphertext)
	if err != nil {
		return 0, apperror.ErrEngineFailure(fmt.Errorf("decrypt: %w", err))
	}

	s.log.Debug().
		Str("caller", caller.String()).
		Str("handle", handle.String()).
		Msg("handle decrypted via oracle")

	return value, nil
}
