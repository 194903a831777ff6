package usecases

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/domain/repositories"
)

// SettlementUsecase finalizes bookings: it collects the platform
// commission from the guide's wallet and confirms the booking, all in
// one transaction.
type SettlementUsecase struct {
	bookingRepo repositories.BookingRepository
	walletRepo  repositories.WalletRepository
	uow         repositories.UnitOfWork

	defaultCommissionPct float64
	maxCommissionPct     float64
	walletCurrency       string
}

// NewSettlementUsecase creates a new settlement usecase
func NewSettlementUsecase(
	bookingRepo repositories.BookingRepository,
	walletRepo repositories.WalletRepository,
	uow repositories.UnitOfWork,
	defaultCommissionPct, maxCommissionPct float64,
	walletCurrency string,
) *SettlementUsecase {
	return &SettlementUsecase{
		bookingRepo:          bookingRepo,
		walletRepo:           walletRepo,
		uow:                  uow,
		defaultCommissionPct: defaultCommissionPct,
		maxCommissionPct:     maxCommissionPct,
		walletCurrency:       walletCurrency,
	}
}

// resolveCommissionPct falls back to the platform default when the
// caller omits the override or sends something unusable, and rejects
// overrides above the configured cap.
func (u *SettlementUsecase) resolveCommissionPct(override *float64) (float64, error) {
	if override == nil {
		return u.defaultCommissionPct, nil
	}
	pct := *override
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 {
		return u.defaultCommissionPct, nil
	}
	if pct > u.maxCommissionPct {
		return 0, domainerrors.BadRequest("commission_percentage exceeds platform maximum")
	}
	return pct, nil
}

// FinalizeBooking settles a booking for the caller. The tourist, the
// assigned guide, or a guide claiming an unassigned booking may call
// it. The commission debit, the ledger entry and the status flip to
// confirmed either all happen or none do.
func (u *SettlementUsecase) FinalizeBooking(ctx context.Context, callerID uuid.UUID, input *entities.FinalizeBookingInput) (*entities.FinalizeBookingResult, error) {
	bookingID, err := uuid.Parse(input.BookingID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid booking_id")
	}

	pct, err := u.resolveCommissionPct(input.CommissionPercentage)
	if err != nil {
		return nil, err
	}

	var result *entities.FinalizeBookingResult
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		booking, err := u.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}

		if booking.Status == entities.BookingStatusConfirmed {
			return domainerrors.AlreadyFinalized("booking already finalized")
		}

		guideID, err := u.resolveGuide(ctx, booking, callerID)
		if err != nil {
			return err
		}

		if booking.TotalAmount.LessThanOrEqual(decimal.Zero) {
			return domainerrors.InvalidState("Booking amount not set")
		}

		commission := booking.TotalAmount.
			Mul(decimal.NewFromFloat(pct)).
			Div(decimal.NewFromInt(100)).
			Round(2)

		wallet, err := u.walletRepo.GetOrCreate(ctx, guideID, u.walletCurrency)
		if err != nil {
			return err
		}
		if wallet.Balance.LessThan(commission) {
			return &domainerrors.InsufficientFundsError{
				Required: commission,
				Balance:  wallet.Balance,
			}
		}

		balance, err := u.walletRepo.Debit(ctx, guideID, commission, &entities.TokenTransaction{
			BookingID: &booking.ID,
			Direction: entities.TransactionDebit,
			Reason:    entities.TransactionReasonCommission,
			Metadata:  map[string]interface{}{"commission_percentage": pct},
		})
		if err != nil {
			return err
		}

		confirmed, err := u.bookingRepo.ConfirmIfPending(ctx, booking.ID)
		if err != nil {
			return err
		}
		if !confirmed {
			// Lost the race to a concurrent finalize; roll the debit back.
			return domainerrors.AlreadyFinalized("booking already finalized")
		}

		result = &entities.FinalizeBookingResult{
			Commission: commission,
			Balance:    balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveGuide authorizes the caller against the booking and returns
// the guide whose wallet pays the commission. A guide hitting an
// unassigned booking claims it via a compare-and-swap so only one
// claimant wins.
func (u *SettlementUsecase) resolveGuide(ctx context.Context, booking *entities.Booking, callerID uuid.UUID) (uuid.UUID, error) {
	if booking.GuideID != nil {
		if callerID != booking.TouristID && callerID != *booking.GuideID {
			return uuid.Nil, domainerrors.Forbidden("not a participant of this booking")
		}
		return *booking.GuideID, nil
	}

	if callerID == booking.TouristID {
		return uuid.Nil, domainerrors.InvalidState("Guide not assigned")
	}

	won, err := u.bookingRepo.AssignGuideIfUnassigned(ctx, booking.ID, callerID)
	if err != nil {
		return uuid.Nil, err
	}
	if won {
		booking.GuideID = &callerID
		return callerID, nil
	}

	// Someone else claimed it first; settle against the winner.
	fresh, err := u.bookingRepo.GetByID(ctx, booking.ID)
	if err != nil {
		return uuid.Nil, err
	}
	if fresh.Status == entities.BookingStatusConfirmed {
		return uuid.Nil, domainerrors.AlreadyFinalized("booking already finalized")
	}
	if fresh.GuideID == nil {
		return uuid.Nil, domainerrors.InvalidState("Guide not assigned")
	}
	if callerID != fresh.TouristID && callerID != *fresh.GuideID {
		return uuid.Nil, domainerrors.Forbidden("not a participant of this booking")
	}
	booking.GuideID = fresh.GuideID
	return *fresh.GuideID, nil
}
