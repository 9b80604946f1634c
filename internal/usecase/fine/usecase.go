package fine

import (
	"context"
	"errors"
	"time"

	"toolrental-backend/internal/adapter/metrics"
	domain "toolrental-backend/internal/domain/fine"
	"toolrental-backend/internal/domain/uow"
	"toolrental-backend/pkg/dates"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Usecase struct {
	uow uow.UnitOfWork
	log zerolog.Logger
	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, log zerolog.Logger) *Usecase {
	return &Usecase{uow: tx, log: log.With().Str("component", "fine").Logger(), now: time.Now}
}

// WithClock replaces the time source used for payment dates.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// PayFine settles a pending fine and lifts the client's restriction once no
// pending fine remains. Fine and client rows stay locked until commit.
func (u *Usecase) PayFine(ctx context.Context, fineID uint64) (*FineDTO, error) {
	today := dates.Day(u.now())
	var out *FineDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		f, err := r.Fines.GetByIDForUpdate(ctx, fineID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := f.Pay(today); err != nil {
			return err
		}

		l, err := r.Loans.GetByID(ctx, f.LoanID)
		if err != nil {
			return err
		}
		c, err := r.Clients.GetByIDForUpdate(ctx, l.ClientID)
		if err != nil {
			return err
		}

		if err := r.Fines.Save(ctx, f); err != nil {
			return err
		}
		pending, err := HasPendingFines(ctx, r.Fines, c.ID)
		if err != nil {
			return err
		}
		if !pending {
			c.Activate()
			if err := r.Clients.Save(ctx, c); err != nil {
				return err
			}
		}

		l.Client = c
		f.Loan = l
		out = toDTO(f)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.FinesPaidTotal.Inc()
	u.log.Info().Uint64("fine_id", fineID).Str("client_status", out.ClientStatus).Msg("fine paid")
	return out, nil
}

func (u *Usecase) List(ctx context.Context) ([]FineDTO, error) {
	fs, err := u.uow.Repos().Fines.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(fs), nil
}

// ListMine returns the fines of the client bound to subject.
func (u *Usecase) ListMine(ctx context.Context, subject string) ([]FineDTO, error) {
	fs, err := u.uow.Repos().Fines.ListByClientExternalID(ctx, subject)
	if err != nil {
		return nil, err
	}
	return toDTOs(fs), nil
}

func toDTOs(fs []domain.Fine) []FineDTO {
	out := make([]FineDTO, 0, len(fs))
	for i := range fs {
		out = append(out, *toDTO(&fs[i]))
	}
	return out
}

func toDTO(f *domain.Fine) *FineDTO {
	dto := &FineDTO{
		ID:           f.ID,
		LoanID:       f.LoanID,
		FineType:     string(f.Kind),
		Amount:       f.Amount,
		Status:       string(f.Status),
		CreationDate: f.CreationDate,
		PaymentDate:  f.PaymentDate,
	}
	if f.Loan != nil {
		if f.Loan.Client != nil {
			dto.ClientName = f.Loan.Client.Name
			dto.ClientStatus = string(f.Loan.Client.Status)
		}
		if f.Loan.Tool != nil {
			dto.ToolName = f.Loan.Tool.Name
		}
	}
	return dto
}
