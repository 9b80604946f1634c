package loan

import (
	"context"
	"errors"
	"time"

	"toolrental-backend/internal/adapter/metrics"
	"toolrental-backend/internal/domain/apperr"
	domainClient "toolrental-backend/internal/domain/client"
	domainFine "toolrental-backend/internal/domain/fine"
	"toolrental-backend/internal/domain/kardex"
	"toolrental-backend/internal/domain/loan"
	"toolrental-backend/internal/domain/tool"
	"toolrental-backend/internal/domain/uow"
	clientUsecase "toolrental-backend/internal/usecase/client"
	fineUsecase "toolrental-backend/internal/usecase/fine"
	kardexUsecase "toolrental-backend/internal/usecase/kardex"
	"toolrental-backend/pkg/dates"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Usecase struct {
	uow   uow.UnitOfWork
	fines *fineUsecase.Engine
	log   zerolog.Logger
	now   func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, fines *fineUsecase.Engine, log zerolog.Logger) *Usecase {
	return &Usecase{
		uow:   tx,
		fines: fines,
		log:   log.With().Str("component", "loan").Logger(),
		now:   time.Now,
	}
}

// WithClock replaces the time source that decides "today".
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Create opens a loan after checking every eligibility rule. The client and
// tool rows are locked, so a concurrent request for the same tool waits and
// then sees it loaned.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput, caller domainClient.Identity) (*LoanDTO, error) {
	today := dates.Day(u.now())
	due := dates.Day(in.DueDate)
	var out *LoanDTO

	err := clientUsecase.RetryFirstUse(ctx, u.uow, func(r uow.Repos) error {
		c, err := u.resolveClient(ctx, r, in.ClientID, caller)
		if err != nil {
			return err
		}
		t, err := r.Tools.GetByIDForUpdate(ctx, in.ToolID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tool.ErrNotFound
			}
			return err
		}

		if err := checkEligibility(ctx, r, c, t, due, today); err != nil {
			return err
		}

		if err := t.Transition(tool.StatusLoaned); err != nil {
			return err
		}
		if err := r.Tools.Save(ctx, t); err != nil {
			return err
		}
		l := &loan.Loan{
			ClientID: c.ID,
			ToolID:   t.ID,
			LoanDate: today,
			DueDate:  due,
			Status:   loan.StatusActive,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if _, err := kardexUsecase.Record(ctx, r.Kardex, t.ID, kardex.KindLoanOut, l.LoanDate, c.Name); err != nil {
			return err
		}

		l.Client, l.Tool = c, t
		out = toDTO(l, nil)
		return nil
	})
	if err != nil {
		if code := rejectionCode(err); code != "" {
			metrics.LoanRejectionsTotal.WithLabelValues(code).Inc()
			u.log.Info().Uint64("tool_id", in.ToolID).Str("caller", caller.Subject).Str("reason", code).Msg("loan rejected")
		}
		return nil, err
	}

	path := "self"
	if in.ClientID != nil {
		path = "admin"
	}
	metrics.LoansCreatedTotal.WithLabelValues(path).Inc()
	u.log.Info().
		Uint64("loan_id", out.ID).
		Uint64("client_id", out.ClientID).
		Uint64("tool_id", out.ToolID).
		Str("actor", caller.Actor()).
		Msg("loan created")
	return out, nil
}

func (u *Usecase) resolveClient(ctx context.Context, r uow.Repos, clientID *uint64, caller domainClient.Identity) (*domainClient.Client, error) {
	if clientID == nil {
		c, created, err := clientUsecase.FindOrCreate(ctx, r.Clients, caller)
		if err == nil && created {
			u.log.Info().Uint64("client_id", c.ID).Str("subject", caller.Subject).Msg("client created from identity")
		}
		return c, err
	}
	c, err := r.Clients.GetByIDForUpdate(ctx, *clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainClient.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// checkEligibility applies the loan rules in order and stops at the first
// violation.
func checkEligibility(ctx context.Context, r uow.Repos, c *domainClient.Client, t *tool.Tool, due, today time.Time) error {
	if due.Before(today) {
		return loan.ErrDueDateInPast
	}
	if t.Status != tool.StatusAvailable {
		return loan.ErrToolUnavailable
	}
	if c.Status != domainClient.StatusActive {
		return loan.ErrClientRestricted
	}
	overdue, err := r.Loans.ListOverdueByClient(ctx, c.ID, today)
	if err != nil {
		return err
	}
	if len(overdue) > 0 {
		return loan.ErrOverdueLoans
	}
	pending, err := fineUsecase.HasPendingFines(ctx, r.Fines, c.ID)
	if err != nil {
		return err
	}
	if pending {
		return loan.ErrPendingFines
	}
	active, err := r.Loans.CountActiveByClient(ctx, c.ID)
	if err != nil {
		return err
	}
	if active >= loan.MaxActiveLoans {
		return loan.ErrLoanLimitReached
	}
	dup, err := r.Loans.ExistsActiveForClientTool(ctx, c.ID, t.ID)
	if err != nil {
		return err
	}
	if dup {
		return loan.ErrDuplicateTool
	}
	return nil
}

func rejectionCode(err error) string {
	if errors.Is(err, apperr.ErrBusinessRule) || errors.Is(err, loan.ErrDueDateInPast) {
		return apperr.Code(err)
	}
	return ""
}

// Return closes an active loan, moves the tool according to the reported
// condition and issues the damage and late-return fines that apply.
func (u *Usecase) Return(ctx context.Context, loanID uint64, in ReturnLoanInput) (*LoanDTO, error) {
	cond := loan.ParseCondition(in.Condition)
	if cond == "" {
		return nil, loan.ErrInvalidCondition
	}
	now := u.now().UTC()
	today := dates.Day(now)
	var (
		out    *LoanDTO
		issued []*domainFine.Fine
	)

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Status != loan.StatusActive {
			return loan.ErrNotActive
		}
		c, err := r.Clients.GetByIDForUpdate(ctx, l.ClientID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainClient.ErrNotFound
		}
		if err != nil {
			return err
		}
		t, err := r.Tools.GetByIDForUpdate(ctx, l.ToolID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tool.ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := l.MarkReturned(today); err != nil {
			return err
		}
		// the return entry goes first so that the write-off or repair entry,
		// stamped later the same day, is the tool's latest movement
		if _, err := kardexUsecase.Record(ctx, r.Kardex, t.ID, kardex.KindReturn, *l.ReturnDate, in.Actor); err != nil {
			return err
		}

		var damage *domainFine.Fine
		switch cond {
		case loan.ConditionIrreparable:
			if err := t.Transition(tool.StatusWrittenOff); err != nil {
				return err
			}
			if damage, err = u.fines.CreateForDamage(ctx, r, l, c, t.ReplacementValue, today); err != nil {
				return err
			}
			if _, err := kardexUsecase.Record(ctx, r.Kardex, t.ID, kardex.KindWriteOff, now, in.Actor); err != nil {
				return err
			}
		case loan.ConditionDamaged:
			if err := t.Transition(tool.StatusUnderRepair); err != nil {
				return err
			}
			if damage, err = u.fines.CreateForRepairableDamage(ctx, r, l, c, today); err != nil {
				return err
			}
			if _, err := kardexUsecase.Record(ctx, r.Kardex, t.ID, kardex.KindRepair, now, in.Actor); err != nil {
				return err
			}
		default:
			if err := t.Transition(tool.StatusAvailable); err != nil {
				return err
			}
		}

		late, err := u.fines.CreateForLateReturn(ctx, r, l, c, today)
		if err != nil {
			return err
		}

		if err := r.Tools.Save(ctx, t); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Clients.Save(ctx, c); err != nil {
			return err
		}

		for _, f := range []*domainFine.Fine{damage, late} {
			if f != nil {
				issued = append(issued, f)
			}
		}
		l.Client, l.Tool = c, t
		var first *domainFine.Fine
		if len(issued) > 0 {
			first = issued[0]
		}
		out = toDTO(l, first)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}

	metrics.LoansReturnedTotal.WithLabelValues(conditionLabel(cond)).Inc()
	for _, f := range issued {
		metrics.FinesCreatedTotal.WithLabelValues(string(f.Kind)).Inc()
	}
	u.log.Info().
		Uint64("loan_id", loanID).
		Str("condition", string(cond)).
		Str("actor", in.Actor).
		Int("fines", len(issued)).
		Msg("loan returned")
	return out, nil
}

// conditionLabel keeps the metric's label set closed.
func conditionLabel(c loan.ReturnCondition) string {
	switch c {
	case loan.ConditionDamaged, loan.ConditionIrreparable:
		return string(c)
	default:
		return string(loan.ConditionGood)
	}
}

// Delete removes a returned loan together with its settled fines. Loans that
// are still out, or that carry an unpaid fine, are kept.
func (u *Usecase) Delete(ctx context.Context, loanID uint64) error {
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.ReturnDate == nil {
			return loan.ErrNotReturned
		}
		fs, err := r.Fines.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		for _, f := range fs {
			if f.Status == domainFine.StatusPending {
				return loan.ErrHasPendingFine
			}
		}
		if err := r.Fines.DeleteByLoanID(ctx, l.ID); err != nil {
			return err
		}
		return r.Loans.Delete(ctx, l.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loan.ErrNotFound
		}
		return err
	}
	u.log.Info().Uint64("loan_id", loanID).Msg("loan deleted")
	return nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	return u.list(ctx, loan.ListFilter{})
}

// ListMine returns the loans of the client bound to subject.
func (u *Usecase) ListMine(ctx context.Context, subject string) ([]LoanDTO, error) {
	return u.list(ctx, loan.ListFilter{ClientExternalID: subject})
}

func (u *Usecase) list(ctx context.Context, f loan.ListFilter) ([]LoanDTO, error) {
	r := u.uow.Repos()
	ls, err := r.Loans.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		fs, err := r.Fines.ListByLoanID(ctx, ls[i].ID)
		if err != nil {
			return nil, err
		}
		var first *domainFine.Fine
		if len(fs) > 0 {
			first = &fs[0]
		}
		out = append(out, *toDTO(&ls[i], first))
	}
	return out, nil
}

func toDTO(l *loan.Loan, f *domainFine.Fine) *LoanDTO {
	dto := &LoanDTO{
		ID:         l.ID,
		ClientID:   l.ClientID,
		ToolID:     l.ToolID,
		LoanDate:   l.LoanDate,
		DueDate:    l.DueDate,
		ReturnDate: l.ReturnDate,
		Status:     string(l.Status),
	}
	if l.Client != nil {
		dto.ClientName = l.Client.Name
	}
	if l.Tool != nil {
		dto.ToolName = l.Tool.Name
	}
	if f != nil {
		id, amount := f.ID, f.Amount
		dto.FineID = &id
		dto.FineAmount = &amount
		dto.FineStatus = string(f.Status)
	}
	return dto
}
