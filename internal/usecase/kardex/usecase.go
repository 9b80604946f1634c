package kardex

import (
	"context"
	"strings"
	"time"

	domain "toolrental-backend/internal/domain/kardex"
	"toolrental-backend/pkg/dates"
	"toolrental-backend/pkg/id"
)

// Record appends one movement for toolID. The quantity comes from kind;
// stock arithmetic is not checked here.
func Record(ctx context.Context, repo domain.Repository, toolID uint64, kind domain.MovementKind, at time.Time, actor string) (*domain.Entry, error) {
	e := &domain.Entry{
		MovementID: id.NewID32(),
		ToolID:     toolID,
		Kind:       kind,
		Quantity:   kind.Quantity(),
		OccurredAt: at.UTC(),
		Actor:      actor,
	}
	if err := repo.Append(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Query returns ledger entries, optionally narrowed to one tool name and
// to the days [StartDate, EndDate].
func (u *Usecase) Query(ctx context.Context, in QueryInput) ([]EntryDTO, error) {
	f, err := buildFilter(in)
	if err != nil {
		return nil, err
	}
	entries, err := u.repo.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out, nil
}

func buildFilter(in QueryInput) (domain.Filter, error) {
	f := domain.Filter{ToolName: strings.TrimSpace(in.ToolName)}
	if in.StartDate == nil && in.EndDate == nil {
		return f, nil
	}
	if in.StartDate == nil || in.EndDate == nil {
		return f, domain.ErrInvalidRange
	}
	from := dates.Day(*in.StartDate)
	to := dates.Day(*in.EndDate)
	if to.Before(from) {
		return f, domain.ErrInvalidRange
	}
	to = to.AddDate(0, 0, 1)
	f.From, f.To = &from, &to
	return f, nil
}

func toDTO(e domain.Entry) EntryDTO {
	dto := EntryDTO{
		ID:              e.ID,
		MovementID:      e.MovementID,
		ToolID:          e.ToolID,
		MovementType:    string(e.Kind),
		Quantity:        e.Quantity,
		MovementDate:    e.OccurredAt,
		UserResponsible: e.Actor,
	}
	if e.Tool != nil {
		dto.ToolName = e.Tool.Name
	}
	return dto
}
