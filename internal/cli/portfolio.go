package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/debtflow-backend/internal/adapter/repository/memory"
	"github.com/simaogato/debtflow-backend/internal/domain"
	"github.com/simaogato/debtflow-backend/internal/portfolio"
)

// Portfolio is a loaded set of debts, stored in memory and addressable by name
type Portfolio struct {
	Repo   *memory.DebtRepository
	Debts  []domain.Debt
	byName map[string]uuid.UUID
}

// LoadPortfolio reads a TOML portfolio from path
func LoadPortfolio(ctx context.Context, path string) (*Portfolio, error) {
	debts, err := portfolio.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return newPortfolio(ctx, debts)
}

// ParsePortfolio reads a TOML portfolio from a string
func ParsePortfolio(ctx context.Context, data string) (*Portfolio, error) {
	debts, err := portfolio.Decode(data)
	if err != nil {
		return nil, err
	}
	return newPortfolio(ctx, debts)
}

func newPortfolio(ctx context.Context, debts []domain.Debt) (*Portfolio, error) {
	p := &Portfolio{
		Repo:   memory.NewDebtRepository(),
		byName: make(map[string]uuid.UUID, len(debts)),
	}

	// Creation times follow file order so listings keep it
	loaded := time.Now().UTC()
	for i := range debts {
		debt := debts[i]
		debt.CreatedAt = loaded.Add(time.Duration(i) * time.Millisecond)
		if err := p.Repo.Create(ctx, &debt); err != nil {
			return nil, fmt.Errorf("debt #%d (%s): %w", i+1, debt.Name, err)
		}
		p.byName[strings.ToLower(debt.Name)] = debt.ID
		p.Debts = append(p.Debts, debt)
	}
	return p, nil
}

// Resolve maps debt names (case-insensitive) to IDs, preserving order
func (p *Portfolio) Resolve(names []string) ([]uuid.UUID, error) {
	if len(names) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		id, ok := p.byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, &domain.NotFoundError{Entity: "debt", ID: name}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ResolveOne maps a single debt name to its ID
func (p *Portfolio) ResolveOne(name string) (uuid.UUID, error) {
	ids, err := p.Resolve([]string{name})
	if err != nil {
		return uuid.Nil, err
	}
	return ids[0], nil
}

// Name returns the name of the debt with the given ID
func (p *Portfolio) Name(id uuid.UUID) string {
	for _, d := range p.Debts {
		if d.ID == id {
			return d.Name
		}
	}
	return id.String()
}
